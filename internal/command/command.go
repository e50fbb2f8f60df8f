// Package command evaluates english command input in one of several modes.
package command

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/govalues/decimal"
	"github.com/govalues/english"
)

// Mode selects how input text is interpreted.
type Mode int

const (
	Number Mode = iota
	Amount
	Duration
	Format
)

var modeNames = [...]string{
	Number:   "number",
	Amount:   "amount",
	Duration: "duration",
	Format:   "format",
}

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes returns the names of all modes.
func Modes() []string {
	return slices.Clone(modeNames[:])
}

// Evaluator turns input text into printable results.
type Evaluator struct {
	Registry    *english.Registry
	Currency    string // default currency code of amounts
	Durations   english.DurationFormat
	GroupDigits bool
	Logger      *slog.Logger
}

// Eval interprets text according to mode.
func (e *Evaluator) Eval(mode Mode, text string) (string, error) {
	out, err := e.eval(mode, text)
	if err != nil {
		e.logger().Debug("evaluation failed", "mode", mode, "input", text, "err", err)
		return "", err
	}
	e.logger().Debug("evaluated", "mode", mode, "input", text, "output", out)
	return out, nil
}

func (e *Evaluator) eval(mode Mode, text string) (string, error) {
	switch mode {
	case Number:
		d, err := english.ParseNumber(text)
		if err != nil {
			return "", err
		}
		return e.decimal(d), nil
	case Amount:
		a, err := e.registry().ParseAmount(e.Currency, text)
		if err != nil {
			return "", err
		}
		return a.Curr().Code() + " " + e.decimal(a.Decimal()), nil
	case Duration:
		d, err := e.Durations.Parse(text)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case Format:
		d, err := e.duration(text)
		if err != nil {
			return "", err
		}
		return e.Durations.Format(d), nil
	}
	return "", fmt.Errorf("%w %v", ErrUnknownMode, mode)
}

// duration accepts both Go duration literals and English text.
func (e *Evaluator) duration(text string) (time.Duration, error) {
	if d, err := time.ParseDuration(strings.TrimSpace(text)); err == nil {
		return d, nil
	}
	return e.Durations.Parse(text)
}

func (e *Evaluator) decimal(d decimal.Decimal) string {
	if !e.GroupDigits {
		return d.String()
	}
	return groupDigits(d)
}

func (e *Evaluator) registry() *english.Registry {
	if e.Registry == nil {
		return english.DefaultRegistry()
	}
	return e.Registry
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// groupDigits inserts thousands separators into the integer part of d.
func groupDigits(d decimal.Decimal) string {
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return d.String()
	}
	s = sign + humanize.BigComma(n)
	if hasFrac {
		s += "." + frac
	}
	return s
}
