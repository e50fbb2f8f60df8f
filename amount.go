package english

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

var errCurrencyMismatch = errors.New("currency mismatch")

// Amount type represents a currency amount read from English text,
// such as "£13 million" or "13 million us dollar".
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // currency named in the text
	value decimal.Decimal // exact magnitude
}

// NewAmount returns an amount with the specified currency and value.
func NewAmount(curr Currency, value decimal.Decimal) Amount {
	return Amount{curr: curr, value: value}
}

// ParseAmount converts an English currency amount to an [Amount] using
// the [DefaultRegistry]. See [Registry.ParseAmount] for the accepted forms.
func ParseAmount(curr, s string) (Amount, error) {
	return defaultRegistry.ParseAmount(curr, s)
}

// MustParseAmount is like [ParseAmount] but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, s string) Amount {
	a, err := ParseAmount(curr, s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, s, err))
	}
	return a
}

// ParseAmount converts an English currency amount to an [Amount].
// The text must be in one of the following forms:
//
//	£13 million
//	$ 1.4 million
//	13 million us dollar
//	hundred British Pound Sterling
//	two hundred and fifty
//
// A symbol is resolved to the currency of the first locale in priority order
// that uses it, then to the alternate symbols. A display name is matched
// word by word, ignoring case. If the text has neither a symbol nor a name,
// the currency curr is used. An empty curr means "USD".
// When both forms match, the one that consumes more of the text wins.
//
// ParseAmount returns an error if:
//   - curr is not a valid currency code;
//   - the text does not form a number, optionally preceded by a symbol or
//     followed by a currency name;
//   - the symbol or name does not denote a known currency;
//   - the number exceeds [decimal.MaxPrec] significant digits.
func (r *Registry) ParseAmount(curr, s string) (Amount, error) {
	def := USD
	if curr != "" {
		var err error
		def, err = ParseCurr(curr)
		if err != nil {
			return Amount{}, fmt.Errorf("parsing currency: %w", err)
		}
	}
	toks, err := tokenize(s, r.vocab)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	a, err := r.matchAmount(s, toks, def)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// matchAmount chooses the longest of the symbol-prefixed and the
// name-suffixed forms. All tokens must be consumed.
func (r *Registry) matchAmount(s string, toks []token, def Currency) (Amount, error) {
	best, end, err := r.symbolPrefixed(toks, def)
	switch {
	case errors.Is(err, errNoMatch):
		end = -1
	case err != nil:
		return Amount{}, err
	}

	a, nend, err := r.nameSuffixed(toks)
	switch {
	case errors.Is(err, errNoMatch):
	case errors.Is(err, ErrUnresolvedName):
		if end < len(toks) {
			return Amount{}, err
		}
	case err != nil:
		return Amount{}, err
	case nend > end:
		best, end = a, nend
	}

	if end < len(toks) {
		return Amount{}, mismatch(s, toks, max(end, 0))
	}
	return best, nil
}

// symbolPrefixed matches [symbol] numbers.
func (r *Registry) symbolPrefixed(toks []token, def Currency) (Amount, int, error) {
	curr, pos := def, 0
	if len(toks) > 0 && toks[0].kind == tokOperator {
		c, ok := r.LookupSymbol(toks[0].text)
		if !ok {
			return Amount{}, 0, newParseError(ErrUnresolvedSymbol, toks[0].pos, toks[0].text)
		}
		curr, pos = c, 1
	}
	d, end, err := r.numbers.numbers(toks, pos)
	if err != nil {
		return Amount{}, pos, err
	}
	return NewAmount(curr, d.Trim(0)), end, nil
}

// nameSuffixed matches numbers name.
func (r *Registry) nameSuffixed(toks []token) (Amount, int, error) {
	d, pos, err := r.numbers.numbers(toks, 0)
	if err != nil {
		return Amount{}, 0, err
	}
	if pos >= len(toks) || toks[pos].kind != tokKeyword {
		return Amount{}, pos, errNoMatch
	}
	c, end, ok := r.matchName(toks, pos)
	if !ok {
		return Amount{}, pos, newParseError(ErrUnresolvedName, toks[pos].pos, toks[pos].text)
	}
	return NewAmount(c, d.Trim(0)), end, nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, errCurrencyMismatch)
	}
	return a.Decimal().Cmp(b.Decimal()), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, for example "GBP 13000000".
// See also methods [Currency.String], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The text must be in the format returned by [Amount.String].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	code, value, ok := strings.Cut(string(text), " ")
	if !ok {
		return fmt.Errorf("unmarshaling %T: missing delimiter in %q", Amount{}, text)
	}
	c, err := ParseCurr(code)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	d, err := decimal.Parse(value)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = NewAmount(c, d)
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example           | Description                |
//	| ------ | ----------------- | -------------------------- |
//	| %s, %v | GBP 13000000      | Currency and amount        |
//	| %q     | "GBP 13000000"    | Quoted currency and amount |
//	| %f     | 13000000          | Amount                     |
//	| %c     | GBP               | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the amount.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	c, d := a.Curr(), a.Decimal()

	// Rescaling
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			switch {
			case p < d.Scale():
				d = d.Round(p)
			case p > d.Scale():
				d = d.Pad(p)
			}
		}
	}

	// Digits without the sign
	digits := ""
	if verb != 'c' && verb != 'C' {
		digits = d.Abs().String()
	}

	// Arithmetic sign
	sign := ""
	if verb != 'c' && verb != 'C' {
		switch {
		case d.IsNeg():
			sign = "-"
		case state.Flag('+'):
			sign = "+"
		case state.Flag(' '):
			sign = " "
		}
	}

	// Currency code and delimiter
	curr := ""
	switch verb {
	case 'f', 'F':
		// skip
	case 'c', 'C':
		curr = c.Code()
	default:
		curr = c.Code() + " "
	}

	// Opening and closing quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Calculating padding
	width := len(quote) + len(curr) + len(sign) + len(digits) + len(quote)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(curr)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeros))
	buf.WriteString(digits)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write([]byte(buf.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(english.Amount="))
		state.Write([]byte(buf.String()))
		state.Write([]byte(")"))
	}
}
