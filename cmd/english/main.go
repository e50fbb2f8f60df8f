package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/govalues/english/internal/command"
	"github.com/govalues/english/internal/config"
	"github.com/govalues/english/internal/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("english", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { printHelp(stderr) }

	var (
		configPath = flags.String("config", "", "YAML configuration file")
		currency   = flags.String("currency", "", "Default currency code of amounts")
		accuracy   = flags.String("accuracy", "", "Finest unit written by format")
		zeroes     = flags.Bool("zeroes", false, "Write units with a zero count")
		group      = flags.Bool("group", false, "Group digits of numbers and amounts")
		version    = flags.Bool("version", false, "Show version information")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *version {
		fmt.Fprintf(stdout, "english version %s\n", Version)
		return exitOK
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}
	if *currency != "" {
		cfg.DefaultCurrency = *currency
	}
	if *accuracy != "" {
		cfg.Duration.Accuracy = *accuracy
	}
	if *zeroes {
		cfg.Duration.ShowZeroes = true
	}
	if *group {
		cfg.Output.GroupDigits = true
	}
	if err := cfg.Validate(); err != nil {
		printError(stderr, err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	durations, err := cfg.DurationFormat()
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}
	eval := &command.Evaluator{
		Currency:    cfg.DefaultCurrency,
		Durations:   durations,
		GroupDigits: cfg.Output.GroupDigits,
		Logger:      logger,
	}

	if flags.NArg() == 0 {
		logger.Debug("starting prompt", "version", Version)
		repl.Start(stdout, repl.NewSession(eval, command.Number), Version)
		return exitOK
	}

	mode, err := command.ParseMode(flags.Arg(0))
	if err != nil {
		printError(stderr, err)
		printHelp(stderr)
		return exitUsage
	}
	text := strings.Join(flags.Args()[1:], " ")
	if text == "" {
		printError(stderr, fmt.Errorf("%v needs some text", mode))
		return exitUsage
	}
	out, err := eval.Eval(mode, text)
	if err != nil {
		printError(stderr, err)
		return exitError
	}
	fmt.Fprintln(stdout, out)
	return exitOK
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `english - read English numbers, amounts and durations, version %s

Usage:
  english [options]                    Start interactive prompt
  english [options] <mode> <text>...   Evaluate text once

Modes:
  number     "forty five thousand and fifty five" -> 45055
  amount     "£13 million" -> GBP 13000000
  duration   "1 hr 17 mins" -> 1h17m0s
  format     "1h17m" -> 1 hour 17 minutes

Options:
  -config <file>       YAML configuration file
  -currency <code>     Default currency code of amounts (default: USD)
  -accuracy <unit>     Finest unit written by format (default: milliseconds)
  -zeroes              Write units with a zero count
  -group               Group digits of numbers and amounts
  -version             Show version information
`, Version)
}
