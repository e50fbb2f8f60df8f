// Package repl implements the interactive english prompt.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/govalues/english/internal/command"
	"github.com/peterh/liner"
)

const historyName = ".english_history"

const helpText = `Commands:
  :number     parse English numbers, e.g. "forty five thousand and fifty five"
  :amount     parse currency amounts, e.g. "£13 million"
  :duration   parse durations, e.g. "1 hr 17 mins"
  :format     write durations in English, e.g. "1h17m"
  :mode       show the current mode
  :help       show this help
  exit, quit  leave the prompt
`

// Session holds the state of one interactive session.
type Session struct {
	eval *command.Evaluator
	mode command.Mode
}

// NewSession returns a session that starts in the given mode.
func NewSession(eval *command.Evaluator, mode command.Mode) *Session {
	return &Session{eval: eval, mode: mode}
}

// Mode returns the current mode.
func (s *Session) Mode() command.Mode {
	return s.mode
}

// Prompt returns the prompt for the current mode.
func (s *Session) Prompt() string {
	return s.mode.String() + "> "
}

// Handle processes one input line.
// It returns the text to print and whether the session is over.
func (s *Session) Handle(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	switch {
	case trimmed == "":
		return "", false
	case trimmed == "exit" || trimmed == "quit":
		return "Goodbye!\n", true
	case strings.HasPrefix(trimmed, ":"):
		return s.command(trimmed[1:]), false
	}
	out, err := s.eval.Eval(s.mode, trimmed)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err), false
	}
	return out + "\n", false
}

func (s *Session) command(name string) string {
	switch name {
	case "help", "h", "?":
		return helpText
	case "mode":
		return s.mode.String() + "\n"
	}
	m, err := command.ParseMode(name)
	if err != nil {
		return fmt.Sprintf("unknown command :%s, type :help for a list\n", name)
	}
	s.mode = m
	return ""
}

// Start runs the prompt until the input ends or the user quits.
func Start(out io.Writer, session *Session, version string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	historyFile := filepath.Join(os.TempDir(), historyName)
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, "english", version)
	fmt.Fprintln(out, "Type ':help' for commands, 'exit' or Ctrl+D to quit")

	for {
		input, err := line.Prompt(session.Prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			return
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		text, quit := session.Handle(input)
		fmt.Fprint(out, text)
		if quit {
			return
		}
	}
}

// complete suggests REPL commands for a line starting with ':'.
func complete(input string) []string {
	if !strings.HasPrefix(input, ":") {
		return nil
	}
	var matches []string
	for _, name := range append(command.Modes(), "mode", "help") {
		if strings.HasPrefix(":"+name, input) {
			matches = append(matches, ":"+name)
		}
	}
	return matches
}
