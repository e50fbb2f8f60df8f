package repl

import (
	"testing"

	"github.com/govalues/english"
	"github.com/govalues/english/internal/command"
	"github.com/stretchr/testify/assert"
)

func newTestSession() *Session {
	return NewSession(&command.Evaluator{Durations: english.DefaultDurationFormat}, command.Number)
}

func TestSession_Handle(t *testing.T) {
	s := newTestSession()

	steps := []struct {
		input    string
		want     string
		wantMode command.Mode
		wantQuit bool
	}{
		{"two hundred sixty four", "264\n", command.Number, false},
		{"   ", "", command.Number, false},
		{":amount", "", command.Amount, false},
		{"£13 million", "GBP 13000000\n", command.Amount, false},
		{":mode", "amount\n", command.Amount, false},
		{":duration", "", command.Duration, false},
		{"1 hr 17 mins", "1h17m0s\n", command.Duration, false},
		{":format", "", command.Format, false},
		{"1h17m", "1 hour 17 minutes\n", command.Format, false},
		{":bogus", "unknown command :bogus, type :help for a list\n", command.Format, false},
		{":help", helpText, command.Format, false},
		{"quit", "Goodbye!\n", command.Format, true},
	}
	for _, step := range steps {
		got, quit := s.Handle(step.input)
		assert.Equal(t, step.want, got, "Handle(%q)", step.input)
		assert.Equal(t, step.wantQuit, quit, "Handle(%q)", step.input)
		assert.Equal(t, step.wantMode, s.Mode(), "Handle(%q)", step.input)
	}
}

func TestSession_Handle_Error(t *testing.T) {
	s := newTestSession()

	got, quit := s.Handle("five lakh")
	assert.False(t, quit)
	assert.Contains(t, got, "error: parsing number")
	assert.Contains(t, got, `"lakh"`)
}

func TestSession_Prompt(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, "number> ", s.Prompt())

	s.Handle(":AMOUNT")
	assert.Equal(t, "amount> ", s.Prompt())
}

func TestComplete(t *testing.T) {
	assert.Equal(t, []string{":duration"}, complete(":d"))
	assert.Equal(t, []string{":mode"}, complete(":mo"))
	assert.ElementsMatch(t, []string{":number", ":amount", ":duration", ":format", ":mode", ":help"}, complete(":"))
	assert.Nil(t, complete("five"))
	assert.Nil(t, complete(":x"))
}
