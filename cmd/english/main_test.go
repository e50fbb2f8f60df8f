package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"number words", []string{"number", "two", "hundred", "sixty", "four"}, "264\n"},
		{"number quoted", []string{"number", "23 million, three hundred and 97"}, "23000397\n"},
		{"number grouped", []string{"-group", "number", "1.4 million"}, "1,400,000\n"},
		{"amount symbol", []string{"amount", "£13 million"}, "GBP 13000000\n"},
		{"amount name", []string{"amount", "13 million us dollar"}, "USD 13000000\n"},
		{"amount default", []string{"-currency", "EUR", "amount", "fifty"}, "EUR 50\n"},
		{"amount grouped", []string{"-group", "amount", "$1.4 million and 500"}, "USD 1,400,500\n"},
		{"duration", []string{"duration", "1 day 3 hours"}, "27h0m0s\n"},
		{"format", []string{"format", "1h17m"}, "1 hour 17 minutes\n"},
		{"format english", []string{"format", "7 s 320 ms"}, "7 seconds 320 milliseconds\n"},
		{"format accuracy", []string{"-accuracy", "seconds", "format", "7.32s"}, "7 seconds\n"},
		{"format zeroes", []string{"-accuracy", "minutes", "-zeroes", "format", "1h17m"}, "0 days 1 hour 17 minutes\n"},
		{"mode case", []string{"NUMBER", "forty two"}, "42\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(tt.args...)
			assert.Equal(t, exitOK, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"parse error", []string{"number", "five", "lakh"}, exitError, `error: parsing number: unrecognized text at position 5: "lakh"`},
		{"unresolved name", []string{"amount", "13 million dollar"}, exitError, "error: "},
		{"unknown unit", []string{"duration", "5 fortnights"}, exitError, "unknown duration unit"},
		{"unknown mode", []string{"money", "five"}, exitUsage, `unknown mode "money"`},
		{"missing text", []string{"number"}, exitUsage, "number needs some text"},
		{"bad flag", []string{"-bogus", "number", "five"}, exitUsage, "flag provided but not defined"},
		{"bad currency", []string{"-currency", "ZZZ", "amount", "five"}, exitUsage, "default_currency"},
		{"bad accuracy", []string{"-accuracy", "weeks", "format", "1h"}, exitUsage, "duration.accuracy"},
		{"missing config", []string{"-config", "/nonexistent/english.yaml", "number", "five"}, exitUsage, "reading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestRun_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.yaml")
	data := `
default_currency: GBP
duration:
  accuracy: seconds
output:
  group_digits: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	code, stdout, stderr := runArgs("-config", path, "amount", "two million")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "GBP 2,000,000\n", stdout)

	code, stdout, stderr = runArgs("-config", path, "format", "7.32s")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "7 seconds\n", stdout)

	// Flags take precedence over the file.
	code, stdout, stderr = runArgs("-config", path, "-currency", "JPY", "amount", "two million")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "JPY 2,000,000\n", stdout)
}

func TestRun_Logging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600))

	code, _, stderr := runArgs("-config", path, "number", "five", "lakh")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "evaluation failed")
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runArgs("-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "Usage:")

	code, stdout, _ := runArgs("-version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "english version "+Version+"\n", stdout)
}
