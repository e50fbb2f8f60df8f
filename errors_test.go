package english

import (
	"errors"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{newParseError(ErrLex, 5, "lakh"), `unrecognized text at position 5: "lakh"`},
		{newParseError(ErrGrammarMismatch, 0, ""), "grammar mismatch at position 0: unexpected end of input"},
		{newParseError(ErrUnknownUnit, 2, "bananas"), `unknown duration unit at position 2: "bananas"`},
	}
	for _, tt := range tests {
		got := tt.err.Error()
		if got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseError_Unwrap(t *testing.T) {
	kinds := []error{
		ErrLex, ErrGrammarMismatch, ErrUnresolvedSymbol, ErrUnresolvedName,
		ErrUnknownUnit, ErrNoSegments, ErrOverflow,
	}
	for _, kind := range kinds {
		err := error(newParseError(kind, 0, ""))
		for _, other := range kinds {
			if got := errors.Is(err, other); got != (kind == other) {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", err, other, got, kind == other)
			}
		}
	}
}

func TestParseNumber_ErrorMessage(t *testing.T) {
	_, err := ParseNumber("two hundred banana")
	want := `parsing number: unrecognized text at position 12: "banana"`
	if err == nil || err.Error() != want {
		t.Errorf("ParseNumber(\"two hundred banana\") = %v, want %v", err, want)
	}
}
