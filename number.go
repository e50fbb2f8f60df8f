package english

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// maxGroups is the maximum number of thousands-separated digit groups,
// enough for "999,999,999,999,999".
const maxGroups = 5

// numberGrammar folds number words and digit groups into an exact decimal.
// It is immutable and safe for concurrent use.
type numberGrammar struct {
	numbers rule
}

// newNumberGrammar assembles the rules bottom-up:
//
//	ones        = ONE..NINE | digits
//	teens       = TEN..NINETEEN | digits
//	tens        = TWENTY..NINETY | digits
//	twentyTo99  = tens [ones]
//	oneTo99     = ones | teens | twentyTo99
//	hundreds    = [ones] HUNDRED
//	oneTo999    = [hundreds] [oneTo99]
//	scale(word) = [oneTo999] word
//	allPositive = [scale(TRILLION)] [scale(BILLION)] [scale(MILLION)] [scale(THOUSAND)] [oneTo999]
//	numbers     = allPositive | ZERO | digits
//
// Alternatives are resolved by the longest match.
func newNumberGrammar() *numberGrammar {
	zero, one := decimal.Decimal{}, litOne.Decimal()
	digits := delimited(maxGroups)
	words := func(min, max literal) rule {
		return longest(keyword(literalsBetween(min, max)...), digits)
	}

	ones := words(litOne, litNine)
	teens := words(litTen, litNineteen)
	tens := words(litTwenty, litNinety)
	twentyTo99 := sum(tens, optional(ones, zero))
	oneTo99 := longest(ones, teens, twentyTo99)
	hundreds := product(optional(ones, one), keyword(litHundred))
	oneTo999 := nonEmpty(sum(optional(hundreds, zero), optional(oneTo99, zero)))
	scale := func(l literal) rule {
		return optional(product(optional(oneTo999, one), keyword(l)), zero)
	}
	allPositive := nonEmpty(sum(
		scale(litTrillion),
		scale(litBillion),
		scale(litMillion),
		scale(litThousand),
		optional(oneTo999, zero),
	))

	return &numberGrammar{
		numbers: longest(allPositive, words(litZero, litZero)),
	}
}

var defaultNumberGrammar = newNumberGrammar()

// match parses toks that were produced from s.
// All tokens must be consumed.
func (g *numberGrammar) match(s string, toks []token) (decimal.Decimal, error) {
	d, end, err := g.numbers(toks, 0)
	switch {
	case errors.Is(err, errNoMatch):
		return decimal.Decimal{}, mismatch(s, toks, 0)
	case err != nil:
		return decimal.Decimal{}, err
	case end < len(toks):
		return decimal.Decimal{}, mismatch(s, toks, end)
	}
	return d.Trim(0), nil
}

// mismatch returns a grammar mismatch error at the token i.
func mismatch(s string, toks []token, i int) error {
	if i >= len(toks) {
		return newParseError(ErrGrammarMismatch, len(s), "")
	}
	return newParseError(ErrGrammarMismatch, toks[i].pos, toks[i].text)
}

// ParseNumber converts an English cardinal number to a decimal.
// Number words, digit groups and a mix of both are accepted:
//
//	two hundred sixty four
//	forty five thousand and fifty five
//	45,055
//	23 million, three hundred and 97
//	1.4 million
//
// Words are case-insensitive. White space, commas, Arabic separators and
// the word "and" are ignored between tokens.
// The result is exact and has no trailing fractional zeros.
//
// ParseNumber returns an error wrapping a [*ParseError] if:
//   - the text contains a word or character that is not part of a number;
//   - the words do not form a number;
//   - the number exceeds [decimal.MaxPrec] significant digits.
func ParseNumber(s string) (decimal.Decimal, error) {
	toks, err := tokenize(s, numberVocabulary)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing number: %w", err)
	}
	d, err := defaultNumberGrammar.match(s, toks)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing number: %w", err)
	}
	return d, nil
}

// MustParseNumber is like [ParseNumber] but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string) decimal.Decimal {
	d, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q) failed: %v", s, err))
	}
	return d
}
