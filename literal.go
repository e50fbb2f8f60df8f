package english

import (
	"fmt"

	"github.com/govalues/decimal"
)

// literal is an English number word.
// Literals are declared in ascending order of their values.
type literal uint8

const (
	litZero literal = iota
	litOne
	litTwo
	litThree
	litFour
	litFive
	litSix
	litSeven
	litEight
	litNine
	litTen
	litEleven
	litTwelve
	litThirteen
	litFourteen
	litFifteen
	litSixteen
	litSeventeen
	litEighteen
	litNineteen
	litTwenty
	litThirty
	litForty
	litFifty
	litSixty
	litSeventy
	litEighty
	litNinety
	litHundred
	litThousand
	litMillion
	litBillion
	litTrillion
)

// tier groups literals by the role they play in the grammar.
type tier uint8

const (
	tierUnits tier = iota // 0-9
	tierTeens             // 10-19
	tierTens              // 20, 30, ..., 90
	tierScale             // hundred, thousand, million, billion, trillion
)

var literalNames = [...]string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
	"TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
	"HUNDRED", "THOUSAND", "MILLION", "BILLION", "TRILLION",
}

var literalValues = [...]int64{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 30, 40, 50, 60, 70, 80, 90,
	100, 1_000, 1_000_000, 1_000_000_000, 1_000_000_000_000,
}

var literalLookup = func() map[string]literal {
	m := make(map[string]literal, len(literalNames))
	for i, name := range literalNames {
		m[name] = literal(i)
	}
	return m
}()

// parseLiteral returns the literal for an upper-case number word.
func parseLiteral(word string) (literal, bool) {
	l, ok := literalLookup[word]
	return l, ok
}

func (l literal) String() string {
	if int(l) >= len(literalNames) {
		return fmt.Sprintf("literal(%d)", l)
	}
	return literalNames[l]
}

// Value returns the exact integer value of the literal.
func (l literal) Value() int64 {
	return literalValues[l]
}

func (l literal) Decimal() decimal.Decimal {
	return decimal.MustNew(l.Value(), 0)
}

func (l literal) Tier() tier {
	switch {
	case l <= litNine:
		return tierUnits
	case l <= litNineteen:
		return tierTeens
	case l <= litNinety:
		return tierTens
	default:
		return tierScale
	}
}

// literalsBetween returns, in declaration order, every literal whose value
// lies within [min.Value(), max.Value()].
func literalsBetween(min, max literal) []literal {
	var lits []literal
	for i := range literalValues {
		l := literal(i)
		if l.Value() >= min.Value() && l.Value() <= max.Value() {
			lits = append(lits, l)
		}
	}
	return lits
}

// numberWords returns the names of all literals.
func numberWords() []string {
	words := make([]string, len(literalNames))
	copy(words, literalNames[:])
	return words
}
