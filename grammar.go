package english

import (
	"errors"

	"github.com/govalues/decimal"
)

// errNoMatch is returned by a rule that does not match at the given position.
// Any other error aborts the whole parse.
var errNoMatch = errors.New("no match")

// rule matches tokens starting at pos and returns the value of the match
// together with the position of the first unconsumed token.
// Rules are pure functions and never modify toks.
type rule func(toks []token, pos int) (decimal.Decimal, int, error)

// keyword matches a single keyword token naming one of the literals.
func keyword(lits ...literal) rule {
	set := make(map[string]literal, len(lits))
	for _, l := range lits {
		set[l.String()] = l
	}
	return func(toks []token, pos int) (decimal.Decimal, int, error) {
		if pos >= len(toks) || toks[pos].kind != tokKeyword {
			return decimal.Decimal{}, pos, errNoMatch
		}
		l, ok := set[toks[pos].text]
		if !ok {
			return decimal.Decimal{}, pos, errNoMatch
		}
		return l.Decimal(), pos + 1, nil
	}
}

// delimited matches 1 to maxGroups consecutive numeric literals and folds
// them as digit groups: total = total * 1000 + group.
// Separators between groups have already been dropped by the lexer, so
// "123,456" and "123 456" produce the same tokens.
func delimited(maxGroups int) rule {
	thousand := litThousand.Decimal()
	return func(toks []token, pos int) (decimal.Decimal, int, error) {
		var total decimal.Decimal
		end := pos
		for end < len(toks) && end-pos < maxGroups && toks[end].kind == tokNumber {
			group, err := decimal.Parse(trimZeros(toks[end].text))
			if err != nil {
				return decimal.Decimal{}, pos, newParseError(ErrOverflow, toks[end].pos, toks[end].text)
			}
			if end > pos {
				total, err = mulExact(total, thousand)
				if err != nil {
					return decimal.Decimal{}, pos, newParseError(ErrOverflow, toks[end].pos, toks[end].text)
				}
			}
			total, err = addExact(total, group)
			if err != nil {
				return decimal.Decimal{}, pos, newParseError(ErrOverflow, toks[end].pos, toks[end].text)
			}
			end++
		}
		if end == pos {
			return decimal.Decimal{}, pos, errNoMatch
		}
		return total, end, nil
	}
}

// trimZeros removes the leading zeros of a digit group such as "055".
func trimZeros(text string) string {
	for len(text) > 1 && text[0] == '0' && isDigit(rune(text[1])) {
		text = text[1:]
	}
	return text
}

// longest tries every alternative and keeps the match that consumes the
// most tokens. Ties are resolved in favour of the earlier alternative.
func longest(alts ...rule) rule {
	return func(toks []token, pos int) (decimal.Decimal, int, error) {
		var best decimal.Decimal
		bestEnd := -1
		for _, alt := range alts {
			d, end, err := alt(toks, pos)
			switch {
			case errors.Is(err, errNoMatch):
				continue
			case err != nil:
				return decimal.Decimal{}, pos, err
			}
			if end > bestEnd {
				best, bestEnd = d, end
			}
		}
		if bestEnd < 0 {
			return decimal.Decimal{}, pos, errNoMatch
		}
		return best, bestEnd, nil
	}
}

// optional matches r, or nothing with the value def.
func optional(r rule, def decimal.Decimal) rule {
	return func(toks []token, pos int) (decimal.Decimal, int, error) {
		d, end, err := r(toks, pos)
		if errors.Is(err, errNoMatch) {
			return def, pos, nil
		}
		return d, end, err
	}
}

// sum matches the rules in sequence and adds up their values.
func sum(rules ...rule) rule {
	return sequence(addExact, rules...)
}

// product matches the rules in sequence and multiplies their values.
func product(rules ...rule) rule {
	return sequence(mulExact, rules...)
}

// addExact returns a + b, or an error if any fractional digit would be lost.
func addExact(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.AddExact(b, max(a.Scale(), b.Scale()))
}

// mulExact returns a * b, or an error if any fractional digit would be lost.
func mulExact(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.MulExact(b, a.Scale()+b.Scale())
}

func sequence(op func(a, b decimal.Decimal) (decimal.Decimal, error), rules ...rule) rule {
	return func(toks []token, pos int) (decimal.Decimal, int, error) {
		var total decimal.Decimal
		end := pos
		for i, r := range rules {
			d, next, err := r(toks, end)
			if err != nil {
				return decimal.Decimal{}, pos, err
			}
			if i == 0 {
				total = d
			} else {
				total, err = op(total, d)
				if err != nil {
					return decimal.Decimal{}, pos, newParseError(ErrOverflow, posOf(toks, end), textOf(toks, end))
				}
			}
			end = next
		}
		return total, end, nil
	}
}

// nonEmpty rejects matches of r that consume no tokens.
func nonEmpty(r rule) rule {
	return func(toks []token, pos int) (decimal.Decimal, int, error) {
		d, end, err := r(toks, pos)
		if err != nil {
			return decimal.Decimal{}, pos, err
		}
		if end == pos {
			return decimal.Decimal{}, pos, errNoMatch
		}
		return d, end, nil
	}
}

// posOf returns the byte offset of the token at i, or of the end of the
// last token if i is past the end.
func posOf(toks []token, i int) int {
	switch {
	case i < len(toks):
		return toks[i].pos
	case len(toks) > 0:
		last := toks[len(toks)-1]
		return last.pos + len(last.text)
	default:
		return 0
	}
}

func textOf(toks []token, i int) string {
	if i < len(toks) {
		return toks[i].text
	}
	return ""
}
