package english

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokKeyword  tokenKind = iota + 1 // upper-case number or currency-name word
	tokOperator                      // currency symbol
	tokNumber                        // digits with an optional decimal point
)

func (k tokenKind) String() string {
	switch k {
	case tokKeyword:
		return "keyword"
	case tokOperator:
		return "operator"
	case tokNumber:
		return "number"
	default:
		return fmt.Sprintf("tokenKind(%d)", k)
	}
}

// token is a classified lexical unit.
type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the input
}

func (t token) hasPoint() bool {
	return t.kind == tokNumber && strings.IndexByte(t.text, '.') >= 0
}

// is reports whether t is the keyword for the literal.
func (t token) is(l literal) bool {
	return t.kind == tokKeyword && t.text == l.String()
}

func (t token) String() string {
	return fmt.Sprintf("%v %q at %d", t.kind, t.text, t.pos)
}
