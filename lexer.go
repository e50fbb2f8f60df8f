package english

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// vocabulary is the set of words and symbols a lexer recognizes.
// It is immutable once built and safe for concurrent use.
type vocabulary struct {
	keywords map[string]struct{}
	symbols  []symbol // longest first
}

type symbol struct {
	text  string
	alpha bool // letters only, such as "CHF" or "kr"
}

// newVocabulary builds a vocabulary from upper-case keywords and currency symbols.
func newVocabulary(keywords, symbols []string) *vocabulary {
	v := &vocabulary{keywords: make(map[string]struct{}, len(keywords))}
	for _, w := range keywords {
		v.keywords[w] = struct{}{}
	}
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		v.symbols = append(v.symbols, symbol{text: s, alpha: isAlphabetic(s)})
	}
	sort.Slice(v.symbols, func(i, j int) bool {
		a, b := v.symbols[i].text, v.symbols[j].text
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return v
}

// numberVocabulary contains number words only.
var numberVocabulary = newVocabulary(numberWords(), nil)

func (v *vocabulary) isKeyword(word string) bool {
	_, ok := v.keywords[word]
	return ok
}

// matchSymbol returns the longest symbol that s starts with.
// Alphabetic symbols must not be followed by a letter, so that "R" does not
// match the beginning of "RAND".
func (v *vocabulary) matchSymbol(s string) (string, bool) {
	for _, sym := range v.symbols {
		if !strings.HasPrefix(s, sym.text) {
			continue
		}
		if sym.alpha {
			if r, _ := utf8.DecodeRuneInString(s[len(sym.text):]); unicode.IsLetter(r) {
				continue
			}
		}
		return sym.text, true
	}
	return "", false
}

// lexer splits text into tokens on demand.
// A lexer is used for a single parse and is not safe for concurrent use.
type lexer struct {
	text  string
	pos   int
	vocab *vocabulary
	upper cases.Caser
}

func newLexer(text string, vocab *vocabulary) *lexer {
	return &lexer{
		text:  text,
		vocab: vocab,
		upper: cases.Upper(language.English),
	}
}

// tokenize returns all tokens of the text.
func tokenize(text string, vocab *vocabulary) ([]token, error) {
	var toks []token
	l := newLexer(text, vocab)
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next returns the next token.
// It returns false if there are no more tokens.
func (l *lexer) next() (token, bool, error) {
	l.skipIgnorable()
	if l.pos >= len(l.text) {
		return token{}, false, nil
	}
	rest := l.text[l.pos:]

	// Symbols
	if sym, ok := l.vocab.matchSymbol(rest); ok {
		tok := token{kind: tokOperator, text: sym, pos: l.pos}
		l.pos += len(sym)
		return tok, true, nil
	}

	r, size := utf8.DecodeRuneInString(rest)
	switch {
	// Words
	case isWordStart(r):
		n := wordLen(rest)
		word := l.upper.String(rest[:n])
		if !l.vocab.isKeyword(word) {
			return token{}, false, newParseError(ErrLex, l.pos, rest[:n])
		}
		tok := token{kind: tokKeyword, text: word, pos: l.pos}
		l.pos += n
		return tok, true, nil

	// Numbers
	case isDigit(r) || r == '.':
		n := numberLen(rest)
		if n == 0 {
			return token{}, false, newParseError(ErrLex, l.pos, rest[:size])
		}
		if n < len(rest) && rest[n] == '.' {
			return token{}, false, newParseError(ErrLex, l.pos+n, rest[n:n+1])
		}
		text := rest[:n]
		if text[0] == '.' {
			text = "0" + text
		}
		tok := token{kind: tokNumber, text: text, pos: l.pos}
		l.pos += n
		return tok, true, nil
	}

	return token{}, false, newParseError(ErrLex, l.pos, rest[:size])
}

// skipIgnorable advances past white space, grouping separators and
// the word "and".
func (l *lexer) skipIgnorable() {
	for l.pos < len(l.text) {
		rest := l.text[l.pos:]
		r, size := utf8.DecodeRuneInString(rest)
		switch {
		case unicode.IsSpace(r), isSeparator(r):
			l.pos += size
		case hasWord(rest, "and"):
			l.pos += len("and")
		default:
			return
		}
	}
}

// isSeparator reports whether r is a digit-grouping separator:
// comma, Arabic comma, Arabic decimal separator or Arabic thousands separator.
func isSeparator(r rune) bool {
	switch r {
	case ',', '،', '٫', '٬':
		return true
	}
	return false
}

// hasWord reports whether s starts with the whole word w, ignoring case.
func hasWord(s, w string) bool {
	if len(s) < len(w) || !strings.EqualFold(s[:len(w)], w) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[len(w):])
	return !isWordPart(r)
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func wordLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isWordPart(r) {
			break
		}
		n += size
	}
	return n
}

// numberLen returns the length of the numeric literal at the start of s:
// digits with at most one decimal point that is followed by a digit.
// It returns 0 if s does not start with a numeric literal.
func numberLen(s string) int {
	n := 0
	for n < len(s) && isDigit(rune(s[n])) {
		n++
	}
	if n < len(s)-1 && s[n] == '.' && isDigit(rune(s[n+1])) {
		n++
		for n < len(s) && isDigit(rune(s[n])) {
			n++
		}
	}
	return n
}
