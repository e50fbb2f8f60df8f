package english

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale is a territory together with the currency it uses and the symbol
// of that currency in the territory, for example en-GB, GBP, "£".
type Locale struct {
	Tag    language.Tag
	Curr   Currency
	Symbol string
}

// AltSymbol is a currency symbol that is not the symbol of any locale,
// such as a full-width form or the sign of a withdrawn currency.
type AltSymbol struct {
	Curr        Currency
	Symbol      string
	Description string
}

// Registry resolves currency symbols and English currency names.
// When the same symbol or name is used by several currencies, the locale
// that comes first in the priority order wins.
// A Registry is immutable and safe for concurrent use by multiple goroutines.
type Registry struct {
	locales []Locale            // priority order
	symbols map[string]Currency // first hit wins
	names   map[string]Currency // upper-case words joined by a single space
	phrases [][]string          // longest first
	vocab   *vocabulary
	numbers *numberGrammar
}

var defaultPriority = [...]language.Tag{language.AmericanEnglish, language.BritishEnglish}

// DefaultPriority returns the locale priority used when none is given to
// [NewRegistry]: American English, then British English.
func DefaultPriority() []language.Tag {
	return slices.Clone(defaultPriority[:])
}

// NewRegistry returns a registry over the locales and alternate symbols.
// Locales with a tag from priority come first, in the order of priority,
// followed by the remaining locales in their original order.
// Alternate symbols are only consulted after all locales.
// If priority is empty, [DefaultPriority] is used.
func NewRegistry(locs []Locale, alts []AltSymbol, priority ...language.Tag) *Registry {
	if len(priority) == 0 {
		priority = defaultPriority[:]
	}
	r := &Registry{
		locales: orderLocales(locs, priority),
		symbols: make(map[string]Currency),
		names:   make(map[string]Currency),
		numbers: defaultNumberGrammar,
	}

	// Symbols
	syms := make([]string, 0, len(r.locales)+len(alts))
	for _, l := range r.locales {
		if _, ok := r.symbols[l.Symbol]; !ok && l.Symbol != "" {
			r.symbols[l.Symbol] = l.Curr
		}
		syms = append(syms, l.Symbol)
	}
	for _, a := range alts {
		if _, ok := r.symbols[a.Symbol]; !ok && a.Symbol != "" {
			r.symbols[a.Symbol] = a.Curr
		}
		syms = append(syms, a.Symbol)
	}

	// Names
	upper := cases.Upper(language.English)
	words := numberWords()
	for _, l := range r.locales {
		phrase := nameWords(upper.String(l.Curr.Name()))
		if len(phrase) == 0 {
			continue
		}
		key := strings.Join(phrase, " ")
		if _, ok := r.names[key]; ok {
			continue
		}
		r.names[key] = l.Curr
		r.phrases = append(r.phrases, phrase)
		words = append(words, phrase...)
	}
	sort.SliceStable(r.phrases, func(i, j int) bool {
		return len(r.phrases[i]) > len(r.phrases[j])
	})

	r.vocab = newVocabulary(words, syms)
	return r
}

// orderLocales returns the locales with the prioritized ones first.
func orderLocales(locs []Locale, priority []language.Tag) []Locale {
	ordered := make([]Locale, 0, len(locs))
	used := make([]bool, len(locs))
	for _, tag := range priority {
		for i, l := range locs {
			if !used[i] && l.Tag == tag {
				ordered = append(ordered, l)
				used[i] = true
			}
		}
	}
	for i, l := range locs {
		if !used[i] {
			ordered = append(ordered, l)
		}
	}
	return ordered
}

// nameWords splits an upper-case display name into words.
// The word "AND" is dropped because the lexer ignores it.
func nameWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if w == "AND" {
			continue
		}
		words = append(words, w)
	}
	return words
}

var defaultRegistry = NewRegistry(locales, altSymbols)

// DefaultRegistry returns the registry built from the bundled locale and
// alternate symbol tables with [DefaultPriority].
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// LookupSymbol returns the currency denoted by the symbol.
// The symbol is compared exactly.
func (r *Registry) LookupSymbol(sym string) (Currency, bool) {
	c, ok := r.symbols[sym]
	return c, ok
}

// LookupName returns the currency with the English display name.
// The name is compared case-insensitively, word by word.
func (r *Registry) LookupName(name string) (Currency, bool) {
	upper := cases.Upper(language.English)
	c, ok := r.names[strings.Join(nameWords(upper.String(name)), " ")]
	return c, ok
}

// Symbols returns all recognized symbols, longest first.
func (r *Registry) Symbols() []string {
	syms := make([]string, len(r.vocab.symbols))
	for i, s := range r.vocab.symbols {
		syms[i] = s.text
	}
	return syms
}

// Locales returns the locales in priority order.
func (r *Registry) Locales() []Locale {
	locs := make([]Locale, len(r.locales))
	copy(locs, r.locales)
	return locs
}

// matchName returns the currency whose name starts at toks[pos] and
// the position after it.
func (r *Registry) matchName(toks []token, pos int) (Currency, int, bool) {
	for _, phrase := range r.phrases {
		if pos+len(phrase) > len(toks) {
			continue
		}
		ok := true
		for i, w := range phrase {
			if t := toks[pos+i]; t.kind != tokKeyword || t.text != w {
				ok = false
				break
			}
		}
		if ok {
			return r.names[strings.Join(phrase, " ")], pos + len(phrase), true
		}
	}
	return XXX, pos, false
}
