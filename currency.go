package english

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency is a currency that can be named in English text.
// Its zero value is [XXX], the code for "no currency".
//
// A Currency is a small index into generated tables holding the [ISO 4217]
// code and the English display name. The tables also list historical
// currencies that are still written with a symbol of their own, such as
// the French Franc. Currency values are immutable and can be shared
// between goroutines.
//
// Persist the code returned by [Currency.Code], not the index.
// The index of a currency changes whenever the tables are regenerated.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr looks up a currency by its alphabetic code, written as:
//
//	USD
//	usd
//
// ParseCurr returns an error if the string does not represent a known currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the [3-letter code] of the currency.
// This method always returns a valid code.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if int(c) >= len(codeLookup) {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}

// Name returns the English display name of the currency, for example
// "US Dollar" or "British Pound Sterling".
func (c Currency) Name() string {
	if int(c) >= len(nameLookup) {
		return nameLookup[XXX]
	}
	return nameLookup[c]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example     | Description     |
//	| ---------- | ----------- | --------------- |
//	| %c, %s, %v | USD         | Currency code   |
//	| %q         | "USD"       | Quoted code     |
//	| %n         | US Dollar   | English name    |
//
// The width and '-' flag are applied to the whole text.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'c', 'C', 's', 'S', 'v', 'V':
		text = c.Code()
	case 'q', 'Q':
		text = `"` + c.Code() + `"`
	case 'n', 'N':
		text = c.Name()
	default:
		text = "%!" + string(verb) + "(english.Currency=" + c.Code() + ")"
	}
	writePadded(state, text)
}

// writePadded writes text to state honouring the width and '-' flag.
func writePadded(state fmt.State, text string) {
	pad := 0
	if w, ok := state.Width(); ok {
		pad = w - len([]rune(text))
	}
	buf := make([]byte, 0, len(text)+max(pad, 0))
	if pad > 0 && !state.Flag('-') {
		for i := 0; i < pad; i++ {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, text...)
	if pad > 0 && state.Flag('-') {
		for i := 0; i < pad; i++ {
			buf = append(buf, ' ')
		}
	}
	state.Write(buf) //nolint:errcheck
}
