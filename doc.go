/*
Package english reads quantities written in English: cardinal numbers,
currency amounts and durations. It also renders durations back to English.
Numbers are exact values of the [decimal] package, so "1.4 million" is
1400000 and not a floating-point approximation.

# Features

  - Number words, digit groups and a mix of both, such as "23 million, three hundred and 97"
  - Currency amounts with a symbol prefix ("£13 million") or a name suffix ("13 million us dollar")
  - Deterministic currency resolution through a locale priority order
  - Durations with aliases and trailing text ("1 hr 17 mins", "85 mins.")
  - Immutable tables and values, safe for use by multiple goroutines

# Representation

Numbers are returned as [decimal.Decimal] values without trailing fractional zeros.
A currency amount is an [Amount], which consists of a [Currency] and a decimal value.
Currency is implemented as an integer index into an in-memory array containing
the code and the English name of the currency.
Durations are [time.Duration] values.

# Grammar

Text is first split into tokens: currency symbols, number and currency-name
words and numeric literals. White space, commas, Arabic separators and the
word "and" are ignored between tokens, so "45,055", "45 055" and "45٬055"
are the same number.

Tokens are folded into a value by a set of composable rules. Whenever two
rules can match the same text, the rule that consumes more tokens wins.
Scale words multiply the number in front of them, and "million" alone means
one million. Non-Western scales such as "lakh" or "crore" are not supported.

# Currencies

Symbols and names are resolved by a [Registry]. The [DefaultRegistry] is built
from bundled locale data with English (United States) and English (United Kingdom)
ranked first, followed by the other locales ordered by tag, and finally by
alternate symbols such as "₣" or "￥". Thus "$" is the US Dollar and "¥" is the
Chinese Yuan, while "￥" is the Japanese Yen.

# Errors

All parsing functions return an error wrapping a [*ParseError] when the text
cannot be parsed. The error carries the kind of the failure and the byte
offset of the offending text. Use [errors.Is] with one of the Err* kinds,
such as [ErrGrammarMismatch], to test for a particular failure.
The Must* functions panic instead.
*/
package english
