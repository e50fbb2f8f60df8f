package english

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is a unit of elapsed time, from [Nanosecond] to [Day].
// Units are ordered by size.
type Unit uint8

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

var unitSizes = [...]time.Duration{
	Nanosecond:  time.Nanosecond,
	Microsecond: time.Microsecond,
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	Day:         24 * time.Hour,
}

var unitNames = [...]string{
	Nanosecond:  "nanoseconds",
	Microsecond: "microseconds",
	Millisecond: "milliseconds",
	Second:      "seconds",
	Minute:      "minutes",
	Hour:        "hours",
	Day:         "days",
}

// unitAliases maps plural unit words to units.
var unitAliases = func() map[string]Unit {
	m := map[string]Unit{
		"hrs":    Hour,
		"mins":   Minute,
		"secs":   Second,
		"s":      Second,
		"ms":     Millisecond,
		"millis": Millisecond,
		"micros": Microsecond,
		"us":     Microsecond,
		"ns":     Nanosecond,
		"nanos":  Nanosecond,
	}
	for u, name := range unitNames {
		m[name] = Unit(u)
	}
	return m
}()

// ParseUnit converts a unit word to a unit.
// Singular, plural and abbreviated forms are accepted:
//
//	hour
//	hours
//	hrs
//	ms
//
// ParseUnit returns an error if the word does not name a unit.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitAliases[pluralize(strings.ToLower(s))]
	if !ok || s == "" {
		return 0, fmt.Errorf("parsing unit: %w", newParseError(ErrUnknownUnit, 0, s))
	}
	return u, nil
}

// Duration returns the length of the unit.
func (u Unit) Duration() time.Duration {
	if int(u) >= len(unitSizes) {
		return 0
	}
	return unitSizes[u]
}

// String returns the canonical plural name of the unit, for example "hours".
func (u Unit) String() string {
	if int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", u)
	}
	return unitNames[u]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also function [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unit(0), err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// pluralize returns the plural form of a lower-case word.
func pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "ium"):
		return strings.TrimSuffix(word, "ium") + "ia"
	case strings.HasSuffix(word, "ry"):
		return strings.TrimSuffix(word, "ry") + "ries"
	case strings.HasSuffix(word, "s"):
		return word
	default:
		return word + "s"
	}
}

// singularize is the inverse of pluralize.
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ia"):
		return strings.TrimSuffix(word, "ia") + "ium"
	case strings.HasSuffix(word, "ries"):
		return strings.TrimSuffix(word, "ries") + "ry"
	case strings.HasSuffix(word, "s"):
		return strings.TrimSuffix(word, "s")
	default:
		return word
	}
}

// segment matches an optional amount and a unit word at the start of the text.
var segment = regexp.MustCompile(`^(?:\s*(\d+))?\s*([A-Za-z]+)\s*`)

// DurationFormat renders durations as English text and reads them back.
// Accuracy is the smallest unit that is rendered; an accuracy above [Day]
// is treated as [Day].
// ShowZeroes renders units with a zero count.
type DurationFormat struct {
	Accuracy   Unit
	ShowZeroes bool
}

// DefaultDurationFormat renders milliseconds and above and omits zero units.
var DefaultDurationFormat = DurationFormat{Accuracy: Millisecond}

// ParseDuration converts English duration text to a duration.
// The total is limited to the range of [time.Duration], about 106751 days.
// See [DurationFormat.Parse].
func ParseDuration(s string) (time.Duration, error) {
	return DefaultDurationFormat.Parse(s)
}

// MustParseDuration is like [ParseDuration] but panics if the text cannot be parsed.
func MustParseDuration(s string) time.Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDuration(%q) failed: %v", s, err))
	}
	return d
}

// FormatDuration renders a duration with [DefaultDurationFormat].
func FormatDuration(d time.Duration) string {
	return DefaultDurationFormat.Format(d)
}

// Parse converts English duration text to a duration.
// The text is a sequence of segments, each an optional count followed by
// a unit word:
//
//	1 hour 17 minutes
//	1 hr 17 mins
//	hour
//	85 mins.
//
// A segment without a count means one unit. Parsing stops at the first text
// that is not a segment, or at a word without a count that is not a unit,
// so trailing punctuation and words are ignored.
// The accuracy of the format does not restrict parsing.
//
// Parse returns an error if:
//   - the text does not start with a segment;
//   - a count is followed by a word that is not a unit;
//   - the total does not fit into [time.Duration], that is, it exceeds
//     106751 days 23 hours 47 minutes 16.854775807 seconds.
func (f DurationFormat) Parse(s string) (time.Duration, error) {
	var total time.Duration
	rest, pos, n := s, 0, 0
	for {
		m := segment.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		count := int64(1)
		if m[2] >= 0 {
			c, err := strconv.ParseInt(rest[m[2]:m[3]], 10, 64)
			if err != nil {
				return 0, fmt.Errorf("parsing duration: %w", newParseError(ErrOverflow, pos+m[2], rest[m[2]:m[3]]))
			}
			count = c
		}
		word := rest[m[4]:m[5]]
		u, ok := unitAliases[pluralize(strings.ToLower(word))]
		switch {
		case !ok && m[2] < 0:
			// A bare word that is not a unit is trailing text.
			rest = ""
			continue
		case !ok:
			return 0, fmt.Errorf("parsing duration: %w", newParseError(ErrUnknownUnit, pos+m[4], word))
		}
		d, ok := mulDuration(u.Duration(), count)
		if ok {
			total, ok = addDuration(total, d)
		}
		if !ok {
			return 0, fmt.Errorf("parsing duration: %w", newParseError(ErrOverflow, pos+m[0], rest[m[0]:m[1]]))
		}
		n++
		rest, pos = rest[m[1]:], pos+m[1]
	}
	if n == 0 {
		return 0, fmt.Errorf("parsing duration: %w", newParseError(ErrNoSegments, 0, s))
	}
	return total, nil
}

func mulDuration(d time.Duration, n int64) (time.Duration, bool) {
	if n != 0 && int64(d) > math.MaxInt64/n {
		return 0, false
	}
	return d * time.Duration(n), true
}

func addDuration(a, b time.Duration) (time.Duration, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

// Format renders the duration as English text, for example
// "1 hour 17 minutes". Units are rendered from days down to the accuracy
// of the format and joined with single spaces; a unit with a count of one
// is singular. Units below a second are taken from the fractional second,
// larger units from the whole seconds.
// A negative duration is rendered with a leading "-".
// If no unit is rendered, the result is "0 " followed by the plural name
// of the accuracy unit.
func (f DurationFormat) Format(d time.Duration) string {
	// Magnitude
	neg := d < 0
	mag := uint64(d)
	if neg {
		mag = -mag
	}
	secs := mag / uint64(time.Second)
	nanos := mag % uint64(time.Second)

	// Units
	accuracy := min(f.Accuracy, Day)
	var parts []string
	for u := Day; u >= accuracy && u <= Day; u-- {
		var n uint64
		if u >= Second {
			size := uint64(u.Duration() / time.Second)
			n, secs = secs/size, secs%size
		} else {
			size := uint64(u.Duration())
			n, nanos = nanos/size, nanos%size
		}
		if n == 0 && !f.ShowZeroes {
			continue
		}
		name := u.String()
		if n == 1 {
			name = singularize(name)
		}
		parts = append(parts, strconv.FormatUint(n, 10)+" "+name)
	}

	if len(parts) == 0 {
		return "0 " + accuracy.String()
	}
	text := strings.Join(parts, " ")
	if neg {
		text = "-" + text
	}
	return text
}
