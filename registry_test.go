package english

import (
	"slices"
	"testing"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestRegistry_LookupSymbol(t *testing.T) {
	r := DefaultRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			sym  string
			want Currency
		}{
			// Priority locales
			{"$", USD},
			{"£", GBP},
			// Other locales ordered by tag
			{"€", EUR},
			{"₹", INR},
			{"kr", ISK},
			{"kr.", DKK},
			{"CHF", CHF},
			{"R", ZAR},
			{"R$", BRL},
			{"HK$", HKD},
			{"¥", CNY},
			{"￥", JPY},
			{"₽", RUB},
			// Alternate symbols
			{"₣", FRF},
			{"₤", ITL},
			{"₧", ESP},
			{"₯", GRD},
			{"₻", FIM},
			{"₼", TMM},
			{"﹩", USD},
			{"＄", USD},
			{"￡", GBP},
			{"₱", MXN},
			{"₡", CRC},
		}
		for _, tt := range tests {
			got, ok := r.LookupSymbol(tt.sym)
			if !ok {
				t.Errorf("LookupSymbol(%q) failed", tt.sym)
				continue
			}
			if got != tt.want {
				t.Errorf("LookupSymbol(%q) = %v, want %v", tt.sym, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "US$", "USD", "£$", "lakh"}
		for _, tt := range tests {
			_, ok := r.LookupSymbol(tt)
			if ok {
				t.Errorf("LookupSymbol(%q) did not fail", tt)
			}
		}
	})
}

func TestRegistry_LookupName(t *testing.T) {
	r := DefaultRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want Currency
		}{
			{"US Dollar", USD},
			{"us dollar", USD},
			{"US  DOLLAR", USD},
			{"British Pound Sterling", GBP},
			{"euro", EUR},
			{"Trinidad and Tobago Dollar", TTD},
			{"trinidad tobago dollar", TTD},
			{"South African Rand", ZAR},
		}
		for _, tt := range tests {
			got, ok := r.LookupName(tt.name)
			if !ok {
				t.Errorf("LookupName(%q) failed", tt.name)
				continue
			}
			if got != tt.want {
				t.Errorf("LookupName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "dollar", "pound", "French Franc", "Unknown Currency", "USD"}
		for _, tt := range tests {
			_, ok := r.LookupName(tt)
			if ok {
				t.Errorf("LookupName(%q) did not fail", tt)
			}
		}
	})
}

func TestRegistry_Locales(t *testing.T) {
	r := DefaultRegistry()
	got := r.Locales()
	if len(got) != len(locales) {
		t.Fatalf("len(Locales()) = %v, want %v", len(got), len(locales))
	}
	if got[0].Tag != language.AmericanEnglish || got[1].Tag != language.BritishEnglish {
		t.Errorf("Locales()[:2] = %v, %v, want %v, %v", got[0].Tag, got[1].Tag, language.AmericanEnglish, language.BritishEnglish)
	}
	// The remaining locales keep their order.
	rest := got[2:]
	for i := 1; i < len(rest); i++ {
		if rest[i-1].Tag.String() > rest[i].Tag.String() {
			t.Errorf("Locales() has %v before %v", rest[i-1].Tag, rest[i].Tag)
		}
	}
	// The result is a copy.
	got[0].Curr = XXX
	if r.Locales()[0].Curr != USD {
		t.Errorf("Locales() exposes internal state")
	}
}

// TestRegistry_Territories checks some of the bundled locales against the
// CLDR currency of their territory.
func TestRegistry_Territories(t *testing.T) {
	want := map[string]Currency{
		"en-US": USD,
		"en-GB": GBP,
		"en-IN": INR,
		"ja-JP": JPY,
		"de-DE": EUR,
		"pt-BR": BRL,
		"zh-CN": CNY,
	}
	found := 0
	for _, l := range DefaultRegistry().Locales() {
		c, ok := want[l.Tag.String()]
		if !ok {
			continue
		}
		found++
		if l.Curr != c {
			t.Errorf("%v uses %v, want %v", l.Tag, l.Curr, c)
		}
		region, conf := l.Tag.Region()
		if conf != language.Exact {
			t.Errorf("%v has no territory", l.Tag)
			continue
		}
		unit, ok := currency.FromRegion(region)
		if !ok {
			t.Errorf("currency.FromRegion(%v) failed", region)
			continue
		}
		if unit.String() != c.Code() {
			t.Errorf("currency.FromRegion(%v) = %v, want %v", region, unit, c)
		}
	}
	if found != len(want) {
		t.Errorf("found %v of %v locales", found, len(want))
	}
}

func TestRegistry_Symbols(t *testing.T) {
	got := DefaultRegistry().Symbols()
	for _, sym := range []string{"$", "£", "€", "HK$", "R$", "kr.", "￥", "₣"} {
		if !slices.Contains(got, sym) {
			t.Errorf("Symbols() does not contain %q", sym)
		}
	}
	for i := 1; i < len(got); i++ {
		if len(got[i-1]) < len(got[i]) {
			t.Errorf("Symbols() has %q before %q", got[i-1], got[i])
		}
	}
	seen := map[string]bool{}
	for _, sym := range got {
		if seen[sym] {
			t.Errorf("Symbols() contains %q twice", sym)
		}
		seen[sym] = true
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("priority", func(t *testing.T) {
		tests := []struct {
			priority []language.Tag
			sym      string
			want     Currency
		}{
			{nil, "$", USD},
			{[]language.Tag{language.MustParse("en-AU")}, "$", AUD},
			{[]language.Tag{language.MustParse("es-MX"), language.AmericanEnglish}, "$", MXN},
			{[]language.Tag{language.Japanese}, "$", AUD}, // no such locale
			{[]language.Tag{language.MustParse("nb-NO")}, "kr", NOK},
			{[]language.Tag{language.MustParse("zh-CN")}, "¥", CNY},
		}
		for _, tt := range tests {
			r := NewRegistry(locales, altSymbols, tt.priority...)
			got, ok := r.LookupSymbol(tt.sym)
			if !ok {
				t.Errorf("NewRegistry(%v).LookupSymbol(%q) failed", tt.priority, tt.sym)
				continue
			}
			if got != tt.want {
				t.Errorf("NewRegistry(%v).LookupSymbol(%q) = %v, want %v", tt.priority, tt.sym, got, tt.want)
			}
		}
	})

	t.Run("alternates", func(t *testing.T) {
		r := NewRegistry(nil, altSymbols)
		tests := []struct {
			sym  string
			want Currency
		}{
			{"$", USD},
			{"¥", JPY},
			{"₽", BYR},
		}
		for _, tt := range tests {
			got, ok := r.LookupSymbol(tt.sym)
			if !ok || got != tt.want {
				t.Errorf("LookupSymbol(%q) = %v, %v, want %v", tt.sym, got, ok, tt.want)
			}
		}
		if _, ok := r.LookupName("US Dollar"); ok {
			t.Errorf("LookupName(\"US Dollar\") did not fail")
		}
	})
}

func TestDefaultPriority(t *testing.T) {
	got := DefaultPriority()
	want := []language.Tag{language.AmericanEnglish, language.BritishEnglish}
	if !slices.Equal(got, want) {
		t.Errorf("DefaultPriority() = %v, want %v", got, want)
	}

	// The result is a copy.
	got[0] = language.MustParse("en-AU")
	if p := DefaultPriority(); p[0] != language.AmericanEnglish {
		t.Errorf("DefaultPriority()[0] = %v, want %v", p[0], language.AmericanEnglish)
	}
	c, ok := NewRegistry(locales, altSymbols).LookupSymbol("$")
	if !ok || c != USD {
		t.Errorf("NewRegistry().LookupSymbol(\"$\") = %v, %v, want %v", c, ok, USD)
	}
}
