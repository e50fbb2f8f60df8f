package english

import (
	"fmt"
	"testing"

	"golang.org/x/text/currency"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"xxx", XXX},
			{"XXX", XXX},
			{"jpy", JPY},
			{"JPY", JPY},
			{"usd", USD},
			{"USD", USD},
			{"gbp", GBP},
			{"GBP", GBP},
			{"frf", FRF},
			{"TTD", TTD},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "840", "test", "xbt", "$", "AU$", "BTC", "Usd", "US Dollar",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{EUR, "EUR"},
		{GBP, "GBP"},
		{USD, "USD"},
		{ZAR, "ZAR"},
		{Currency(255), "XXX"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Name(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "Unknown Currency"},
		{EUR, "Euro"},
		{GBP, "British Pound Sterling"},
		{USD, "US Dollar"},
		{TTD, "Trinidad and Tobago Dollar"},
		{Currency(255), "Unknown Currency"},
	}
	for _, tt := range tests {
		got := tt.curr.Name()
		if got != tt.want {
			t.Errorf("%v.Name() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Tables(t *testing.T) {
	if len(codeLookup) != len(nameLookup) {
		t.Fatalf("len(codeLookup) = %v, len(nameLookup) = %v", len(codeLookup), len(nameLookup))
	}
	for i, code := range codeLookup {
		c := Currency(i)
		if len(code) != 3 {
			t.Errorf("%v.Code() = %q, want 3 letters", c, code)
		}
		if got, err := ParseCurr(code); err != nil || got != c {
			t.Errorf("ParseCurr(%q) = %v, %v, want %v", code, got, err, c)
		}
		if nameLookup[i] == "" {
			t.Errorf("%v.Name() is empty", c)
		}
	}
}

// TestCurrency_ISO checks that every currency used by a locale is known
// to the CLDR data of golang.org/x/text.
func TestCurrency_ISO(t *testing.T) {
	for _, l := range locales {
		unit, err := currency.ParseISO(l.Curr.Code())
		if err != nil {
			t.Errorf("currency.ParseISO(%q) failed: %v", l.Curr.Code(), err)
			continue
		}
		if unit.String() != l.Curr.Code() {
			t.Errorf("currency.ParseISO(%q) = %v", l.Curr.Code(), unit)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr, format, want string
	}{
		{"USD", "%v", "USD"},
		{"USD", "%s", "USD"},
		{"USD", "%c", "USD"},
		{"USD", "%q", "\"USD\""},
		{"USD", "%n", "US Dollar"},
		{"USD", "%5s", "  USD"},
		{"USD", "%-5s", "USD  "},
		{"GBP", "%-24n|", "British Pound Sterling  |"},
		{"EUR", "%x", "%!x(english.Currency=EUR)"},
	}
	for _, tt := range tests {
		c := MustParseCurr(tt.curr)
		got := fmt.Sprintf(tt.format, c)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, c, got, tt.want)
		}
	}
}

func TestCurrency_MarshalText(t *testing.T) {
	got, err := GBP.MarshalText()
	if err != nil {
		t.Fatalf("%v.MarshalText() failed: %v", GBP, err)
	}
	if string(got) != "GBP" {
		t.Errorf("%v.MarshalText() = %q, want %q", GBP, got, "GBP")
	}
}

func TestCurrency_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var c Currency
		if err := c.UnmarshalText([]byte("eur")); err != nil {
			t.Fatalf("UnmarshalText(\"eur\") failed: %v", err)
		}
		if c != EUR {
			t.Errorf("UnmarshalText(\"eur\") = %v, want %v", c, EUR)
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := c.UnmarshalText([]byte("euro")); err == nil {
			t.Errorf("UnmarshalText(\"euro\") did not fail")
		}
	})
}
