package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestCurrency_ZeroValue(t *testing.T) {
	got := Currency("")
	if got.Code() != "" {
		t.Errorf("Currency(\"\").Code() = %q, want %q", got.Code(), "")
	}
	if got.Scale() != 0 {
		t.Errorf("Currency(\"\").Scale() = %v, want 0", got.Scale())
	}
}

func TestParseCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr string
			want Currency
		}{
			{"USD", "USD"},
			{"usd", "USD"},
			{"Usd", "USD"},
			{"EUR", "EUR"},
			{"JPY", "JPY"},
			{"OMR", "OMR"},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.curr)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.curr, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %q, want %q", tt.curr, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":     "",
			"too short": "US",
			"too long":  "ABCD",
			"unknown":   "UUU",
			"digits":    "123",
		}
		for name, curr := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := ParseCurr(curr); !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("ParseCurr(%q) = %v, want %v", curr, err, ErrInvalidCurrency)
				}
			})
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

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr  string
		scale int
	}{
		{"JPY", 0},
		{"USD", 2},
		{"EUR", 2},
		{"OMR", 3},
	}
	for _, tt := range tests {
		c := MustParseCurr(tt.curr)
		if got := c.Scale(); got != tt.scale {
			t.Errorf("%q.Scale() = %v, want %v", c, got, tt.scale)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr         Currency
		format, want string
	}{
		{"USD", "%s", "USD"},
		{"USD", "%v", "USD"},
		{"USD", "%c", "USD"},
		{"USD", "%q", "\"USD\""},
		{"USD", "%6c", "   USD"},
		{"USD", "%-6c", "USD   "},
		{"USD", "%d", "%!d(money.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(MustParseCurr("USD"))
		if err != nil {
			t.Fatalf("json.Marshal(\"USD\") failed: %v", err)
		}
		if string(got) != "\"USD\"" {
			t.Errorf("json.Marshal(\"USD\") = %q, want %q", got, "\"USD\"")
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte("\"usd\""), &c); err != nil {
			t.Fatalf("json.Unmarshal(\"usd\") failed: %v", err)
		}
		if c != MustParseCurr("USD") {
			t.Errorf("json.Unmarshal(\"usd\") = %q, want %q", c, "USD")
		}
		if err := json.Unmarshal([]byte("\"UUU\""), &c); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("json.Unmarshal(\"UUU\") = %v, want %v", err, ErrInvalidCurrency)
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	c := MustParseCurr("EUR")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("%q.MarshalText() failed: %v", c, err)
	}
	if string(text) != "EUR" {
		t.Errorf("%q.MarshalText() = %q, want %q", c, text, "EUR")
	}

	var got Currency
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if got != c {
		t.Errorf("UnmarshalText(%q) = %q, want %q", text, got, c)
	}
	if err := got.UnmarshalText([]byte("UUU")); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("UnmarshalText(\"UUU\") = %v, want %v", err, ErrInvalidCurrency)
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Currency
		}{
			{"USD", "USD"},
			{[]byte("eur"), "EUR"},
		}
		for _, tt := range tests {
			var c Currency
			if err := c.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if c != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, c, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"null": nil,
			"int":  42,
			"bad":  "UUU",
		}
		for name, value := range tests {
			t.Run(name, func(t *testing.T) {
				var c Currency
				if err := c.Scan(value); err == nil {
					t.Errorf("Scan(%v) did not fail", value)
				}
			})
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	c := MustParseCurr("JPY")
	got, err := c.Value()
	if err != nil {
		t.Fatalf("%q.Value() failed: %v", c, err)
	}
	if got != "JPY" {
		t.Errorf("%q.Value() = %v, want %q", c, got, "JPY")
	}
}

func TestNullCurrency(t *testing.T) {
	t.Run("scan null", func(t *testing.T) {
		n := NullCurrency{Currency: "USD", Valid: true}
		if err := n.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if n.Valid || n.Currency != "" {
			t.Errorf("Scan(nil) = %+v, want invalid", n)
		}
		got, err := n.Value()
		if err != nil {
			t.Fatalf("Value() failed: %v", err)
		}
		if got != nil {
			t.Errorf("Value() = %v, want nil", got)
		}
	})

	t.Run("scan value", func(t *testing.T) {
		var n NullCurrency
		if err := n.Scan("usd"); err != nil {
			t.Fatalf("Scan(\"usd\") failed: %v", err)
		}
		if !n.Valid || n.Currency != MustParseCurr("USD") {
			t.Errorf("Scan(\"usd\") = %+v, want valid USD", n)
		}
	})

	t.Run("json", func(t *testing.T) {
		var n NullCurrency
		if err := json.Unmarshal([]byte("null"), &n); err != nil {
			t.Fatalf("json.Unmarshal(null) failed: %v", err)
		}
		if n.Valid {
			t.Errorf("json.Unmarshal(null) = %+v, want invalid", n)
		}
		got, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(%+v) failed: %v", n, err)
		}
		if string(got) != "null" {
			t.Errorf("json.Marshal(%+v) = %q, want %q", n, got, "null")
		}

		if err := json.Unmarshal([]byte("\"eur\""), &n); err != nil {
			t.Fatalf("json.Unmarshal(\"eur\") failed: %v", err)
		}
		if !n.Valid || n.Currency != MustParseCurr("EUR") {
			t.Errorf("json.Unmarshal(\"eur\") = %+v, want valid EUR", n)
		}
	})
}
