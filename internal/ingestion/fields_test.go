package ingestion

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{"plain", "50.00", "50", true},
		{"integer", "10", "10", true},
		{"negative", "-500.00", "-500", true},
		{"currency symbol", "$1234.50", "1234.5", true},
		{"group separators", "1,234,567.89", "1234567.89", true},
		{"parenthesized negative", "(500.00)", "-500", true},
		{"surrounding whitespace", "  42.1  ", "42.1", true},
		{"empty", "", "", false},
		{"dashes placeholder", "--", "", false},
		{"n/a placeholder", "n/a", "", false},
		{"garbage", "abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAmount(tt.input)

			if got.Valid != tt.valid {
				t.Fatalf("parseAmount(%q) valid = %v, want %v", tt.input, got.Valid, tt.valid)
			}
			if tt.valid && !got.Decimal.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("parseAmount(%q) = %s, want %s", tt.input, got.Decimal, tt.want)
			}
		})
	}
}

func TestParseAbsAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{"-500.00", "500", true},
		{"(123.45)", "123.45", true},
		{"10", "10", true},
		{"", "", false},
	}

	for _, tt := range tests {
		got := parseAbsAmount(tt.input)

		if got.Valid != tt.valid {
			t.Fatalf("parseAbsAmount(%q) valid = %v, want %v", tt.input, got.Valid, tt.valid)
		}
		if tt.valid {
			if got.Decimal.IsNegative() {
				t.Errorf("parseAbsAmount(%q) is negative", tt.input)
			}
			if !got.Decimal.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("parseAbsAmount(%q) = %s, want %s", tt.input, got.Decimal, tt.want)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("01/15/2023")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Year() != 2023 || got.Month() != 1 || got.Day() != 15 {
		t.Errorf("parseDate = %v, want 2023-01-15", got)
	}

	if _, err := parseDate(" 12/31/1999 "); err != nil {
		t.Errorf("parseDate should tolerate surrounding whitespace: %v", err)
	}

	for _, bad := range []string{"", "2023-01-15", "13/45/2023", "INVALID"} {
		if _, err := parseDate(bad); err == nil {
			t.Errorf("parseDate(%q) should fail", bad)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	if got := normalizeText("  AAPL  "); got != "AAPL" {
		t.Errorf("normalizeText = %q, want %q", got, "AAPL")
	}
	if got := normalizeText("   "); got != "" {
		t.Errorf("normalizeText = %q, want empty", got)
	}
}
