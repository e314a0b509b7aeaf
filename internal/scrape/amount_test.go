package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"thousand dot with comma decimal", "1.234,56", 1234.56},
		{"comma decimal only", "1234,56", 1234.56},
		{"plain decimal dot", "234.56", 234.56},
		{"comma decimal small", "3,8451", 3.8451},
		{"long fraction keeps dot as decimal", "128.4523", 128.4523},
		// A single short-integer group like "1.234" is indistinguishable
		// from a three-digit decimal such as "0.123", so the dot is kept
		// as a decimal point. Only multi-grouped ("1.234.567") or
		// long-integer ("1234.56") shapes drop it.
		{"short integer with three-digit fraction", "1.234", 1.234},
		{"long integer with short fraction", "1234.56", 123456},
		{"multi-grouped integer", "1.234.567", 1234567},
		{"plain integer", "1234", 1234},
		{"currency symbol and spaces stripped", "$ 1.234,56 USD", 1234.56},
		{"leading comma decimal", ",5", 0.5},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"no digits", "N/A", 0},
		{"garbage separators", "..,,", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.raw), 1e-9)
		})
	}
}

func TestParseAmountRecoveryNet(t *testing.T) {
	// Comma-decimal input wrapped in stray dots: the main pass can fail to
	// parse, but the retry that forces ',' as the decimal separator must
	// recover the value instead of returning zero.
	assert.InDelta(t, 0.5, ParseAmount(".0,5."), 1e-9)
}

func TestParseAmountNeverNegative(t *testing.T) {
	// The minus sign is stripped with every other non-numeric rune.
	assert.GreaterOrEqual(t, ParseAmount("-12,5"), 0.0)
}
