package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryResolverKeepsUsableCountry(t *testing.T) {
	r := NewCountryResolver(nil)

	assert.Equal(t, "Argentina", r.Resolve("Argentina", "Peso Argentino"))
}

func TestCountryResolverInfersFromCurrency(t *testing.T) {
	r := NewCountryResolver(nil)

	tests := []struct {
		currency string
		want     string
	}{
		{"Dólar EE.UU.", "Estados Unidos"},
		{"Libra Esterlina", "Gran Bretaña"},
		{"Yen Japonés", "Japón"},
		{"Euro", "Unión Europea"},
		{"Yuan", "China"},
		{"Real Brasileño", "Brasil"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve("", tt.currency), tt.currency)
		assert.Equal(t, tt.want, r.Resolve("x", tt.currency), "short country falls through")
	}
}

func TestCountryResolverSpecificMappingWinsOverGeneric(t *testing.T) {
	r := NewCountryResolver(nil)

	// "Dólar Canadiense" contains "Dólar" too; the specific entry is first.
	assert.Equal(t, "Canadá", r.Resolve("", "Dólar Canadiense"))
	assert.Equal(t, "Australia", r.Resolve("", "Dólar Australiano"))
}

func TestCountryResolverFallsBackToCurrencyName(t *testing.T) {
	r := NewCountryResolver(nil)

	assert.Equal(t, "Dinar Kuwaití", r.Resolve("", "Dinar Kuwaití"))
}
