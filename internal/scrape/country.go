package scrape

import (
	"strings"
	"unicode/utf8"
)

// CountryMapping associates a currency-name substring with a country name.
type CountryMapping struct {
	Match   string
	Country string
}

// DefaultCountryMappings covers the well-known currencies whose rows omit
// the country column. Order matters: the first substring match wins, so
// the more specific entries come first.
var DefaultCountryMappings = []CountryMapping{
	{"Dólar EE.UU.", "Estados Unidos"},
	{"Libra Esterlina", "Gran Bretaña"},
	{"Franco Suizo", "Suiza"},
	{"Yen Japonés", "Japón"},
	{"Dólar Canadiense", "Canadá"},
	{"Dólar Australiano", "Australia"},
	{"Peso Mexicano", "México"},
	{"Real Brasileño", "Brasil"},
	{"Dólar", "Estados Unidos"},
	{"Yen", "Japón"},
	{"Yuan", "China"},
	{"Euro", "Unión Europea"},
}

// CountryResolver infers a country name from a currency name when the
// classified country field is missing or implausibly short.
type CountryResolver struct {
	mappings []CountryMapping
}

// NewCountryResolver builds a resolver; nil mappings select the defaults.
func NewCountryResolver(mappings []CountryMapping) CountryResolver {
	if mappings == nil {
		mappings = DefaultCountryMappings
	}
	return CountryResolver{mappings: mappings}
}

// Resolve returns the classified country when it is usable, otherwise the
// mapped country for the currency name, otherwise the currency name
// itself. The last fallback is a known, accepted imprecision for
// currencies outside the fixed table.
func (r CountryResolver) Resolve(country, currency string) string {
	if utf8.RuneCountInString(strings.TrimSpace(country)) >= 3 {
		return country
	}

	lowered := strings.ToLower(currency)
	for _, m := range r.mappings {
		if strings.Contains(lowered, strings.ToLower(m.Match)) {
			return m.Country
		}
	}
	return currency
}
