package domain

import "github.com/shopspring/decimal"

// Currency is a foreign currency sighted in the equivalence tables.
// Identity is the (country, name) pair; currencies are created lazily on
// first sighting during ingestion and never deleted by the pipeline.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary key (UUID)
	Country    string `json:"country"`    // e.g. "Japón"
	Name       string `json:"name"`       // e.g. "Yen Japonés"
	// Equivalence is the display-friendly fallback value, used only when
	// no period-specific fact exists. Seeded from the first sighting.
	Equivalence decimal.Decimal `json:"equivalence"`
	AuditFields
}
