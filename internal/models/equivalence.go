package models

import "github.com/shopspring/decimal"

// Equivalence mirrors the currency_equivalences table. The
// (currency_id, year, month) triple is unique.
type Equivalence struct {
	EquivalenceID string          `json:"equivalenceID"`
	CurrencyID    string          `json:"currencyID"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Equivalence   decimal.Decimal `json:"equivalence"`
	AuditFields
}
