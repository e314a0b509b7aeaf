package domain

import "github.com/shopspring/decimal"

// Equivalence records how many units of a currency equaled one unit of
// the reference currency (USD) in a calendar month. At most one fact
// exists per (currency, year, month); re-ingestion overwrites the value.
type Equivalence struct {
	EquivalenceID string          `json:"equivalenceID"` // Primary key (UUID)
	CurrencyID    string          `json:"currencyID"`    // FK -> Currency.currencyID
	Year          int             `json:"year"`          // 4-digit
	Month         int             `json:"month"`         // 1-12
	Equivalence   decimal.Decimal `json:"equivalence"`   // numeric(10,6)
	AuditFields
}
