package models

import "github.com/shopspring/decimal"

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyID  string          `json:"currencyID"`
	Country     string          `json:"country"`
	Name        string          `json:"name"`
	Equivalence decimal.Decimal `json:"equivalence"` // fallback value
	AuditFields
}
