package dto

import "github.com/shopspring/decimal"

// ConvertRequest carries a user conversion. Amount arrives as text
// because users enter either ',' or '.' as the decimal separator; the
// service normalizes it.
type ConvertRequest struct {
	CurrencyID string `json:"currencyID" binding:"required,uuid"`
	Amount     string `json:"amount" binding:"required"`
	Year       int    `json:"year" binding:"required"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
}

// ConversionResult is the outcome of a conversion to the reference
// currency (USD).
type ConversionResult struct {
	CurrencyID  string          `json:"currencyID"`
	Country     string          `json:"country"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Equivalence decimal.Decimal `json:"equivalence"`
	Converted   decimal.Decimal `json:"converted"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	MonthName   string          `json:"monthName"`
}
