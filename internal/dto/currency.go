package dto

import (
	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID  string          `json:"currencyID"`
	Country     string          `json:"country"`
	Currency    string          `json:"currency"`
	Equivalence decimal.Decimal `json:"equivalence"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:  curr.CurrencyID,
		Country:     curr.Country,
		Currency:    curr.Name,
		Equivalence: curr.Equivalence,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
