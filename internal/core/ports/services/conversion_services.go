package services

import (
	"context"

	"github.com/cequiv/currency_equivalences_app/internal/dto"
)

// ConversionSvc converts user-entered amounts to the reference currency
// using the equivalence recorded for a chosen period.
type ConversionSvc interface {
	// NormalizeAmount parses a user-entered amount, accepting either ','
	// or '.' as the decimal separator (same rules as ingestion parsing).
	NormalizeAmount(raw string) float64

	// Convert validates the request and performs the conversion.
	Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResult, error)
}

// CurrencyDataSvc aggregates the read-side data behind the main view.
type CurrencyDataSvc interface {
	// IndexData collects currencies with facts plus the available periods.
	IndexData(ctx context.Context) (*dto.IndexData, error)
}
