package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/dto"
	"github.com/cequiv/currency_equivalences_app/internal/scrape"
	"github.com/shopspring/decimal"
)

// ConversionService converts amounts to USD using the equivalence
// recorded for the requested period, falling back to the currency's
// default rate when no dated fact exists.
type ConversionService struct {
	currencyRepo    portsrepo.CurrencyRepositoryFacade
	equivalenceRepo portsrepo.EquivalenceRepositoryFacade
}

func NewConversionService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	equivalenceRepo portsrepo.EquivalenceRepositoryFacade,
) *ConversionService {
	return &ConversionService{
		currencyRepo:    currencyRepo,
		equivalenceRepo: equivalenceRepo,
	}
}

var _ portssvc.ConversionSvc = (*ConversionService)(nil)

// NormalizeAmount parses a user-entered amount with the same separator
// rules as ingestion parsing. Unparseable input yields zero.
func (s *ConversionService) NormalizeAmount(raw string) float64 {
	return scrape.ParseAmount(raw)
}

// Convert validates the requested period against the available data,
// resolves the applicable rate, and divides the amount by it.
func (s *ConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResult, error) {
	amount := s.NormalizeAmount(req.Amount)
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be a positive number")
	}

	if err := s.validatePeriod(ctx, req.Year, req.Month); err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, currency.CurrencyID, req.Year, req.Month, currency.Equivalence)
	if err != nil {
		return nil, err
	}

	amountDec := decimal.NewFromFloat(amount)
	converted := amountDec.Div(rate).Round(6)

	return &dto.ConversionResult{
		CurrencyID:  currency.CurrencyID,
		Country:     currency.Country,
		Currency:    currency.Name,
		Amount:      amountDec,
		Equivalence: rate,
		Converted:   converted,
		Year:        req.Year,
		Month:       req.Month,
		MonthName:   scrape.MonthName(req.Month),
	}, nil
}

// validatePeriod rejects conversions against periods with no ingested
// data, telling the caller which months of the year are covered.
func (s *ConversionService) validatePeriod(ctx context.Context, year, month int) error {
	yearExists, err := s.equivalenceRepo.YearExists(ctx, year)
	if err != nil {
		return err
	}
	if !yearExists {
		years, err := s.equivalenceRepo.AvailableYears(ctx)
		if err != nil {
			return err
		}
		return apperrors.NewValidationError(fmt.Sprintf("no data recorded for year %d; available years: %v", year, years))
	}

	monthExists, err := s.equivalenceRepo.MonthExists(ctx, year, month)
	if err != nil {
		return err
	}
	if !monthExists {
		missing, err := s.equivalenceRepo.MissingMonths(ctx, year)
		if err != nil {
			return err
		}
		return apperrors.NewValidationError(fmt.Sprintf("no data recorded for %s %d; months without data in %d: %v", scrape.MonthName(month), year, year, missing))
	}
	return nil
}

// resolveRate prefers the dated fact, then the currency's positive
// default, then 1 so the division is always defined.
func (s *ConversionService) resolveRate(ctx context.Context, currencyID string, year, month int, fallback decimal.Decimal) (decimal.Decimal, error) {
	fact, err := s.equivalenceRepo.FindByCurrencyAndPeriod(ctx, currencyID, year, month)
	switch {
	case err == nil && fact.Equivalence.IsPositive():
		return fact.Equivalence, nil
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return decimal.Zero, err
	}

	if fallback.IsPositive() {
		return fallback, nil
	}
	return decimal.NewFromInt(1), nil
}
