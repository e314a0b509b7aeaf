package services_test

import (
	"context"
	"testing"

	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	"github.com/cequiv/currency_equivalences_app/internal/core/services"
	"github.com/cequiv/currency_equivalences_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCurrencyWithFact(t *testing.T, store *memStore, country, name, rate string, year, month int) domain.Currency {
	t.Helper()
	equivalence, err := decimal.NewFromString(rate)
	require.NoError(t, err)
	currency, err := store.RecordFact(context.Background(), country, name, equivalence, year, month, "test")
	require.NoError(t, err)
	return *currency
}

func TestConvertUsesPeriodFact(t *testing.T) {
	store := newMemStore()
	yen := seedCurrencyWithFact(t, store, "Japón", "Yen Japonés", "0.0091", 2024, 6)
	svc := services.NewConversionService(store, store)

	result, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: yen.CurrencyID,
		Amount:     "1000",
		Year:       2024,
		Month:      6,
	})
	require.NoError(t, err)
	assert.Equal(t, "Japón", result.Country)
	assert.Equal(t, "Yen Japonés", result.Currency)
	assert.Equal(t, "0.0091", result.Equivalence.String())
	assert.Equal(t, "Junio", result.MonthName)
	// 1000 yen at 0.0091 USD per yen.
	expected := decimal.NewFromInt(1000).Div(decimal.RequireFromString("0.0091")).Round(6)
	assert.True(t, expected.Equal(result.Converted), "got %s", result.Converted)
}

func TestConvertAcceptsCommaDecimal(t *testing.T) {
	store := newMemStore()
	euro := seedCurrencyWithFact(t, store, "Unión Europea", "Euro", "1.1284", 2024, 3)
	svc := services.NewConversionService(store, store)

	dotted, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: euro.CurrencyID, Amount: "250.50", Year: 2024, Month: 3,
	})
	require.NoError(t, err)
	comma, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: euro.CurrencyID, Amount: "250,50", Year: 2024, Month: 3,
	})
	require.NoError(t, err)
	assert.True(t, dotted.Converted.Equal(comma.Converted))
}

func TestConvertRejectsNonPositiveAmount(t *testing.T) {
	store := newMemStore()
	svc := services.NewConversionService(store, store)

	for _, amount := range []string{"0", "-5", "abc", ""} {
		_, err := svc.Convert(context.Background(), dto.ConvertRequest{
			CurrencyID: uuid.NewString(), Amount: amount, Year: 2024, Month: 1,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation, "amount %q", amount)
	}
}

func TestConvertRejectsUnknownPeriod(t *testing.T) {
	store := newMemStore()
	yen := seedCurrencyWithFact(t, store, "Japón", "Yen Japonés", "0.0091", 2024, 6)
	svc := services.NewConversionService(store, store)

	_, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: yen.CurrencyID, Amount: "10", Year: 1999, Month: 6,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: yen.CurrencyID, Amount: "10", Year: 2024, Month: 7,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestConvertFallsBackToCurrencyDefault(t *testing.T) {
	store := newMemStore()
	// Period has data for the franc, but the peso has no dated fact; its
	// stored default applies.
	seedCurrencyWithFact(t, store, "Suiza", "Franco Suizo", "1.0835", 2024, 2)
	peso, err := store.FindOrCreateCurrency(context.Background(), "México", "Peso Mexicano", decimal.RequireFromString("0.0485"), "test")
	require.NoError(t, err)
	svc := services.NewConversionService(store, store)

	result, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: peso.CurrencyID, Amount: "100", Year: 2024, Month: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0485", result.Equivalence.String())
}

func TestConvertUnknownCurrency(t *testing.T) {
	store := newMemStore()
	seedCurrencyWithFact(t, store, "Japón", "Yen Japonés", "0.0091", 2024, 6)
	svc := services.NewConversionService(store, store)

	_, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: uuid.NewString(), Amount: "10", Year: 2024, Month: 6,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConvertRoundTrip(t *testing.T) {
	store := newMemStore()
	franc := seedCurrencyWithFact(t, store, "Suiza", "Franco Suizo", "1.0835", 2024, 5)
	svc := services.NewConversionService(store, store)

	result, err := svc.Convert(context.Background(), dto.ConvertRequest{
		CurrencyID: franc.CurrencyID, Amount: "500", Year: 2024, Month: 5,
	})
	require.NoError(t, err)

	// Multiplying back by the rate recovers the original amount within
	// rounding tolerance.
	back := result.Converted.Mul(result.Equivalence)
	diff := back.Sub(decimal.NewFromInt(500)).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.001")), "round trip drift %s", diff)
}
