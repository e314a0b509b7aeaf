package mapping

import (
	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	"github.com/cequiv/currency_equivalences_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:  d.CurrencyID,
		Country:     d.Country,
		Name:        d.Name,
		Equivalence: d.Equivalence,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:  m.CurrencyID,
		Country:     m.Country,
		Name:        m.Name,
		Equivalence: m.Equivalence,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
