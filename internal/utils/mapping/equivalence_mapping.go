package mapping

import (
	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	"github.com/cequiv/currency_equivalences_app/internal/models"
)

// ToModelEquivalence converts a domain Equivalence to a model Equivalence
func ToModelEquivalence(d domain.Equivalence) models.Equivalence {
	return models.Equivalence{
		EquivalenceID: d.EquivalenceID,
		CurrencyID:    d.CurrencyID,
		Year:          d.Year,
		Month:         d.Month,
		Equivalence:   d.Equivalence,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEquivalence converts a model Equivalence to a domain Equivalence
func ToDomainEquivalence(m models.Equivalence) domain.Equivalence {
	return domain.Equivalence{
		EquivalenceID: m.EquivalenceID,
		CurrencyID:    m.CurrencyID,
		Year:          m.Year,
		Month:         m.Month,
		Equivalence:   m.Equivalence,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
