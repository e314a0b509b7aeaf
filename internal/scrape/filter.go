package scrape

import "strings"

// DefaultRejectKeywords marks header and footer rows in either Spanish or
// English across all observed table generations.
var DefaultRejectKeywords = []string{
	"país", "country", "moneda", "currency", "equivalencia", "equivalence", "total",
}

// DefaultMaxEquivalence is the plausibility ceiling for a parsed rate.
// Observed data stays well below it; footer totals and mis-parsed text do
// not. It is a heuristic, not a domain law, so it stays tunable.
const DefaultMaxEquivalence = 100000

// RowFilter rejects header/footer rows and numerically implausible
// equivalences. Both the keyword set and the ceiling are fixed at
// construction.
type RowFilter struct {
	keywords       []string
	maxEquivalence float64
}

// NewRowFilter builds a RowFilter. Nil keywords or a non-positive ceiling
// select the defaults.
func NewRowFilter(keywords []string, maxEquivalence float64) RowFilter {
	if keywords == nil {
		keywords = DefaultRejectKeywords
	}
	if maxEquivalence <= 0 {
		maxEquivalence = DefaultMaxEquivalence
	}
	return RowFilter{keywords: keywords, maxEquivalence: maxEquivalence}
}

// ValidRow reports whether the extracted triple looks like a data row:
// no header/footer keyword in any field and a non-empty currency name.
func (f RowFilter) ValidRow(d RowData) bool {
	combined := strings.ToLower(d.Country + " " + d.Currency + " " + d.RawEquivalence)
	for _, keyword := range f.keywords {
		if strings.Contains(combined, keyword) {
			return false
		}
	}
	return d.Currency != ""
}

// PlausibleEquivalence reports whether a parsed value is inside the
// accepted range (strictly positive, below the ceiling).
func (f RowFilter) PlausibleEquivalence(value float64) bool {
	return value > 0 && value < f.maxEquivalence
}
