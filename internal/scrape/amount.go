// Package scrape contains the pure pieces of the equivalence ingestion
// pipeline: locale-ambiguous number parsing, Spanish month resolution,
// table-row layout classification and validation, and country inference.
// Everything here is side-effect free; the tables driving each component
// are injected so tests can substitute them.
package scrape

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a raw numeric text fragment into a float64,
// resolving whether '.' or ',' acts as the decimal separator. The source
// tables mix both conventions across two decades, so the rules are
// heuristic:
//
//   - both separators present: '.' groups thousands, ',' is the decimal
//   - only ',' present: it is the decimal separator
//   - only '.' present: more than two segments means multi-grouped
//     thousands ("1.234.567"); with exactly two segments a fraction of
//     more than 2 digits keeps the dot as a decimal point, while an
//     integer part longer than 3 digits with a short fraction drops it
//     as a thousands separator ("1.234" -> 1234)
//
// Malformed input yields 0; the result is always finite and non-negative.
// Callers reject zero or implausibly large values separately.
func ParseAmount(raw string) float64 {
	original := strings.TrimSpace(raw)
	cleaned := stripNonNumeric(original)

	value := parseCleaned(cleaned)

	// Recovery net: when the heuristics above collapse the value to zero
	// but the source text clearly held a nonzero digit, re-read assuming
	// ',' is the decimal separator and '.' only groups thousands.
	if value == 0 && strings.ContainsAny(original, "123456789") && strings.Contains(cleaned, ",") {
		retry := strings.ReplaceAll(cleaned, ".", "")
		retry = strings.ReplaceAll(retry, ",", ".")
		if v, err := strconv.ParseFloat(retry, 64); err == nil {
			value = sanitize(v)
		}
	}

	return value
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseCleaned(text string) float64 {
	hasComma := strings.Contains(text, ",")
	hasDot := strings.Contains(text, ".")

	switch {
	case hasComma && hasDot:
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	case hasComma:
		text = strings.ReplaceAll(text, ",", ".")
	case hasDot:
		parts := strings.Split(text, ".")
		if len(parts) == 2 {
			integerPart, fractionPart := parts[0], parts[1]
			if len(fractionPart) > 2 {
				// Genuine decimal such as "128.4523"; keep as is.
			} else if len(integerPart) > 3 && len(fractionPart) <= 2 {
				text = integerPart + fractionPart
			}
		} else if len(parts) > 2 {
			// Multi-grouped integer such as "1.234.567".
			text = strings.Join(parts, "")
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
