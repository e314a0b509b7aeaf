package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

// The twelve Spanish month names in calendar order. This is a fixed closed
// set; the source site never localizes.
var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var monthDisplayNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var (
	namedPeriodPattern   = regexp.MustCompile(`(?i)equivalencias-(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)-(\d{4})`)
	numericPeriodPattern = regexp.MustCompile(`(\d{4})-(\d{1,2})`)
)

// MonthFromText scans text for a Spanish month name, case-insensitively,
// in calendar order. Returns the month number 1-12 and whether one matched.
func MonthFromText(text string) (int, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	for i, name := range monthNames {
		if strings.Contains(text, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthNameToNumber resolves an exact Spanish month name to its number.
func MonthNameToNumber(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range monthNames {
		if name == candidate {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthName returns the display form of a month number, or "" when out of
// range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthDisplayNames[month-1]
}

// YearMonthFromURL extracts a (year, month) period from a page URL. The
// slugged form "equivalencias-<mes>-<year>" is preferred; a numeric
// "<year>-<month>" segment in the path is the fallback. First match wins.
func YearMonthFromURL(rawURL string) (year, month int, ok bool) {
	if m := namedPeriodPattern.FindStringSubmatch(rawURL); m != nil {
		month, monthOK := MonthNameToNumber(m[1])
		if monthOK {
			year, _ := strconv.Atoi(m[2])
			return year, month, true
		}
	}

	for _, m := range numericPeriodPattern.FindAllStringSubmatch(rawURL, -1) {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return year, month, true
		}
	}

	return 0, 0, false
}
