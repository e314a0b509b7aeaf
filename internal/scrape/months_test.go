package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthFromText(t *testing.T) {
	tests := []struct {
		text  string
		month int
		ok    bool
	}{
		{"Enero", 1, true},
		{"  diciembre ", 12, true},
		{"Equivalencias Septiembre 2019", 9, true},
		{"MARZO", 3, true},
		{"ver tabla", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		month, ok := MonthFromText(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.month, month, tt.text)
	}
}

func TestMonthNameToNumber(t *testing.T) {
	month, ok := MonthNameToNumber(" Julio ")
	assert.True(t, ok)
	assert.Equal(t, 7, month)

	_, ok = MonthNameToNumber("Equivalencias Julio")
	assert.False(t, ok, "only exact names resolve")
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Enero", MonthName(1))
	assert.Equal(t, "Diciembre", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestYearMonthFromURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		year  int
		month int
		ok    bool
	}{
		{"slugged period", "/aduana/equivalencias-agosto-2019/19.html", 2019, 8, true},
		{"slugged beats numeric", "https://example.cl/2021-01/equivalencias-mayo-2010.html", 2010, 5, true},
		{"numeric fallback", "/aduana/2019-04-22/145635.html", 2019, 4, true},
		{"numeric month out of range skipped", "/aduana/2019-22/x.html", 0, 0, false},
		{"nothing extractable", "/aduana/indicadores.html", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, ok := YearMonthFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.month, month)
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	const origin = "https://www.aduana.cl"

	assert.Equal(t, "https://other.cl/x.html", AbsoluteURL(origin, "https://other.cl/x.html"))
	assert.Equal(t, "https://www.aduana.cl/aduana/x.html", AbsoluteURL(origin, "/aduana/x.html"))
	assert.Equal(t, "https://www.aduana.cl/x.html", AbsoluteURL(origin, "x.html"))
}
