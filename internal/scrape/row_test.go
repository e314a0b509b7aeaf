package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowCells(t *testing.T, rowHTML string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table>" + rowHTML + "</table>"))
	require.NoError(t, err)
	return doc.Find("tr").First().Find("td")
}

func TestClassifyLayout(t *testing.T) {
	assert.Equal(t, LayoutUnsupported, ClassifyLayout(0))
	assert.Equal(t, LayoutUnsupported, ClassifyLayout(1))
	assert.Equal(t, LayoutTwoColumn, ClassifyLayout(2))
	assert.Equal(t, LayoutThreeColumn, ClassifyLayout(3))
	assert.Equal(t, LayoutFourPlusColumn, ClassifyLayout(4))
	assert.Equal(t, LayoutFourPlusColumn, ClassifyLayout(5))
}

func TestExtractRowFourColumns(t *testing.T) {
	cells := rowCells(t, `<tr><td>1</td><td>Argentina</td><td>Peso Argentino</td><td>3,8451</td></tr>`)

	data, ok := ExtractRow(cells)
	require.True(t, ok)
	assert.Equal(t, "Argentina", data.Country)
	assert.Equal(t, "Peso Argentino", data.Currency)
	assert.Equal(t, "3,8451", data.RawEquivalence)
}

func TestExtractRowThreeColumns(t *testing.T) {
	cells := rowCells(t, `<tr><td>Japón</td><td>Yen Japonés</td><td>128.4523</td></tr>`)

	data, ok := ExtractRow(cells)
	require.True(t, ok)
	assert.Equal(t, "Japón", data.Country)
	assert.Equal(t, "Yen Japonés", data.Currency)
	assert.Equal(t, "128.4523", data.RawEquivalence)
}

func TestExtractRowTwoColumnsNumericSecond(t *testing.T) {
	cells := rowCells(t, `<tr><td>Yen Japonés</td><td>128.4523</td></tr>`)

	data, ok := ExtractRow(cells)
	require.True(t, ok)
	assert.Empty(t, data.Country)
	assert.Equal(t, "Yen Japonés", data.Currency)
	assert.Equal(t, "128.4523", data.RawEquivalence)
}

func TestExtractRowTwoColumnsNumericFirst(t *testing.T) {
	cells := rowCells(t, `<tr><td>0,8931</td><td>Euro</td></tr>`)

	data, ok := ExtractRow(cells)
	require.True(t, ok)
	assert.Equal(t, "Euro", data.Currency)
	assert.Equal(t, "0,8931", data.RawEquivalence)
}

func TestExtractRowTwoColumnsNeitherNumeric(t *testing.T) {
	cells := rowCells(t, `<tr><td>Euro</td><td>0,89 aprox</td></tr>`)

	data, ok := ExtractRow(cells)
	require.True(t, ok)
	assert.Equal(t, "Euro", data.Currency)
	assert.Equal(t, "0,89 aprox", data.RawEquivalence)
}

func TestExtractRowNestedHeadingEquivalence(t *testing.T) {
	cells := rowCells(t, `<tr><td>2</td><td>Brasil</td><td>Real Brasileño</td><td><h3>1,7612</h3></td></tr>`)

	data, ok := ExtractRow(cells)
	require.True(t, ok)
	assert.Equal(t, "1,7612", data.RawEquivalence)
}

func TestExtractRowTooFewCells(t *testing.T) {
	cells := rowCells(t, `<tr><td>Total</td></tr>`)

	_, ok := ExtractRow(cells)
	assert.False(t, ok)
}
