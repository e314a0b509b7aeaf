package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Layout identifies which of the known table-row shapes a row follows.
// The source tables changed shape several times over the years; cell count
// is the only reliable discriminator.
type Layout int

const (
	LayoutUnsupported Layout = iota
	LayoutTwoColumn
	LayoutThreeColumn
	LayoutFourPlusColumn
)

func (l Layout) String() string {
	switch l {
	case LayoutTwoColumn:
		return "two-column"
	case LayoutThreeColumn:
		return "three-column"
	case LayoutFourPlusColumn:
		return "four-plus-column"
	default:
		return "unsupported"
	}
}

// ClassifyLayout maps a row's cell count to its layout variant.
func ClassifyLayout(cellCount int) Layout {
	switch {
	case cellCount >= 4:
		return LayoutFourPlusColumn
	case cellCount == 3:
		return LayoutThreeColumn
	case cellCount == 2:
		return LayoutTwoColumn
	default:
		return LayoutUnsupported
	}
}

// RowData is the structured triple extracted from one table row. Country
// may be empty; the CountryResolver fills it in later.
type RowData struct {
	Country        string
	Currency       string
	RawEquivalence string
}

var numericCellPattern = regexp.MustCompile(`^[\d.,]+$`)

// ExtractRow classifies a row's cells and pulls out (country, currency,
// raw equivalence text) for the matched layout. Returns false for rows
// with fewer than two cells.
func ExtractRow(cells *goquery.Selection) (RowData, bool) {
	switch ClassifyLayout(cells.Length()) {
	case LayoutFourPlusColumn:
		return extractFourPlusColumn(cells), true
	case LayoutThreeColumn:
		return extractThreeColumn(cells), true
	case LayoutTwoColumn:
		return extractTwoColumn(cells), true
	default:
		return RowData{}, false
	}
}

func extractFourPlusColumn(cells *goquery.Selection) RowData {
	return RowData{
		Country:        cellText(cells, 1),
		Currency:       cellText(cells, 2),
		RawEquivalence: equivalenceText(cells.Eq(3)),
	}
}

func extractThreeColumn(cells *goquery.Selection) RowData {
	return RowData{
		Country:        cellText(cells, 0),
		Currency:       cellText(cells, 1),
		RawEquivalence: equivalenceText(cells.Eq(2)),
	}
}

// extractTwoColumn resolves the ambiguous two-cell shape: whichever cell
// looks purely numeric is the equivalence, the other is the currency name.
// When neither does, cell 0 is assumed to be the currency.
func extractTwoColumn(cells *goquery.Selection) RowData {
	first := cellText(cells, 0)
	secondCell := cells.Eq(1)
	second := strings.TrimSpace(secondCell.Text())

	switch {
	case numericCellPattern.MatchString(second):
		return RowData{Currency: first, RawEquivalence: second}
	case numericCellPattern.MatchString(first):
		return RowData{Currency: second, RawEquivalence: first}
	default:
		return RowData{Currency: first, RawEquivalence: equivalenceText(secondCell)}
	}
}

func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}

// equivalenceText reads a cell's text, falling back to a heading nested
// inside the cell; some year layouts wrap the value in an <h3>.
func equivalenceText(cell *goquery.Selection) string {
	text := strings.TrimSpace(cell.Text())
	if text != "" {
		return text
	}
	heading := cell.Find("h1, h2, h3, h4")
	if heading.Length() > 0 {
		return strings.TrimSpace(heading.First().Text())
	}
	return ""
}
