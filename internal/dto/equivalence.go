package dto

// IndexData aggregates everything the main view needs: the currencies
// that have recorded facts and the periods available for querying.
type IndexData struct {
	Currencies   []CurrencyResponse `json:"currencies"`
	Years        []int              `json:"years"`
	Months       []int              `json:"months"`
	MonthNames   map[int]string     `json:"monthNames"`
	MonthsByYear map[int][]int      `json:"monthsByYear"`
}
