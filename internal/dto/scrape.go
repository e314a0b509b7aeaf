package dto

// ScrapeRequest selects one of the four ingestion modes. The year fields
// are only meaningful for the mode that reads them and are required with
// it.
type ScrapeRequest struct {
	Mode     string `json:"mode" binding:"required,oneof=current year range all"`
	Year     int    `json:"year,omitempty" binding:"required_if=Mode year"`
	FromYear int    `json:"fromYear,omitempty" binding:"required_if=Mode range"`
	ToYear   int    `json:"toYear,omitempty" binding:"required_if=Mode range"`
}

// PeriodCount reports the rows ingested for one (year, month) pair.
type PeriodCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// ScrapeResponse summarizes an ingestion run.
type ScrapeResponse struct {
	RowsProcessed int           `json:"rowsProcessed"`
	Periods       []PeriodCount `json:"periods"`
}
