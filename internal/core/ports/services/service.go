package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the HTTP handlers and the CLI.
type ServiceContainer struct {
	Currency   CurrencySvcFacade
	Scraper    ScraperSvc
	Conversion ConversionSvc
	Data       CurrencyDataSvc
}
