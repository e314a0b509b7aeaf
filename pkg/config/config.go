package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Scraper settings. The index URLs point at the source site's
	// current-year and historical listing pages; BaseURL is the origin
	// used to resolve relative month-page links.
	ScraperBaseURL     string
	CurrentIndexURL    string
	HistoricalIndexURL string

	// CurrentYear is the year served by the current index page;
	// HistoricalFromYear..HistoricalToYear is the closed interval covered
	// by the historical index.
	CurrentYear        int
	HistoricalFromYear int
	HistoricalToYear   int

	// MaxEquivalence is the plausibility ceiling for a parsed rate.
	MaxEquivalence float64

	ScrapeTimeout   time.Duration
	ScrapeRateLimit string // ulule/limiter format, e.g. "5-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SCRAPER_BASE_URL", "https://www.aduana.cl")
	viper.SetDefault("CURRENT_INDEX_URL", "https://www.aduana.cl/indicadores-equivalencias/aduana/2019-04-22/145635.html")
	viper.SetDefault("HISTORICAL_INDEX_URL", "https://www.aduana.cl/historico-equivalencias/aduana/2007-02-28/002433.html")
	viper.SetDefault("CURRENT_YEAR", 2025)
	viper.SetDefault("HISTORICAL_FROM_YEAR", 2004)
	viper.SetDefault("HISTORICAL_TO_YEAR", 2024)
	viper.SetDefault("MAX_EQUIVALENCE", 100000.0)
	viper.SetDefault("SCRAPE_TIMEOUT", "30s")
	viper.SetDefault("SCRAPE_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.ScraperBaseURL = viper.GetString("SCRAPER_BASE_URL")
	cfg.CurrentIndexURL = viper.GetString("CURRENT_INDEX_URL")
	cfg.HistoricalIndexURL = viper.GetString("HISTORICAL_INDEX_URL")

	cfg.CurrentYear = viper.GetInt("CURRENT_YEAR")
	cfg.HistoricalFromYear = viper.GetInt("HISTORICAL_FROM_YEAR")
	cfg.HistoricalToYear = viper.GetInt("HISTORICAL_TO_YEAR")

	cfg.MaxEquivalence = viper.GetFloat64("MAX_EQUIVALENCE")

	timeoutStr := viper.GetString("SCRAPE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for SCRAPE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.ScrapeTimeout = timeout

	cfg.ScrapeRateLimit = viper.GetString("SCRAPE_RATE_LIMIT")

	return cfg, nil
}
