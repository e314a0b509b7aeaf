package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cequiv/currency_equivalences_app/internal/adapters/web"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/core/services"
	"github.com/cequiv/currency_equivalences_app/internal/repositories/database/pgsql"
	"github.com/cequiv/currency_equivalences_app/internal/scrape"
	"github.com/cequiv/currency_equivalences_app/pkg/config"
	"github.com/cequiv/currency_equivalences_app/pkg/database"
	"github.com/spf13/cobra"
)

var (
	currentOnly bool
	year        int
	fromYear    int
	toYear      int
	all         bool
)

var rootCmd = &cobra.Command{
	Use:   "cea_scraper",
	Short: "Currency equivalences scraper",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Ingest equivalence tables from the source site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := cmd.Context()

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer dbPool.Close()

		repos := pgsql.NewRepositoryProvider(dbPool)
		fetcher := web.NewGoqueryFetcher(cfg.ScrapeTimeout)
		container := services.NewServiceContainer(cfg, &repos, fetcher, logger)

		if err := container.Currency.EnsureDefaultCurrencies(ctx); err != nil {
			return fmt.Errorf("failed to seed default currencies: %w", err)
		}

		progress := func(year, month, count int) {
			fmt.Printf("  %s %d: %d rows\n", scrape.MonthName(month), year, count)
		}

		total, err := runSweep(ctx, cfg, container, progress)
		if err != nil {
			return err
		}

		fmt.Printf("Done. %d rows ingested.\n", total)
		return nil
	},
}

// runSweep dispatches on the mutually exclusive mode flags. With no flag
// set, only the current year is swept.
func runSweep(ctx context.Context, cfg *config.Config, container *portssvc.ServiceContainer, progress portssvc.ProgressFunc) (int, error) {
	switch {
	case currentOnly:
		return container.Scraper.ScrapeCurrentYear(ctx, cfg.CurrentIndexURL, progress)
	case all:
		return container.Scraper.ScrapeAll(ctx, progress)
	case year != 0:
		return container.Scraper.ScrapeYear(ctx, year, progress)
	case fromYear != 0 || toYear != 0:
		if fromYear == 0 || toYear == 0 {
			return 0, fmt.Errorf("--from-year and --to-year must be used together")
		}
		return container.Scraper.ScrapeYearRange(ctx, fromYear, toYear, progress)
	default:
		return container.Scraper.ScrapeCurrentYear(ctx, cfg.CurrentIndexURL, progress)
	}
}

func init() {
	updateCmd.Flags().BoolVar(&currentOnly, "current-only", false, "Only scrape the current year")
	updateCmd.Flags().IntVar(&year, "year", 0, "Scrape a single year")
	updateCmd.Flags().IntVar(&fromYear, "from-year", 0, "Start of an inclusive year range")
	updateCmd.Flags().IntVar(&toYear, "to-year", 0, "End of an inclusive year range")
	updateCmd.Flags().BoolVar(&all, "all", false, "Scrape the current year plus the full historical range")
	updateCmd.MarkFlagsMutuallyExclusive("current-only", "year", "all", "from-year")
	updateCmd.MarkFlagsMutuallyExclusive("current-only", "year", "all", "to-year")

	rootCmd.AddCommand(updateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
