package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/infrastructure"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	sessionFile := flag.String("sessions", "", "session funnel export (overrides config)")
	productFile := flag.String("products", "", "product performance export (overrides config)")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	// A .env alongside the binary may carry GA360_* overrides.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyOverrides(cfg, *sessionFile, *productFile, *outputDir)

	logger := infrastructure.NewLogger(cfg.Logging, nil)
	slog.SetDefault(logger)

	report, err := pipeline.Run(cfg, logger)
	if err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, report)
}

// applyOverrides layers non-empty CLI flag values over the loaded
// configuration.
func applyOverrides(cfg *config.Config, sessionFile, productFile, outputDir string) {
	if sessionFile != "" {
		cfg.Paths.SessionFile = sessionFile
	}
	if productFile != "" {
		cfg.Paths.ProductFile = productFile
	}
	if outputDir != "" {
		cfg.Paths.OutputDir = outputDir
	}
}

func printSummary(w io.Writer, r *pipeline.RunReport) {
	fmt.Fprintln(w, "GA360 FUNNEL ANALYSIS -- DATA PIPELINE")
	fmt.Fprintf(w, "Run %s completed in %s\n\n", r.RunID, r.Duration.Round(time.Millisecond))

	fmt.Fprintf(w, "Sessions loaded:   %d\n", r.SessionRowsLoaded)
	fmt.Fprintf(w, "Sessions cleaned:  %d (filled %d pageviews, %d durations, %d revenues)\n",
		r.Cleaning.RowsOut, r.Cleaning.FilledPageviews, r.Cleaning.FilledTimeOnSite, r.Cleaning.FilledRevenue)
	fmt.Fprintf(w, "Bots removed:      %d (%d extreme pageviews, %d impossible speed)\n",
		r.Bots.Removed, r.Bots.ExtremePageviews, r.Bots.ImpossibleSpeed)
	fmt.Fprintf(w, "Durations capped:  %d\n", r.Caps.TimeCapped)
	if r.Caps.RevenueCapApplied {
		fmt.Fprintf(w, "Revenue capped:    %d at $%.2f\n", r.Caps.RevenueCapped, r.Caps.RevenueCap)
	} else {
		fmt.Fprintln(w, "Revenue capped:    skipped (no positive-revenue sessions)")
	}
	fmt.Fprintf(w, "Converters:        %d\n\n", r.SessionFeatures.Converters)

	fmt.Fprintf(w, "Products:          %d across %d clean categories\n",
		r.Categories.Products, r.Categories.DistinctCategories)
	fmt.Fprintf(w, "Median conversion: %.1f%%, median rev/session: $%.2f\n\n",
		r.ProductFeatures.MedianConversionRate*100, r.ProductFeatures.MedianRevenuePerSession)

	fmt.Fprintf(w, "Saved: %s\n", r.SessionOutputPath)
	fmt.Fprintf(w, "Saved: %s\n", r.ProductOutputPath)
}
