package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/cleaning"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/exporter"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/features"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/outliers"
)

// RunReport aggregates every stage's report for one pipeline run.
type RunReport struct {
	RunID    string
	Duration time.Duration

	SessionRowsLoaded int
	ProductRowsLoaded int

	Cleaning        cleaning.NormalizeReport
	Bots            outliers.BotReport
	Caps            outliers.CapReport
	Categories      cleaning.CategoryReport
	SessionFeatures features.SessionFeatureReport
	ProductFeatures features.ProductFeatureReport

	SessionOutputPath string
	ProductOutputPath string
}

// Run executes both pipelines end to end. All transforms complete
// before anything is written, so a failure in any stage leaves the
// output directory untouched.
func Run(cfg *config.Config, logger *slog.Logger) (*RunReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	report := &RunReport{RunID: uuid.NewString()}
	logger = logger.With(slog.String("run_id", report.RunID))

	logger.Info("pipeline starting",
		slog.String("session_file", cfg.Paths.SessionFile),
		slog.String("product_file", cfg.Paths.ProductFile),
		slog.String("output_dir", cfg.Paths.OutputDir))

	sessions, err := runSessionStages(cfg, logger, report)
	if err != nil {
		return report, err
	}
	products, err := runProductStages(cfg, logger, report)
	if err != nil {
		return report, err
	}

	writer := exporter.NewCSVWriter(cfg.Paths.OutputDir, logger)
	if err := writer.Write(exporter.SessionOutputFile,
		exporter.SessionHeaders(cfg), exporter.SessionRecords(sessions, cfg)); err != nil {
		return report, fmt.Errorf("save stage: session output: %w", err)
	}
	report.SessionOutputPath = writer.Path(exporter.SessionOutputFile)

	if err := writer.Write(exporter.ProductOutputFile,
		exporter.ProductHeaders(), exporter.ProductRecords(products)); err != nil {
		return report, fmt.Errorf("save stage: product output: %w", err)
	}
	report.ProductOutputPath = writer.Path(exporter.ProductOutputFile)

	report.Duration = time.Since(start)
	logger.Info("pipeline complete",
		slog.Int("sessions_written", len(sessions)),
		slog.Int("products_written", len(products)),
		slog.Duration("duration", report.Duration))
	return report, nil
}

func runSessionStages(cfg *config.Config, logger *slog.Logger, report *RunReport) ([]dataset.Session, error) {
	tbl, err := dataset.LoadTable(cfg.Paths.SessionFile, logger)
	if err != nil {
		return nil, fmt.Errorf("load stage: session funnel: %w", err)
	}
	report.SessionRowsLoaded = len(tbl.Rows)

	sessions, cleanReport, err := cleaning.NormalizeSessions(tbl, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("clean stage: session funnel: %w", err)
	}
	report.Cleaning = cleanReport

	sessions, report.Bots = outliers.FilterBots(sessions, cfg.Outliers, logger)
	sessions, report.Caps = outliers.CapValues(sessions, cfg.Outliers, logger)
	sessions, report.SessionFeatures = features.DeriveSessionFeatures(sessions, cfg, logger)
	return sessions, nil
}

func runProductStages(cfg *config.Config, logger *slog.Logger, report *RunReport) ([]dataset.Product, error) {
	tbl, err := dataset.LoadTable(cfg.Paths.ProductFile, logger)
	if err != nil {
		return nil, fmt.Errorf("load stage: product performance: %w", err)
	}
	report.ProductRowsLoaded = len(tbl.Rows)

	products, err := cleaning.ParseProducts(tbl, logger)
	if err != nil {
		return nil, fmt.Errorf("clean stage: product performance: %w", err)
	}

	products, report.Categories = cleaning.NormalizeCategories(products, cfg.Products, logger)
	products, report.ProductFeatures = features.DeriveProductFeatures(products, logger)
	return products, nil
}
