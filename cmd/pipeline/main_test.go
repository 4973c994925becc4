package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/outliers"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/pipeline"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(cfg, "s.csv", "", "outdir")

	assert.Equal(t, "s.csv", cfg.Paths.SessionFile)
	assert.Equal(t, "data/product_performance.csv", cfg.Paths.ProductFile)
	assert.Equal(t, "outdir", cfg.Paths.OutputDir)
}

func TestPrintSummary(t *testing.T) {
	report := &pipeline.RunReport{
		RunID:             "test-run",
		SessionRowsLoaded: 100,
		Bots:              outliers.BotReport{Removed: 3, ExtremePageviews: 2, ImpossibleSpeed: 1},
		Caps:              outliers.CapReport{RevenueCapApplied: true, RevenueCapped: 4, RevenueCap: 1234.5},
		SessionOutputPath: "out/session_funnel_clean.csv",
		ProductOutputPath: "out/product_performance_clean.csv",
	}

	var buf bytes.Buffer
	printSummary(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "test-run")
	assert.Contains(t, out, "Bots removed:      3 (2 extreme pageviews, 1 impossible speed)")
	assert.Contains(t, out, "$1234.50")
	assert.Contains(t, out, "Saved: out/session_funnel_clean.csv")
}

func TestPrintSummaryNoConverters(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &pipeline.RunReport{})
	assert.Contains(t, buf.String(), "skipped (no positive-revenue sessions)")
}
