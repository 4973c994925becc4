package exporter

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	err := w.Write("out.csv", []string{"a", "b"}, [][]string{{"1", "x"}, {"2", "y"}})
	require.NoError(t, err)

	records := readCSV(t, filepath.Join(dir, "out.csv"))
	require.Len(t, records, 3)
	assert.Equal(t, []string{"a", "b"}, records[0])
	assert.Equal(t, []string{"2", "y"}, records[2])

	// No temp file left behind.
	_, err = os.Stat(filepath.Join(dir, "out.csv.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewCSVWriter(dir, nil)

	require.NoError(t, w.Write("out.csv", []string{"a"}, nil))
	_, err := os.Stat(filepath.Join(dir, "out.csv"))
	assert.NoError(t, err)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	require.NoError(t, w.Write("out.csv", []string{"a"}, [][]string{{"old"}}))
	require.NoError(t, w.Write("out.csv", []string{"a"}, [][]string{{"new"}}))

	records := readCSV(t, filepath.Join(dir, "out.csv"))
	require.Len(t, records, 2)
	assert.Equal(t, "new", records[1][0])
}

func TestSessionRecords(t *testing.T) {
	cfg := config.Default()
	sessions := []dataset.Session{{
		FullVisitorID:         "0042",
		RawDate:               "20170801",
		SessionDate:           time.Date(2017, 8, 1, 0, 0, 0, 0, time.UTC),
		StageFlags:            []int{1, 1, 1, 0, 0, 0},
		TotalPageviews:        5,
		TimeOnSite:            120,
		TransactionRevenueUSD: 19.99,
		DeviceCategory:        "desktop",
		Country:               "United States",
		TrafficMedium:         "organic",
		DeepestFunnelStage:    2,
		IsConverter:           0,
		EngagementTier:        "Medium",
		DurationBucket:        "1-5 min",
		ChannelGroup:          "Organic Search",
		IsUS:                  1,
	}}

	headers := SessionHeaders(cfg)
	records := SessionRecords(sessions, cfg)
	require.Len(t, records, 1)
	require.Len(t, records[0], len(headers))

	row := map[string]string{}
	for i, h := range headers {
		row[h] = records[0][i]
	}
	assert.Equal(t, "0042", row[dataset.ColFullVisitorID])
	assert.Equal(t, "20170801", row[dataset.ColDate])
	assert.Equal(t, "1", row["reached_product_view"])
	assert.Equal(t, "0", row["reached_transaction"])
	assert.Equal(t, "19.99", row[dataset.ColRevenue])
	assert.Equal(t, "2017-08-01", row["session_date"])
	assert.Equal(t, "2", row["deepest_funnel_stage"])
	assert.Equal(t, "Medium", row["engagement_tier"])
	assert.Equal(t, "Organic Search", row["channel_group"])
	assert.Equal(t, "1", row["is_us"])

	// No synthetic index column.
	assert.NotContains(t, headers, "")
	assert.NotContains(t, headers, "index")
}

func TestProductRecords(t *testing.T) {
	products := []dataset.Product{
		{
			ProductCategory:   "Home/Apparel",
			Sessions:          100,
			Purchases:         10,
			TotalRevenueUSD:   500,
			CategoryClean:     "Apparel",
			ConversionRate:    0.1,
			RevenuePerSession: 5,
		},
		{
			ProductCategory:   "(not set)",
			CategoryClean:     "Uncategorized",
			ConversionRate:    math.NaN(),
			RevenuePerSession: math.NaN(),
		},
	}

	headers := ProductHeaders()
	records := ProductRecords(products)
	require.Len(t, records, 2)
	require.Len(t, records[0], len(headers))

	assert.Equal(t, "Home/Apparel", records[0][0])
	assert.Equal(t, "Apparel", records[0][4])
	assert.Equal(t, "0.1", records[0][5])

	// NaN sentinel survives serialization.
	assert.Equal(t, "NaN", records[1][5])
	assert.Equal(t, "NaN", records[1][6])
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0", formatFloat(0))
	assert.Equal(t, "19.99", formatFloat(19.99))
	assert.Equal(t, "NaN", formatFloat(math.NaN()))
}
