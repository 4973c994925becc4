package outliers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

func TestFilterBots(t *testing.T) {
	cfg := config.Default().Outliers

	tests := []struct {
		name       string
		pageviews  int
		timeOnSite int
		removed    bool
	}{
		{"ordinary session survives", 5, 120, false},
		{"extreme pageviews removed", 250, 300, true},
		{"pageviews at threshold survive", 200, 300, false},
		{"speed bot removed", 100, 10, true},
		{"speed at threshold survives", 100, 50, false}, // exactly 2.0 pages/sec
		{"fast but few pages exempt", 4, 1, false},
		{"zero time exempt from speed check", 150, 0, false},
		{"minimum pages for speed check applies", 5, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := []dataset.Session{{
				TotalPageviews: tt.pageviews,
				TimeOnSite:     tt.timeOnSite,
			}}
			kept, report := FilterBots(sessions, cfg, nil)
			if tt.removed {
				assert.Empty(t, kept)
				assert.Equal(t, 1, report.Removed)
			} else {
				assert.Len(t, kept, 1)
				assert.Zero(t, report.Removed)
			}
		})
	}
}

func TestFilterBotsCountsSignalsIndependently(t *testing.T) {
	cfg := config.Default().Outliers
	sessions := []dataset.Session{
		{TotalPageviews: 250, TimeOnSite: 10},  // both signals, removed once
		{TotalPageviews: 300, TimeOnSite: 0},   // pageviews only
		{TotalPageviews: 100, TimeOnSite: 10},  // speed only
		{TotalPageviews: 3, TimeOnSite: 60},    // clean
	}

	kept, report := FilterBots(sessions, cfg, nil)

	assert.Equal(t, 2, report.ExtremePageviews)
	assert.Equal(t, 2, report.ImpossibleSpeed)
	assert.Equal(t, 3, report.Removed)
	assert.Equal(t, 4, report.RowsIn)
	assert.Equal(t, 1, report.RowsOut)
	require.Len(t, kept, 1)
	assert.Equal(t, 3, kept[0].TotalPageviews)
}

func TestFilterBotsSurvivorInvariants(t *testing.T) {
	cfg := config.Default().Outliers
	var sessions []dataset.Session
	for pv := 0; pv <= 400; pv += 7 {
		for _, tos := range []int{0, 1, 10, 60, 3600} {
			sessions = append(sessions, dataset.Session{TotalPageviews: pv, TimeOnSite: tos})
		}
	}

	kept, report := FilterBots(sessions, cfg, nil)
	assert.LessOrEqual(t, len(kept), len(sessions))
	assert.Equal(t, len(sessions)-report.Removed, len(kept))

	for _, s := range kept {
		assert.LessOrEqual(t, s.TotalPageviews, cfg.MaxPageviews)
		if s.TimeOnSite > 0 && s.TotalPageviews >= cfg.MinPageviewsForSpeedCheck {
			rate := float64(s.TotalPageviews) / float64(s.TimeOnSite)
			assert.LessOrEqual(t, rate, cfg.MaxPagesPerSecond)
		}
	}
}
