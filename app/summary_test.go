package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

func twoMetricTable() kpi.Table {
	full := make([]kpi.Value, kpi.MonthsPerTable)
	for m := 0; m < kpi.ActiveMonths; m++ {
		full[m] = kpi.Number(float64(m + 1)) // 1..10, slope 1
	}
	sparse := make([]kpi.Value, kpi.MonthsPerTable)
	sparse[0] = kpi.Number(4)
	sparse[2] = kpi.Number(8)

	return kpi.Table{
		Name:    kpi.TableIndices,
		Metrics: []string{"MRR", "CAC"},
		Cells:   [][]kpi.Value{full, sparse},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(twoMetricTable())

	assert.Equal(t, kpi.TableIndices, sum.Table)
	assert.Equal(t, 2, sum.NumMetrics)
	assert.Equal(t, kpi.MonthsPerTable, sum.NumMonths)
	assert.Equal(t, 24, sum.TotalCells)
	assert.Equal(t, 12, sum.FilledCells)
	assert.Equal(t, 12, sum.EmptyCells)
	assert.Equal(t, 50.0, sum.FillPct)
}

func TestSummarizeEmptyTable(t *testing.T) {
	sum := Summarize(kpi.Table{Name: "vazia"})
	assert.Equal(t, 0, sum.TotalCells)
	assert.Equal(t, 0.0, sum.FillPct)
}

func TestMetricStatsAll(t *testing.T) {
	stats := MetricStatsAll([]kpi.Table{twoMetricTable()})
	require.Len(t, stats, 2)

	mrr := stats[0]
	assert.Equal(t, "MRR", mrr.Metric)
	assert.Equal(t, 10, mrr.Count)
	require.True(t, mrr.Mean.Valid)
	assert.InDelta(t, 5.5, mrr.Mean.Float, 1e-9)
	require.True(t, mrr.Min.Valid)
	assert.Equal(t, 1.0, mrr.Min.Float)
	require.True(t, mrr.Max.Valid)
	assert.Equal(t, 10.0, mrr.Max.Float)
	require.True(t, mrr.Trend.Valid)
	assert.InDelta(t, 1.0, mrr.Trend.Float, 1e-9)

	cac := stats[1]
	assert.Equal(t, 2, cac.Count)
	require.True(t, cac.Trend.Valid)
	assert.InDelta(t, 2.0, cac.Trend.Float, 1e-9)
}
