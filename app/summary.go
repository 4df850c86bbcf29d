package app

import (
	"math"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/analysis"
)

// Summarize computes the fill statistics of one cleaned table over its full
// twelve month columns, matching the Resumo_Analitico sheet.
func Summarize(t kpi.Table) kpi.TableSummary {
	filled := 0
	for i := range t.Cells {
		filled += t.Series(i).Count()
	}

	total := len(t.Metrics) * kpi.MonthsPerTable
	pct := 0.0
	if total > 0 {
		pct = math.Round(float64(filled)/float64(total)*1000) / 10
	}

	return kpi.TableSummary{
		Table:       t.Name,
		NumMetrics:  len(t.Metrics),
		NumMonths:   kpi.MonthsPerTable,
		TotalCells:  total,
		FilledCells: filled,
		EmptyCells:  total - filled,
		FillPct:     pct,
	}
}

// SummarizeAll summarizes every table in order.
func SummarizeAll(tables []kpi.Table) []kpi.TableSummary {
	summaries := make([]kpi.TableSummary, 0, len(tables))
	for _, t := range tables {
		summaries = append(summaries, Summarize(t))
	}
	return summaries
}

// MetricStatsAll computes descriptive statistics for every metric of every
// table, for the Estatisticas_Metricas sheet. Informational only.
func MetricStatsAll(tables []kpi.Table) []kpi.MetricStats {
	var out []kpi.MetricStats
	for _, t := range tables {
		for i, metric := range t.Metrics {
			s := t.Series(i)
			out = append(out, kpi.MetricStats{
				Table:  t.Name,
				Metric: metric,
				Count:  s.Count(),
				Mean:   s.Mean(),
				Median: s.Median(),
				Min:    s.Min(),
				Max:    s.Max(),
				StdDev: s.StdDev(),
				Trend:  analysis.TrendSlope(s),
			})
		}
	}
	return out
}
