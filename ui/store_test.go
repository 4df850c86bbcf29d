package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

// obsFor emits the long rows of one metric over the active months, using the
// missing sentinel for nil entries.
func obsFor(table, metric string, values []kpi.Value) []kpi.Observation {
	var out []kpi.Observation
	for i, m := range kpi.ActiveMonthList() {
		v := kpi.Missing()
		if i < len(values) {
			v = values[i]
		}
		out = append(out, kpi.Observation{
			Table: table, Metric: metric, Year: kpi.ReportYear, Month: m, Value: v,
		})
	}
	return out
}

func nums(fs ...float64) []kpi.Value {
	out := make([]kpi.Value, 0, len(fs))
	for _, f := range fs {
		out = append(out, kpi.Number(f))
	}
	return out
}

func testStore() *Store {
	var obs []kpi.Observation
	obs = append(obs, obsFor(kpi.TableMarketingGeral, "Seguidores Instagram", nums(100, 120, 140))...)
	obs = append(obs, obsFor(kpi.TableMarketingGeral, "Custo geral de Ads", nums(1000, 1100))...)
	obs = append(obs, obsFor(kpi.TableLeads, "Origem da proposta enviada - Ads", nums(10, 20))...)
	obs = append(obs, obsFor(kpi.TableLeads, "Origem da proposta enviada - Indica", nums(4, 6))...)
	obs = append(obs, obsFor(kpi.TableLeads, "Origem da proposta enviada - Construtora", nums(0, 0))...)
	obs = append(obs, obsFor(kpi.TableLeads, "Lead Convertido - Ads", nums(3, 6))...)
	obs = append(obs, obsFor(kpi.TableLeads, "Lead Convertido - Indicação", nums(1, 1))...)
	obs = append(obs, obsFor(kpi.TableIndices, "CAC", nums(50, 60, 70))...)

	summaries := []kpi.TableSummary{
		{Table: kpi.TableMarketingGeral, FillPct: 50},
		{Table: kpi.TableLeads, FillPct: 70},
	}
	return NewStore(obs, summaries)
}

func TestStoreGroupsByTableAndMetric(t *testing.T) {
	s := testStore()

	require.Len(t, s.Tables, 3)
	assert.Equal(t, kpi.TableMarketingGeral, s.Tables[0].Name)

	marketing, ok := s.Table(kpi.TableMarketingGeral)
	require.True(t, ok)
	assert.Equal(t, []string{"Seguidores Instagram", "Custo geral de Ads"}, marketing.Metrics)

	series, ok := marketing.Series("Seguidores Instagram")
	require.True(t, ok)
	assert.Len(t, series, kpi.ActiveMonths)
	assert.Equal(t, 3, series.Count())
}

func TestStoreTotals(t *testing.T) {
	s := testStore()
	assert.Equal(t, 8, s.TotalMetrics())
	assert.Equal(t, kpi.Number(60), s.AvgFillPct())
}

func TestFindMetricSubstring(t *testing.T) {
	s := testStore()
	marketing, _ := s.Table(kpi.TableMarketingGeral)

	name, series, ok := marketing.FindMetric("seguidores")
	require.True(t, ok)
	assert.Equal(t, "Seguidores Instagram", name)
	assert.Equal(t, kpi.Number(360), series.Sum())

	_, _, ok = marketing.FindMetric("inexistente")
	assert.False(t, ok)
}

func TestLeadSourcesSkipsZeroOrigins(t *testing.T) {
	s := testStore()
	sources := s.LeadSources()

	require.Len(t, sources, 2)
	assert.Equal(t, "Ads", sources[0].Source)
	assert.Equal(t, 30.0, sources[0].Total)
	assert.Equal(t, "Indica", sources[1].Source)

	for _, src := range sources {
		assert.NotEqual(t, "Construtora", src.Source, "zero-proposal origin must be dropped")
	}
}

func TestLeadConversionRates(t *testing.T) {
	s := testStore()
	rows := s.LeadConversion()

	require.Len(t, rows, 2)
	// Ads: 9/30 = 30%; Indicação: 2/10 = 20%. Sorted by rate descending.
	assert.Equal(t, "Ads", rows[0].Source)
	assert.Equal(t, kpi.Number(30), rows[0].Rate)
	assert.Equal(t, "Indicação", rows[1].Source)
	assert.Equal(t, kpi.Number(20), rows[1].Rate)
}
