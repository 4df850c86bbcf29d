package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/analysis"
)

// seriesPayload is one chart-ready metric series: month labels plus values,
// with nulls where the workbook has gaps.
type seriesPayload struct {
	Table  string      `json:"table"`
	Metric string      `json:"metric"`
	Labels []string    `json:"labels"`
	Values []kpi.Value `json:"values"`
}

func (a *App) monthLabels() []string {
	labels := make([]string, 0, len(a.store.Months))
	for _, m := range a.store.Months {
		labels = append(labels, m.Name())
	}
	return labels
}

func (a *App) seriesPayloadFor(table, metric string, s kpi.Series) seriesPayload {
	return seriesPayload{
		Table:  table,
		Metric: metric,
		Labels: a.monthLabels(),
		Values: s,
	}
}

func (a *App) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	type tableSummary struct {
		Table       string  `json:"table"`
		NumMetrics  int     `json:"numMetrics"`
		FilledCells int     `json:"filledCells"`
		EmptyCells  int     `json:"emptyCells"`
		FillPct     float64 `json:"fillPct"`
	}

	out := struct {
		Tables       []tableSummary `json:"tables"`
		TotalMetrics int            `json:"totalMetrics"`
		AvgFillPct   kpi.Value      `json:"avgFillPct"`
	}{
		Tables:       make([]tableSummary, 0, len(a.store.Summaries)),
		TotalMetrics: a.store.TotalMetrics(),
		AvgFillPct:   a.store.AvgFillPct(),
	}
	for _, s := range a.store.Summaries {
		out.Tables = append(out.Tables, tableSummary{
			Table:       s.Table,
			NumMetrics:  s.NumMetrics,
			FilledCells: s.FilledCells,
			EmptyCells:  s.EmptyCells,
			FillPct:     s.FillPct,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *App) handleAPISeries(w http.ResponseWriter, r *http.Request) {
	tableName := r.URL.Query().Get("table")
	metric := r.URL.Query().Get("metric")
	if tableName == "" || metric == "" {
		respondError(w, http.StatusBadRequest, "table and metric query parameters are required")
		return
	}

	table, ok := a.store.Table(tableName)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown table: "+tableName)
		return
	}
	name, series, ok := table.FindMetric(metric)
	if !ok {
		respondError(w, http.StatusNotFound, "no metric matching: "+metric)
		return
	}

	respondJSON(w, http.StatusOK, a.seriesPayloadFor(table.Name, name, series))
}

func (a *App) handleAPILeadSources(w http.ResponseWriter, r *http.Request) {
	sources := a.store.LeadSources()

	out := struct {
		Sources []string  `json:"sources"`
		Totals  []float64 `json:"totals"`
	}{
		Sources: make([]string, 0, len(sources)),
		Totals:  make([]float64, 0, len(sources)),
	}
	for _, s := range sources {
		out.Sources = append(out.Sources, s.Source)
		out.Totals = append(out.Totals, s.Total)
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *App) handleAPILeadConversion(w http.ResponseWriter, r *http.Request) {
	type conversionRow struct {
		Source      string    `json:"source"`
		Proposals   float64   `json:"proposals"`
		Conversions float64   `json:"conversions"`
		Rate        kpi.Value `json:"rate"`
	}

	rows := a.store.LeadConversion()
	out := make([]conversionRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, conversionRow{
			Source:      row.Source,
			Proposals:   row.Proposals,
			Conversions: row.Conversions,
			Rate:        row.Rate,
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"rows": out})
}

// campaignTables maps the URL slug onto the campaign's sheet name.
var campaignTables = map[string]string{
	"imoveis": kpi.TableImoveis,
	"boleto":  kpi.TableBoleto,
	"seguros": kpi.TableMultiseguros,
}

func (a *App) handleAPICampaign(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "campaign")
	tableName, ok := campaignTables[slug]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown campaign: "+slug)
		return
	}
	table, ok := a.store.Table(tableName)
	if !ok {
		respondError(w, http.StatusNotFound, "campaign table missing from workbook: "+tableName)
		return
	}

	out := struct {
		Campaign string          `json:"campaign"`
		Labels   []string        `json:"labels"`
		Series   []seriesPayload `json:"series"`
	}{
		Campaign: slug,
		Labels:   a.monthLabels(),
	}
	for _, name := range table.Metrics {
		s, _ := table.Series(name)
		out.Series = append(out.Series, a.seriesPayloadFor(table.Name, name, s))
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *App) handleAPICompare(w http.ResponseWriter, r *http.Request) {
	type campaignTotals struct {
		Campaign    string    `json:"campaign"`
		Investment  kpi.Value `json:"investment"`
		Leads       kpi.Value `json:"leads"`
		Conversions kpi.Value `json:"conversions"`
		ROIMean     kpi.Value `json:"roiMean"`
		CostPerLead kpi.Value `json:"costPerLead"`
	}

	totals := func(slug, tableName string) campaignTotals {
		ct := campaignTotals{Campaign: slug}
		table, ok := a.store.Table(tableName)
		if !ok {
			return ct
		}
		ct.Investment = table.MetricSeries("Investimento").Sum()
		ct.Leads = table.MetricSeries("Leads Gerados").Sum()
		ct.Conversions = table.MetricSeries("Clientes Convertidos").Sum()
		ct.ROIMean = table.MetricSeries("ROI").Mean()
		ct.CostPerLead = kpi.CostPerLead(ct.Investment, ct.Leads)
		return ct
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"labels": a.monthLabels(),
		"campaigns": []campaignTotals{
			totals("imoveis", kpi.TableImoveis),
			totals("seguros", kpi.TableMultiseguros),
		},
	})
}

func (a *App) handleAPITrend(w http.ResponseWriter, r *http.Request) {
	tableName := r.URL.Query().Get("table")
	metric := r.URL.Query().Get("metric")
	if tableName == "" || metric == "" {
		respondError(w, http.StatusBadRequest, "table and metric query parameters are required")
		return
	}

	table, ok := a.store.Table(tableName)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown table: "+tableName)
		return
	}
	name, series, ok := table.FindMetric(metric)
	if !ok {
		respondError(w, http.StatusNotFound, "no metric matching: "+metric)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Table  string    `json:"table"`
		Metric string    `json:"metric"`
		Slope  kpi.Value `json:"slope"`
		Mean   kpi.Value `json:"mean"`
		Count  int       `json:"count"`
	}{
		Table:  table.Name,
		Metric: name,
		Slope:  analysis.TrendSlope(series),
		Mean:   series.Mean(),
		Count:  series.Count(),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encode error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
