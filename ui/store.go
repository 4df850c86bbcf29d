package ui

import (
	"strings"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

// Store is the immutable in-memory view of the prepared workbook. It is
// built once at startup; every render afterwards is a pure read.
type Store struct {
	Tables    []*TableData
	Summaries []kpi.TableSummary
	Months    []kpi.Month

	byName map[string]*TableData
}

// TableData groups the observations of one source table, metrics in
// workbook order.
type TableData struct {
	Name    string
	Metrics []string
	series  map[string]kpi.Series
}

// NewStore groups long-format observations by table and metric. Observation
// order in the long table is (table, metric, month), so insertion order
// reproduces the workbook order.
func NewStore(observations []kpi.Observation, summaries []kpi.TableSummary) *Store {
	s := &Store{
		Summaries: summaries,
		Months:    kpi.ActiveMonthList(),
		byName:    make(map[string]*TableData),
	}

	for _, o := range observations {
		td, ok := s.byName[o.Table]
		if !ok {
			td = &TableData{Name: o.Table, series: make(map[string]kpi.Series)}
			s.byName[o.Table] = td
			s.Tables = append(s.Tables, td)
		}
		if _, seen := td.series[o.Metric]; !seen {
			td.Metrics = append(td.Metrics, o.Metric)
			td.series[o.Metric] = make(kpi.Series, 0, kpi.ActiveMonths)
		}
		td.series[o.Metric] = append(td.series[o.Metric], o.Value)
	}

	return s
}

// Table looks a table up by its sheet name.
func (s *Store) Table(name string) (*TableData, bool) {
	td, ok := s.byName[name]
	return td, ok
}

// TotalMetrics counts metrics across all tables.
func (s *Store) TotalMetrics() int {
	n := 0
	for _, td := range s.Tables {
		n += len(td.Metrics)
	}
	return n
}

// AvgFillPct averages the fill percentage over the table summaries.
func (s *Store) AvgFillPct() kpi.Value {
	var pcts kpi.Series
	for _, sum := range s.Summaries {
		pcts = append(pcts, kpi.Number(sum.FillPct))
	}
	return pcts.Mean()
}

// Series returns the exact-name series of a metric.
func (t *TableData) Series(metric string) (kpi.Series, bool) {
	s, ok := t.series[metric]
	return s, ok
}

// FindMetric matches metrics by case-insensitive substring, the way the
// workbook's slightly drifting labels have to be addressed. The first match
// in workbook order wins.
func (t *TableData) FindMetric(substr string) (string, kpi.Series, bool) {
	needle := strings.ToLower(substr)
	for _, name := range t.Metrics {
		if strings.Contains(strings.ToLower(name), needle) {
			return name, t.series[name], true
		}
	}
	return "", nil, false
}

// MetricSeries is FindMetric without the resolved name, for callers that
// only need the data.
func (t *TableData) MetricSeries(substr string) kpi.Series {
	_, s, ok := t.FindMetric(substr)
	if !ok {
		return nil
	}
	return s
}
