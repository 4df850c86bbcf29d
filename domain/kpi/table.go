package kpi

// Table is one cleaned source block in wide form: metric rows by month
// columns. Cells is indexed [metric][month-1] across all twelve month
// columns; cells outside the active reporting period are simply missing.
type Table struct {
	Name    string
	Metrics []string
	Cells   [][]Value
}

// Series returns the full-width series for the metric at index i.
func (t Table) Series(i int) Series {
	if i < 0 || i >= len(t.Cells) {
		return nil
	}
	return Series(t.Cells[i])
}

// Unpivot converts the wide tables to long-format observations over the
// active reporting months, in table, metric, month order. Missing values are
// kept as sentinel rows so every table contributes exactly
// len(Metrics) * ActiveMonths observations.
func Unpivot(tables []Table) []Observation {
	var obs []Observation
	for _, t := range tables {
		for i, metric := range t.Metrics {
			for _, m := range ActiveMonthList() {
				obs = append(obs, Observation{
					Table:  t.Name,
					Metric: metric,
					Year:   ReportYear,
					Month:  m,
					Value:  t.Cells[i][m-1],
				})
			}
		}
	}
	return obs
}
