package kpi

// TableSummary mirrors one row of the Resumo_Analitico sheet: how completely
// a table block is filled in. Informational only, never used for correctness.
type TableSummary struct {
	Table       string
	NumMetrics  int
	NumMonths   int
	TotalCells  int
	FilledCells int
	EmptyCells  int
	FillPct     float64
}

// MetricStats mirrors one row of the Estatisticas_Metricas sheet:
// descriptive statistics for a single metric over its non-missing values.
type MetricStats struct {
	Table  string
	Metric string
	Count  int
	Mean   Value
	Median Value
	Min    Value
	Max    Value
	StdDev Value
	Trend  Value
}
