package kpi

import "time"

// Observation is one long-format row: a single metric of a single table,
// measured in a single month of the reporting year. Observations are created
// once per ETL run and are immutable afterwards.
type Observation struct {
	Table  string
	Metric string
	Year   int
	Month  Month
	Value  Value
}

// Date returns the first day of the observation month.
func (o Observation) Date() time.Time {
	return time.Date(o.Year, time.Month(o.Month), 1, 0, 0, 0, 0, time.UTC)
}
