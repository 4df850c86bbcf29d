package kpi

import "github.com/montanaflynn/stats"

// Series is an ordered run of values for one metric. Missing entries stay in
// place so positions keep lining up with months.
type Series []Value

// Floats returns the non-missing values in order.
func (s Series) Floats() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if v.Valid {
			out = append(out, v.Float)
		}
	}
	return out
}

// Count returns the number of non-missing values.
func (s Series) Count() int {
	n := 0
	for _, v := range s {
		if v.Valid {
			n++
		}
	}
	return n
}

func (s Series) aggregate(fn func(stats.Float64Data) (float64, error)) Value {
	data := s.Floats()
	if len(data) == 0 {
		return Missing()
	}
	f, err := fn(data)
	if err != nil {
		return Missing()
	}
	return Number(f)
}

// Mean averages the non-missing values; an all-missing series stays missing.
func (s Series) Mean() Value { return s.aggregate(stats.Mean) }

// Min returns the smallest non-missing value.
func (s Series) Min() Value { return s.aggregate(stats.Min) }

// Max returns the largest non-missing value.
func (s Series) Max() Value { return s.aggregate(stats.Max) }

// Sum totals the non-missing values.
func (s Series) Sum() Value { return s.aggregate(stats.Sum) }

// Median returns the middle non-missing value.
func (s Series) Median() Value { return s.aggregate(stats.Median) }

// StdDev returns the population standard deviation of the non-missing values.
func (s Series) StdDev() Value { return s.aggregate(stats.StandardDeviation) }
