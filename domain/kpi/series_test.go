package kpi

import "testing"

func TestSeriesAggregates(t *testing.T) {
	s := Series{Number(10), Missing(), Number(20), Number(30), Missing()}

	if got := s.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
	if got := s.Mean(); !got.Valid || got.Float != 20 {
		t.Errorf("Mean = %+v, want 20", got)
	}
	if got := s.Min(); !got.Valid || got.Float != 10 {
		t.Errorf("Min = %+v, want 10", got)
	}
	if got := s.Max(); !got.Valid || got.Float != 30 {
		t.Errorf("Max = %+v, want 30", got)
	}
	if got := s.Sum(); !got.Valid || got.Float != 60 {
		t.Errorf("Sum = %+v, want 60", got)
	}
	if got := s.Median(); !got.Valid || got.Float != 20 {
		t.Errorf("Median = %+v, want 20", got)
	}
}

func TestSeriesAllMissing(t *testing.T) {
	s := Series{Missing(), Missing()}
	for name, v := range map[string]Value{
		"Mean":   s.Mean(),
		"Min":    s.Min(),
		"Max":    s.Max(),
		"Sum":    s.Sum(),
		"Median": s.Median(),
		"StdDev": s.StdDev(),
	} {
		if v.Valid {
			t.Errorf("%s of all-missing series = %v, want missing", name, v.Float)
		}
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d, want 0", s.Count())
	}
}

func TestConversionRate(t *testing.T) {
	if got := ConversionRate(Number(5), Number(50)); !got.Valid || got.Float != 10 {
		t.Errorf("ConversionRate(5, 50) = %+v, want 10%%", got)
	}
	if got := ConversionRate(Number(5), Number(0)); got.Valid {
		t.Errorf("ConversionRate with zero proposals = %v, want missing", got.Float)
	}
}

func TestROIRatio(t *testing.T) {
	if got := ROIRatio(Number(3000), Number(1500)); !got.Valid || got.Float != 2 {
		t.Errorf("ROIRatio(3000, 1500) = %+v, want 2", got)
	}
	if got := ROIRatio(Missing(), Number(1500)); got.Valid {
		t.Errorf("ROIRatio with missing revenue = %v, want missing", got.Float)
	}
}
