package kpi

import "testing"

// makeTable builds a wide table where every active-month cell holds 1.0
// unless overridden.
func makeTable(name string, metrics int) Table {
	t := Table{Name: name}
	for i := 0; i < metrics; i++ {
		cells := make([]Value, MonthsPerTable)
		for m := 0; m < ActiveMonths; m++ {
			cells[m] = Number(1)
		}
		t.Metrics = append(t.Metrics, name+"_metric")
		t.Cells = append(t.Cells, cells)
	}
	return t
}

func TestUnpivotRowCount(t *testing.T) {
	// Six tables with the source workbook's metric counts over the same ten
	// active months must yield exactly 530 long rows, missing values included.
	counts := []int{6, 17, 7, 9, 5, 9}
	var tables []Table
	for i, n := range counts {
		tables = append(tables, makeTable(Layouts()[i].Name, n))
	}

	obs := Unpivot(tables)
	if len(obs) != 530 {
		t.Fatalf("Unpivot produced %d rows, want 530", len(obs))
	}
}

func TestUnpivotKeepsMissingRows(t *testing.T) {
	// Metrics {A, B} where B/Janeiro is an error marker: the missing cell must
	// survive as a sentinel row, not vanish and not become zero.
	table := Table{
		Name:    TableMarketingGeral,
		Metrics: []string{"A", "B"},
		Cells: [][]Value{
			seriesOf(Number(10), Number(11)),
			seriesOf(ParseCell("#DIV/0!"), Number(21)),
		},
	}

	obs := Unpivot([]Table{table})
	if len(obs) != 2*ActiveMonths {
		t.Fatalf("got %d rows, want %d", len(obs), 2*ActiveMonths)
	}

	find := func(metric string, m Month) Observation {
		for _, o := range obs {
			if o.Metric == metric && o.Month == m {
				return o
			}
		}
		t.Fatalf("row (%s, %s) not found", metric, m.Name())
		return Observation{}
	}

	if v := find("A", Janeiro).Value; !v.Valid || v.Float != 10 {
		t.Errorf("(A, Janeiro) = %+v, want 10", v)
	}
	if v := find("A", Fevereiro).Value; !v.Valid || v.Float != 11 {
		t.Errorf("(A, Fevereiro) = %+v, want 11", v)
	}
	if v := find("B", Janeiro).Value; v.Valid {
		t.Errorf("(B, Janeiro) = %v, want missing sentinel", v.Float)
	}
	if v := find("B", Fevereiro).Value; !v.Valid || v.Float != 21 {
		t.Errorf("(B, Fevereiro) = %+v, want 21", v)
	}
}

func TestUnpivotDeterministicOrder(t *testing.T) {
	tables := []Table{makeTable(TableLeads, 3), makeTable(TableIndices, 2)}
	a := Unpivot(tables)
	b := Unpivot(tables)
	if len(a) != len(b) {
		t.Fatalf("row counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// seriesOf pads the given leading values out to a full-width row.
func seriesOf(vs ...Value) []Value {
	cells := make([]Value, MonthsPerTable)
	copy(cells, vs)
	for i := len(vs); i < ActiveMonths; i++ {
		cells[i] = Number(1)
	}
	return cells
}
