package kpi

import "testing"

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{"Janeiro", Janeiro, false},
		{"janeiro", Janeiro, false},
		{"  Outubro ", Outubro, false},
		{"Março", Marco, false},
		{"Marco", Marco, false},
		{"marÇo", Marco, false},
		{"Dezembro", Dezembro, false},
		{"Métrica", 0, true},
		{"", 0, true},
		{"Total", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMonth(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMonth(%q) = %v, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMonth(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if Janeiro.Name() != "Janeiro" {
		t.Errorf("Janeiro.Name() = %q", Janeiro.Name())
	}
	if Marco.Name() != "Março" {
		t.Errorf("Marco.Name() = %q", Marco.Name())
	}
	if Month(0).Name() != "" || Month(13).Name() != "" {
		t.Error("out-of-range month should have an empty name")
	}
}

func TestActiveMonthList(t *testing.T) {
	months := ActiveMonthList()
	if len(months) != ActiveMonths {
		t.Fatalf("got %d active months, want %d", len(months), ActiveMonths)
	}
	if months[0] != Janeiro || months[len(months)-1] != Outubro {
		t.Errorf("active months run %v..%v, want Janeiro..Outubro", months[0], months[len(months)-1])
	}
}
