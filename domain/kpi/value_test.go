package kpi

import (
	"encoding/json"
	"testing"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		missing bool
	}{
		{"plain integer", "42", 42, false},
		{"plain float", "3.14", 3.14, false},
		{"padded", "  17 ", 17, false},
		{"currency", "R$ 1500.50", 1500.50, false},
		{"percent", "12.5%", 12.5, false},
		{"thousands separator", "1,250", 1250, false},
		{"currency with thousands", "R$ 12,345.67", 12345.67, false},
		{"negative", "-8", -8, false},
		{"division error", "#DIV/0!", 0, true},
		{"division error lowercase", "#div/0!", 0, true},
		{"value error pt", "#VALOR!", 0, true},
		{"value error en", "#VALUE!", 0, true},
		{"ref error", "#REF!", 0, true},
		{"na error", "#N/A", 0, true},
		{"empty cell", "", 0, true},
		{"whitespace cell", "   ", 0, true},
		{"text cell", "n/d", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCell(tt.raw)
			if tt.missing {
				if got.Valid {
					t.Fatalf("ParseCell(%q) = %v, want missing", tt.raw, got.Float)
				}
				return
			}
			if !got.Valid {
				t.Fatalf("ParseCell(%q) is missing, want %v", tt.raw, tt.want)
			}
			if got.Float != tt.want {
				t.Errorf("ParseCell(%q) = %v, want %v", tt.raw, got.Float, tt.want)
			}
		})
	}
}

// Error markers must never become zero.
func TestParseCellErrorMarkerNotZero(t *testing.T) {
	v := ParseCell("#DIV/0!")
	if v.Valid {
		t.Fatal("error marker parsed as a valid value")
	}
	if v == Number(0) {
		t.Fatal("error marker coerced to zero")
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Value
		want    float64
		missing bool
	}{
		{"normal division", Number(1000), Number(50), 20, false},
		{"zero denominator", Number(1000), Number(0), 0, true},
		{"missing numerator", Missing(), Number(50), 0, true},
		{"missing denominator", Number(1000), Missing(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Div(tt.a, tt.b)
			if got.Valid == tt.missing {
				t.Fatalf("Div valid=%v, want missing=%v", got.Valid, tt.missing)
			}
			if got.Valid && got.Float != tt.want {
				t.Errorf("Div = %v, want %v", got.Float, tt.want)
			}
		})
	}
}

func TestCACScenario(t *testing.T) {
	// Total spend 1000 over 50 leads must cost 20 per lead.
	cac := CAC(Number(1000), Number(50))
	if !cac.Valid || cac.Float != 20 {
		t.Fatalf("CAC(1000, 50) = %+v, want 20", cac)
	}

	// Zero leads must give the missing sentinel, never Inf or an error.
	cac = CAC(Number(1000), Number(0))
	if cac.Valid {
		t.Fatalf("CAC(1000, 0) = %v, want missing", cac.Float)
	}
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal([]Value{Number(2.5), Missing()})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[2.5,null]" {
		t.Errorf("marshal = %s, want [2.5,null]", b)
	}

	var vs []Value
	if err := json.Unmarshal(b, &vs); err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 || !vs[0].Valid || vs[0].Float != 2.5 || vs[1].Valid {
		t.Errorf("unmarshal round trip = %+v", vs)
	}
}
