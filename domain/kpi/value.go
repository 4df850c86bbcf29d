package kpi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a single spreadsheet measurement. A blank cell or an Excel
// formula error carries Valid=false; a missing value is never zero.
type Value struct {
	Float float64
	Valid bool
}

// Number wraps a known numeric value.
func Number(f float64) Value { return Value{Float: f, Valid: true} }

// Missing returns the missing-value sentinel.
func Missing() Value { return Value{} }

// errorMarkers are the Excel formula errors observed in the source workbook
// (Portuguese locale included).
var errorMarkers = []string{
	"#DIV/0!",
	"#VALOR!",
	"#VALUE!",
	"#REF!",
	"#N/A",
	"#NOME?",
	"#NUM!",
}

// ParseCell converts a raw cell string to a Value. Error markers become the
// missing sentinel; currency symbols, percent signs and thousands separators
// are stripped before parsing. Anything that still fails to parse is missing,
// never zero.
func ParseCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Missing()
	}

	upper := strings.ToUpper(s)
	for _, marker := range errorMarkers {
		if strings.Contains(upper, marker) {
			return Missing()
		}
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	return Number(f)
}

// Div divides a by b. A missing operand or a zero denominator yields the
// missing sentinel rather than an infinity or a panic.
func Div(a, b Value) Value {
	if !a.Valid || !b.Valid || b.Float == 0 {
		return Missing()
	}
	return Number(a.Float / b.Float)
}

// MarshalJSON renders missing values as null so chart payloads can carry
// gaps without inventing zeros.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

// UnmarshalJSON accepts either a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Missing()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Number(f)
	return nil
}
