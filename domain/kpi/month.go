package kpi

import (
	"fmt"
	"strings"
)

// Month is a 1-based calendar month named in Portuguese, matching the column
// headers of the source workbook.
type Month int

const (
	Janeiro Month = iota + 1
	Fevereiro
	Marco
	Abril
	Maio
	Junho
	Julho
	Agosto
	Setembro
	Outubro
	Novembro
	Dezembro
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Name returns the Portuguese month name, or "" for an out-of-range month.
func (m Month) Name() string {
	if m < Janeiro || m > Dezembro {
		return ""
	}
	return monthNames[m-1]
}

// Number returns the 1-based month number.
func (m Month) Number() int { return int(m) }

// ParseMonth matches a header cell against the Portuguese month names.
// Matching is case-insensitive and tolerates the ASCII spelling "Marco" as
// well as mangled encodings of "Março" left behind by re-saved workbooks.
func ParseMonth(s string) (Month, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return 0, fmt.Errorf("empty month name")
	}
	for i, n := range monthNames {
		if name == strings.ToLower(n) {
			return Month(i + 1), nil
		}
	}
	if strings.HasPrefix(name, "mar") {
		return Marco, nil
	}
	return 0, fmt.Errorf("unrecognized month name: %q", s)
}

// IsMonthName reports whether a cell looks like a month header.
func IsMonthName(s string) bool {
	_, err := ParseMonth(s)
	return err == nil
}
