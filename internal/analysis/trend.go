package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

// TrendSlope fits an ordinary least squares line through the non-missing
// points of a series, with the 1-based position (month number) as x. Fewer
// than two points give the missing sentinel.
func TrendSlope(s kpi.Series) kpi.Value {
	var xs, ys []float64
	for i, v := range s {
		if v.Valid {
			xs = append(xs, float64(i+1))
			ys = append(ys, v.Float)
		}
	}
	if len(xs) < 2 {
		return kpi.Missing()
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return kpi.Number(beta)
}
