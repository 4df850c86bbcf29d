package kpi

// Derived marketing-finance ratios. All of them propagate the missing
// sentinel: a zero or missing denominator never turns into an infinity, a
// division error, or a silent zero.

// CAC is total acquisition spend divided by acquired leads.
func CAC(spend, leads Value) Value { return Div(spend, leads) }

// ConversionRate is converted leads over submitted proposals, as a
// percentage.
func ConversionRate(converted, proposals Value) Value {
	r := Div(converted, proposals)
	if !r.Valid {
		return r
	}
	return Number(r.Float * 100)
}

// CostPerLead is campaign investment divided by generated leads.
func CostPerLead(investment, leads Value) Value { return Div(investment, leads) }

// ROIRatio is monthly recurring revenue over cost; above 1.0 the month is
// profitable.
func ROIRatio(revenue, cost Value) Value { return Div(revenue, cost) }
