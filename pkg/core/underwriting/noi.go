package underwriting

import (
	"cre_underwriting/pkg/core/finmath"
)

// ProjectNOI builds the year-by-year revenue/expense/NOI series.
//
// It produces HoldPeriodYears+1 entries: the extra terminal year supplies the
// exit-year NOI reference. Year 1 carries the inputs verbatim; every later
// year compounds off the immediately preceding year's rounded values, not off
// year 1. Each year is rounded to 2 decimals before the next compounds on it,
// so small floating drift can accumulate over long holds; that matches the
// shipped model and is intentionally not corrected here.
func ProjectNOI(year1Revenue, year1Expenses float64, a Assumptions) []NOIProjection {
	years := a.HoldPeriodYears + 1
	projections := make([]NOIProjection, 0, years)

	revenue := finmath.Round2(year1Revenue)
	expenses := finmath.Round2(year1Expenses)

	for year := 1; year <= years; year++ {
		if year > 1 {
			revenue = finmath.Round2(revenue * (1 + a.RevenueGrowth))
			expenses = finmath.Round2(expenses * (1 + a.ExpenseGrowth))
		}

		projections = append(projections, NOIProjection{
			Year:               year,
			GrossRevenue:       revenue,
			OperatingExpenses:  expenses,
			NetOperatingIncome: finmath.Round2(revenue - expenses),
		})
	}

	return projections
}
