package underwriting

import (
	"cre_underwriting/pkg/core/finmath"
)

// CalculateExitAnalysis values the sale at exitYear = hold + 1 off that
// year's NOI: exitValue = NOI / exitCapRate, net proceeds = exitValue minus
// whatever principal is still outstanding under the interest-only rule.
// An out-of-range exit year yields a zero NOI rather than an error.
func CalculateExitAnalysis(projections []NOIProjection, a Assumptions, debt DebtServiceCalculation) ExitAnalysis {
	exitYear := a.HoldPeriodYears + 1

	var finalYearNOI float64
	if exitYear >= 1 && exitYear <= len(projections) {
		finalYearNOI = projections[exitYear-1].NetOperatingIncome
	}

	var exitValue float64
	if a.ExitCapRate > 0 {
		exitValue = finmath.Round2(finalYearNOI / a.ExitCapRate)
	}

	remainingDebt := CalculateRemainingDebt(debt.LoanAmount, exitYear, a.LoanTermYears)

	return ExitAnalysis{
		ExitYear:        exitYear,
		ExitValue:       exitValue,
		RemainingDebt:   remainingDebt,
		NetSaleProceeds: finmath.Round2(exitValue - remainingDebt),
		ExitCapRate:     a.ExitCapRate,
	}
}

// BuildProFormaCashFlows combines the NOI projections with debt service into
// annual cash flows. Every year is NOI - debt service; the final projection
// year additionally folds in the net sale proceeds when an exit analysis is
// supplied. CumulativeCashFlow is a running sum.
func BuildProFormaCashFlows(projections []NOIProjection, debt DebtServiceCalculation, exit *ExitAnalysis) []ProFormaCashFlow {
	flows := make([]ProFormaCashFlow, 0, len(projections))

	var cumulative float64
	for i, p := range projections {
		operating := finmath.Round2(p.NetOperatingIncome - debt.AnnualDebtService)

		cashFlow := operating
		if exit != nil && i == len(projections)-1 {
			cashFlow = finmath.Round2(operating + exit.NetSaleProceeds)
		}

		cumulative = finmath.Round2(cumulative + cashFlow)
		flows = append(flows, ProFormaCashFlow{
			Year:               p.Year,
			GrossRevenue:       p.GrossRevenue,
			OperatingExpenses:  p.OperatingExpenses,
			NetOperatingIncome: p.NetOperatingIncome,
			DebtService:        debt.AnnualDebtService,
			CashFlow:           cashFlow,
			CumulativeCashFlow: cumulative,
		})
	}

	return flows
}

// InvestmentMetrics aggregates the deal-level totals.
type InvestmentMetrics struct {
	TotalInvestment float64 // equity contribution: price - loan
	TotalReturn     float64 // sum of all proforma cash flows (exit included)
	TotalProfit     float64
}

// CalculateInvestmentMetrics sums the proforma. The final-year cash flow
// already embeds the exit proceeds, so they are never added a second time.
func CalculateInvestmentMetrics(purchasePrice float64, debt DebtServiceCalculation, flows []ProFormaCashFlow) InvestmentMetrics {
	totalInvestment := finmath.Round2(purchasePrice - debt.LoanAmount)

	var totalReturn float64
	for _, f := range flows {
		totalReturn += f.CashFlow
	}
	totalReturn = finmath.Round2(totalReturn)

	return InvestmentMetrics{
		TotalInvestment: totalInvestment,
		TotalReturn:     totalReturn,
		TotalProfit:     finmath.Round2(totalReturn - totalInvestment),
	}
}

// KPISet holds the headline deal indicators shown on the dashboard.
type KPISet struct {
	Year1NOI         float64
	FinalYearNOI     float64
	NOIGrowthRate    float64
	DSCRByYear       []DSCREntry
	AverageDSCR      float64
	MinimumDSCR      float64
	CashOnCashReturn float64
	CapRate          float64
}

// CalculateKPIs derives the headline indicators. Division guards return 0:
// a zero purchase price or equity is an incomplete form state, not a bug.
func CalculateKPIs(purchasePrice float64, projections []NOIProjection, debt DebtServiceCalculation, metrics InvestmentMetrics) KPISet {
	kpi := KPISet{}
	if len(projections) == 0 {
		return kpi
	}

	kpi.Year1NOI = projections[0].NetOperatingIncome
	kpi.FinalYearNOI = projections[len(projections)-1].NetOperatingIncome

	if kpi.Year1NOI > 0 {
		kpi.NOIGrowthRate = finmath.RoundToDecimals((kpi.FinalYearNOI-kpi.Year1NOI)/kpi.Year1NOI, 4)
	}

	dscrValues := make([]float64, 0, len(projections))
	for _, p := range projections {
		dscr := CalculateDSCR(p.NetOperatingIncome, debt.AnnualDebtService)
		kpi.DSCRByYear = append(kpi.DSCRByYear, DSCREntry{Year: p.Year, DSCR: dscr})
		dscrValues = append(dscrValues, dscr)
	}
	kpi.AverageDSCR = finmath.Round2(finmath.Average(dscrValues))
	kpi.MinimumDSCR = finmath.Min(dscrValues)

	if metrics.TotalInvestment > 0 {
		kpi.CashOnCashReturn = finmath.RoundToDecimals((kpi.Year1NOI-debt.AnnualDebtService)/metrics.TotalInvestment, 4)
	}
	if purchasePrice > 0 {
		kpi.CapRate = finmath.RoundToDecimals(kpi.Year1NOI/purchasePrice, 4)
	}

	return kpi
}
