package underwriting

import (
	"cre_underwriting/pkg/core/finmath"
)

// CalculateUnleveredIRR solves the all-cash return. The vector is
// [-purchasePrice, NOI_1 .. NOI_n, exitValue]: gross sale value, not net
// proceeds, appended as an additional final entry after the last NOI year --
// debt is deliberately absent from the unlevered view.
func CalculateUnleveredIRR(purchasePrice float64, projections []NOIProjection, exit ExitAnalysis) float64 {
	cashFlows := make([]float64, 0, len(projections)+2)
	cashFlows = append(cashFlows, -purchasePrice)
	for _, p := range projections {
		cashFlows = append(cashFlows, p.NetOperatingIncome)
	}
	cashFlows = append(cashFlows, exit.ExitValue)
	return finmath.IRR(cashFlows)
}

// CalculateLeveredIRR solves the equity return. The vector is
// [-(price - loan), cashFlow_1 .. cashFlow_n]; the final proforma cash flow
// already embeds the net sale proceeds, so nothing is appended.
func CalculateLeveredIRR(purchasePrice float64, debt DebtServiceCalculation, flows []ProFormaCashFlow) float64 {
	cashFlows := make([]float64, 0, len(flows)+1)
	cashFlows = append(cashFlows, -(purchasePrice - debt.LoanAmount))
	for _, f := range flows {
		cashFlows = append(cashFlows, f.CashFlow)
	}
	return finmath.IRR(cashFlows)
}

// CalculateEquityMultiple returns total cash returned over equity invested,
// 0 when there is no equity.
func CalculateEquityMultiple(totalReturn, totalInvestment float64) float64 {
	if totalInvestment == 0 {
		return 0
	}
	return finmath.Round2(totalReturn / totalInvestment)
}

// CalculatePaybackPeriod walks the cash flows year by year and returns the
// fractional year at which the cumulative crosses the equity contribution,
// linearly interpolated within the crossing year. Returns -1 when payback
// never occurs within the projection horizon; callers must check for the
// sentinel.
func CalculatePaybackPeriod(flows []ProFormaCashFlow, totalInvestment float64) float64 {
	var cumulative float64
	for i, f := range flows {
		prev := cumulative
		cumulative += f.CashFlow
		if cumulative >= totalInvestment {
			if f.CashFlow == 0 {
				return finmath.Round2(float64(i))
			}
			fraction := (totalInvestment - prev) / f.CashFlow
			return finmath.Round2(float64(i) + fraction)
		}
	}
	return -1
}

// CalculateReturns bundles the four return metrics for the orchestrator.
func CalculateReturns(purchasePrice float64, projections []NOIProjection, debt DebtServiceCalculation, flows []ProFormaCashFlow, exit ExitAnalysis, metrics InvestmentMetrics) IRRCalculation {
	return IRRCalculation{
		UnleveredIRR:   CalculateUnleveredIRR(purchasePrice, projections, exit),
		LeveredIRR:     CalculateLeveredIRR(purchasePrice, debt, flows),
		EquityMultiple: CalculateEquityMultiple(metrics.TotalReturn, metrics.TotalInvestment),
		PaybackPeriod:  CalculatePaybackPeriod(flows, metrics.TotalInvestment),
	}
}
