package underwriting

import (
	"fmt"
	"strings"
)

// Calculate runs the full underwriting pipeline:
//
//	validate -> project NOI -> size debt -> exit analysis -> proforma ->
//	returns/metrics/KPIs -> assembled Analysis
//
// This is the only component that errors; everything downstream degrades to
// zero values on incomplete data. The pipeline is stateless, so it is safe to
// re-run on every assumption edit.
func Calculate(year1Revenue, year1Expenses float64, a Assumptions) (*Analysis, error) {
	if err := validateInputs(year1Revenue, year1Expenses, a); err != nil {
		return nil, err
	}
	debt := CalculateDebtService(a)
	return run(year1Revenue, year1Expenses, a, debt)
}

// CalculateWithCustomLoan repeats the pipeline with a caller-supplied loan
// amount in place of the LTV-derived one.
func CalculateWithCustomLoan(year1Revenue, year1Expenses float64, a Assumptions, customLoanAmount float64) (*Analysis, error) {
	if err := validateInputs(year1Revenue, year1Expenses, a); err != nil {
		return nil, err
	}
	if customLoanAmount < 0 {
		return nil, fmt.Errorf("custom loan amount cannot be negative, got %v", customLoanAmount)
	}
	if customLoanAmount > a.PurchasePrice {
		return nil, fmt.Errorf("custom loan amount %v exceeds purchase price %v", customLoanAmount, a.PurchasePrice)
	}

	debt := CalculateDebtServiceForLoan(customLoanAmount, a)
	return run(year1Revenue, year1Expenses, a, debt)
}

func validateInputs(year1Revenue, year1Expenses float64, a Assumptions) error {
	if year1Revenue <= 0 {
		return fmt.Errorf("year 1 revenue must be greater than 0, got %v", year1Revenue)
	}
	if year1Expenses < 0 {
		return fmt.Errorf("year 1 expenses cannot be negative, got %v", year1Expenses)
	}
	if errs := ValidateAssumptions(a); len(errs) > 0 {
		return fmt.Errorf("invalid assumptions: %s", strings.Join(errs, "; "))
	}
	return nil
}

func run(year1Revenue, year1Expenses float64, a Assumptions, debt DebtServiceCalculation) (*Analysis, error) {
	projections := ProjectNOI(year1Revenue, year1Expenses, a)

	// Exit must precede the proforma: the terminal cash flow embeds the net
	// sale proceeds.
	exit := CalculateExitAnalysis(projections, a, debt)
	flows := BuildProFormaCashFlows(projections, debt, &exit)

	metrics := CalculateInvestmentMetrics(a.PurchasePrice, debt, flows)
	kpis := CalculateKPIs(a.PurchasePrice, projections, debt, metrics)
	irr := CalculateReturns(a.PurchasePrice, projections, debt, flows, exit, metrics)

	return &Analysis{
		Year1NOI:          kpis.Year1NOI,
		NOIProjections:    projections,
		ProFormaCashFlows: flows,
		DebtService:       debt,
		DSCRByYear:        kpis.DSCRByYear,
		IRRAnalysis:       irr,
		ExitAnalysis:      exit,
		TotalInvestment:   metrics.TotalInvestment,
		TotalReturn:       metrics.TotalReturn,
		TotalProfit:       metrics.TotalProfit,
		CashOnCashReturn:  kpis.CashOnCashReturn,
		CapRate:           kpis.CapRate,
		NOIGrowthRate:     kpis.NOIGrowthRate,
		AverageDSCR:       kpis.AverageDSCR,
		MinimumDSCR:       kpis.MinimumDSCR,
	}, nil
}
