// Verification harness for the underwriting engine: runs the reference deal
// and prints every intermediate so the numbers can be checked by hand against
// the model spreadsheet.
package main

import (
	"fmt"

	"cre_underwriting/pkg/core/finmath"
	"cre_underwriting/pkg/core/t12"
	"cre_underwriting/pkg/core/underwriting"
)

func main() {
	assumptions := underwriting.Assumptions{
		PurchasePrice:   8_000_000,
		RevenueGrowth:   0.03,
		ExpenseGrowth:   0.025,
		HoldPeriodYears: 5,
		InterestRate:    0.065,
		LoanTermYears:   30,
		ExitCapRate:     0.06,
		LTVRatio:        0.75,
	}

	analysis, err := underwriting.Calculate(1_000_000, 400_000, assumptions)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("--- Reference Deal ---")
	fmt.Printf("Purchase Price:      %s\n", finmath.FormatCurrency(assumptions.PurchasePrice))
	fmt.Printf("Year 1 NOI:          %s\n", finmath.FormatCurrency(analysis.Year1NOI))
	fmt.Printf("Loan Amount:         %s\n", finmath.FormatCurrency(analysis.DebtService.LoanAmount))
	fmt.Printf("Annual Debt Service: %s\n", finmath.FormatCurrency(analysis.DebtService.AnnualDebtService))
	fmt.Printf("Cap Rate:            %s\n", finmath.FormatPercent(analysis.CapRate, 2))
	fmt.Printf("Cash-on-Cash:        %s\n", finmath.FormatPercent(analysis.CashOnCashReturn, 2))

	fmt.Println("\n--- NOI Projections ---")
	for _, p := range analysis.NOIProjections {
		fmt.Printf("Year %d: revenue %s | expenses %s | NOI %s\n",
			p.Year,
			finmath.FormatCurrency(p.GrossRevenue),
			finmath.FormatCurrency(p.OperatingExpenses),
			finmath.FormatCurrency(p.NetOperatingIncome))
	}

	fmt.Println("\n--- Pro Forma ---")
	for i, cf := range analysis.ProFormaCashFlows {
		fmt.Printf("Year %d: cash flow %s | cumulative %s | DSCR %.2f\n",
			cf.Year,
			finmath.FormatCurrency(cf.CashFlow),
			finmath.FormatCurrency(cf.CumulativeCashFlow),
			analysis.DSCRByYear[i].DSCR)
	}

	fmt.Println("\n--- Exit & Returns ---")
	fmt.Printf("Exit Year:         %d\n", analysis.ExitAnalysis.ExitYear)
	fmt.Printf("Exit Value:        %s\n", finmath.FormatCurrency(analysis.ExitAnalysis.ExitValue))
	fmt.Printf("Net Sale Proceeds: %s\n", finmath.FormatCurrency(analysis.ExitAnalysis.NetSaleProceeds))
	fmt.Printf("Levered IRR:       %s\n", finmath.FormatPercent(analysis.IRRAnalysis.LeveredIRR, 2))
	fmt.Printf("Unlevered IRR:     %s\n", finmath.FormatPercent(analysis.IRRAnalysis.UnleveredIRR, 2))
	fmt.Printf("Equity Multiple:   %s\n", finmath.FormatMultiple(analysis.IRRAnalysis.EquityMultiple))
	fmt.Printf("Payback Period:    %.2f years\n", analysis.IRRAnalysis.PaybackPeriod)
	fmt.Printf("Total Profit:      %s\n", finmath.FormatCurrency(analysis.TotalProfit))

	fmt.Println("\n--- T12 Reference Items ---")
	service := t12.NewCalculationService()
	items := []t12.DataItem{
		{LineItem: "Gross Potential Rent", Total: 500_000, Category: "Residential Rent"},
		{LineItem: "Vacancy Loss", Total: -20_000, Category: "Residential Vacancy"},
		{LineItem: "Real Estate Taxes", Total: 50_000, Category: "Property Tax"},
	}
	summary := service.CalculateAll(items)
	fmt.Printf("Revenue %s | Deductions %s | Expenses %s | Gross Income %s | NOI %s\n",
		finmath.FormatCurrency(summary.TotalRevenue),
		finmath.FormatCurrency(summary.TotalDeductions),
		finmath.FormatCurrency(summary.TotalExpenses),
		finmath.FormatCurrency(summary.GrossIncome),
		finmath.FormatCurrency(summary.NOI))
}
