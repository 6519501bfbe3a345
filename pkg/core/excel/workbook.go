// Package excel renders a computed underwriting analysis into the model
// workbook handed to users: a summary sheet, the annual pro forma, and the
// NOI projection detail.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cre_underwriting/pkg/core/underwriting"
)

const (
	sheetSummary     = "Summary"
	sheetProForma    = "Pro Forma"
	sheetProjections = "NOI Projections"
)

// BuildWorkbook lays the analysis out across the three model sheets.
func BuildWorkbook(dealName string, a *underwriting.Analysis, assumptions underwriting.Assumptions) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetProForma); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetProjections); err != nil {
		return nil, err
	}

	writeSummary(f, dealName, a, assumptions)
	writeProForma(f, a)
	writeProjections(f, a)

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook streams the workbook, for attachment downloads.
func WriteWorkbook(w io.Writer, dealName string, a *underwriting.Analysis, assumptions underwriting.Assumptions) error {
	f, err := BuildWorkbook(dealName, a, assumptions)
	if err != nil {
		return err
	}
	return f.Write(w)
}

func writeSummary(f *excelize.File, dealName string, a *underwriting.Analysis, assumptions underwriting.Assumptions) {
	rows := [][2]interface{}{
		{"Deal", dealName},
		{"Purchase Price", assumptions.PurchasePrice},
		{"Hold Period (Years)", assumptions.HoldPeriodYears},
		{"LTV Ratio", assumptions.LTVRatio},
		{"Interest Rate", assumptions.InterestRate},
		{"Exit Cap Rate", assumptions.ExitCapRate},
		{"", ""},
		{"Year 1 NOI", a.Year1NOI},
		{"Loan Amount", a.DebtService.LoanAmount},
		{"Annual Debt Service", a.DebtService.AnnualDebtService},
		{"Total Investment (Equity)", a.TotalInvestment},
		{"Total Return", a.TotalReturn},
		{"Total Profit", a.TotalProfit},
		{"Cap Rate", a.CapRate},
		{"Cash-on-Cash Return", a.CashOnCashReturn},
		{"Levered IRR", a.IRRAnalysis.LeveredIRR},
		{"Unlevered IRR", a.IRRAnalysis.UnleveredIRR},
		{"Equity Multiple", a.IRRAnalysis.EquityMultiple},
		{"Payback Period (Years)", a.IRRAnalysis.PaybackPeriod},
		{"Average DSCR", a.AverageDSCR},
		{"Minimum DSCR", a.MinimumDSCR},
		{"Exit Value", a.ExitAnalysis.ExitValue},
		{"Net Sale Proceeds", a.ExitAnalysis.NetSaleProceeds},
	}

	for i, row := range rows {
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", i+1), row[1])
	}
}

func writeProForma(f *excelize.File, a *underwriting.Analysis) {
	headers := []string{"Year", "Gross Revenue", "Operating Expenses", "NOI", "Debt Service", "Cash Flow", "Cumulative Cash Flow", "DSCR"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetProForma, cell, h)
	}

	for i, cf := range a.ProFormaCashFlows {
		row := i + 2
		var dscr float64
		if i < len(a.DSCRByYear) {
			dscr = a.DSCRByYear[i].DSCR
		}
		values := []interface{}{cf.Year, cf.GrossRevenue, cf.OperatingExpenses, cf.NetOperatingIncome, cf.DebtService, cf.CashFlow, cf.CumulativeCashFlow, dscr}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetProForma, cell, v)
		}
	}
}

func writeProjections(f *excelize.File, a *underwriting.Analysis) {
	headers := []string{"Year", "Gross Revenue", "Operating Expenses", "NOI"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetProjections, cell, h)
	}

	for i, p := range a.NOIProjections {
		row := i + 2
		values := []interface{}{p.Year, p.GrossRevenue, p.OperatingExpenses, p.NetOperatingIncome}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetProjections, cell, v)
		}
	}
}
