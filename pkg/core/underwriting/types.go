// Package underwriting implements the deal underwriting engine: NOI
// projections, interest-only debt service, proforma cash flows, exit analysis,
// and return metrics, assembled by a stateless orchestrator.
//
// Everything here is a pure transformation over caller-supplied inputs. The
// engine is called speculatively from live "what-if" editors, so outside the
// orchestrator's entry validation it degrades to zero values instead of
// erroring on incomplete data.
package underwriting

// Assumptions is the immutable input set for a single underwriting run.
// Rates are decimal fractions (0.065 == 6.5%).
type Assumptions struct {
	PurchasePrice   float64 `json:"purchase_price"`
	RevenueGrowth   float64 `json:"revenue_growth"`
	ExpenseGrowth   float64 `json:"expense_growth"`
	HoldPeriodYears int     `json:"hold_period_years"`
	InterestRate    float64 `json:"interest_rate"`
	LoanTermYears   int     `json:"loan_term_years"`
	ExitCapRate     float64 `json:"exit_cap_rate"`
	LTVRatio        float64 `json:"ltv_ratio"`
}

// NOIProjection is one projected year. Year is 1-based; projections run one
// year past the hold period so the exit year's NOI is available.
type NOIProjection struct {
	Year               int     `json:"year"`
	GrossRevenue       float64 `json:"gross_revenue"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	NetOperatingIncome float64 `json:"net_operating_income"`
}

// DebtServiceCalculation describes the interest-only loan. Principal never
// amortizes; the balance drops to zero only when the term expires.
type DebtServiceCalculation struct {
	LoanAmount         float64 `json:"loan_amount"`
	AnnualDebtService  float64 `json:"annual_debt_service"`
	MonthlyDebtService float64 `json:"monthly_debt_service"`
	InterestRate       float64 `json:"interest_rate"`
	LoanTermYears      int     `json:"loan_term_years"`
}

// ExitAnalysis values the terminal-year sale.
type ExitAnalysis struct {
	ExitYear        int     `json:"exit_year"`
	ExitValue       float64 `json:"exit_value"`
	RemainingDebt   float64 `json:"remaining_debt"`
	NetSaleProceeds float64 `json:"net_sale_proceeds"`
	ExitCapRate     float64 `json:"exit_cap_rate"`
}

// ProFormaCashFlow is one annual row of the proforma. The final projected
// year's CashFlow embeds the net sale proceeds.
type ProFormaCashFlow struct {
	Year               int     `json:"year"`
	GrossRevenue       float64 `json:"gross_revenue"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	NetOperatingIncome float64 `json:"net_operating_income"`
	DebtService        float64 `json:"debt_service"`
	CashFlow           float64 `json:"cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
}

// IRRCalculation holds the return metrics derived from the cash-flow series.
// PaybackPeriod is -1 when cumulative cash flow never recovers the equity
// within the hold period (sentinel, not an error).
type IRRCalculation struct {
	UnleveredIRR   float64 `json:"unlevered_irr"`
	LeveredIRR     float64 `json:"levered_irr"`
	EquityMultiple float64 `json:"equity_multiple"`
	PaybackPeriod  float64 `json:"payback_period"`
}

// DSCREntry is the coverage ratio for a single projected year.
type DSCREntry struct {
	Year int     `json:"year"`
	DSCR float64 `json:"dscr"`
}

// Analysis is the assembled output of a full underwriting run.
type Analysis struct {
	Year1NOI          float64                `json:"year1_noi"`
	NOIProjections    []NOIProjection        `json:"noi_projections"`
	ProFormaCashFlows []ProFormaCashFlow     `json:"pro_forma_cash_flows"`
	DebtService       DebtServiceCalculation `json:"debt_service"`
	DSCRByYear        []DSCREntry            `json:"dscr_by_year"`
	IRRAnalysis       IRRCalculation         `json:"irr_analysis"`
	ExitAnalysis      ExitAnalysis           `json:"exit_analysis"`

	TotalInvestment  float64 `json:"total_investment"`
	TotalReturn      float64 `json:"total_return"`
	TotalProfit      float64 `json:"total_profit"`
	CashOnCashReturn float64 `json:"cash_on_cash_return"`
	CapRate          float64 `json:"cap_rate"`
	NOIGrowthRate    float64 `json:"noi_growth_rate"`
	AverageDSCR      float64 `json:"average_dscr"`
	MinimumDSCR      float64 `json:"minimum_dscr"`
}
