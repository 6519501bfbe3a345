package underwriting

import "fmt"

// ValidateAssumptions checks every assumption against its domain and returns
// human-readable messages for each violation. An empty slice means valid.
// Errors are returned as data so the UI can render them per field; only the
// orchestrator turns a non-empty list into a hard failure.
func ValidateAssumptions(a Assumptions) []string {
	var errs []string

	if a.PurchasePrice <= 0 {
		errs = append(errs, "purchase price must be greater than 0")
	}
	if a.RevenueGrowth < 0 || a.RevenueGrowth > 1 {
		errs = append(errs, fmt.Sprintf("revenue growth must be between 0 and 1, got %v", a.RevenueGrowth))
	}
	if a.ExpenseGrowth < 0 || a.ExpenseGrowth > 1 {
		errs = append(errs, fmt.Sprintf("expense growth must be between 0 and 1, got %v", a.ExpenseGrowth))
	}
	if a.HoldPeriodYears <= 0 {
		errs = append(errs, "hold period must be greater than 0 years")
	}
	if a.InterestRate < 0 || a.InterestRate > 1 {
		errs = append(errs, fmt.Sprintf("interest rate must be between 0 and 1, got %v", a.InterestRate))
	}
	if a.LoanTermYears <= 0 {
		errs = append(errs, "loan term must be greater than 0 years")
	}
	if a.ExitCapRate <= 0 || a.ExitCapRate > 1 {
		errs = append(errs, fmt.Sprintf("exit cap rate must be greater than 0 and at most 1, got %v", a.ExitCapRate))
	}

	return errs
}
