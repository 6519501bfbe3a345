package underwriting

import (
	"cre_underwriting/pkg/core/finmath"
)

// DefaultRequiredDSCR is the lender coverage target used by the advisory
// max-loan sizing.
const DefaultRequiredDSCR = 1.25

// CalculateDebtService sizes the loan off the LTV ratio and prices it as
// interest-only: annual debt service is simply loan x rate, with no
// amortization schedule.
func CalculateDebtService(a Assumptions) DebtServiceCalculation {
	loanAmount := finmath.Round2(a.PurchasePrice * a.LTVRatio)
	return debtServiceForLoan(loanAmount, a)
}

// CalculateDebtServiceForLoan is the custom-loan variant: the caller supplies
// the loan amount directly instead of deriving it from LTV.
func CalculateDebtServiceForLoan(loanAmount float64, a Assumptions) DebtServiceCalculation {
	return debtServiceForLoan(finmath.Round2(loanAmount), a)
}

func debtServiceForLoan(loanAmount float64, a Assumptions) DebtServiceCalculation {
	annual := finmath.Round2(loanAmount * a.InterestRate)
	return DebtServiceCalculation{
		LoanAmount:         loanAmount,
		AnnualDebtService:  annual,
		MonthlyDebtService: finmath.Round2(annual / 12),
		InterestRate:       a.InterestRate,
		LoanTermYears:      a.LoanTermYears,
	}
}

// CalculateDSCR returns NOI / debt service, 0 when there is no debt service.
func CalculateDSCR(noi, debtService float64) float64 {
	if debtService == 0 {
		return 0
	}
	return finmath.Round2(noi / debtService)
}

// CalculateRemainingDebt applies the interest-only balance rule: the full
// principal is outstanding until the term expires, then 0. Binary, not a
// declining schedule.
func CalculateRemainingDebt(loanAmount float64, yearsElapsed, loanTermYears int) float64 {
	if yearsElapsed >= loanTermYears {
		return 0
	}
	return loanAmount
}

// CalculateDebtYield returns NOI / loan amount, 0 when there is no loan.
func CalculateDebtYield(noi, loanAmount float64) float64 {
	return finmath.SafeDiv(noi, loanAmount)
}

// CalculateMaxLoanAmount reverse-engineers the loan size a given NOI can
// support at the required coverage: maxLoan = NOI / requiredDSCR / rate.
// Advisory only; the main pipeline never calls it.
func CalculateMaxLoanAmount(noi, interestRate, requiredDSCR float64) float64 {
	if interestRate == 0 || requiredDSCR == 0 {
		return 0
	}
	return finmath.Round2(noi / requiredDSCR / interestRate)
}
