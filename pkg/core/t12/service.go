package t12

import (
	"fmt"
	"math"
	"time"

	"cre_underwriting/pkg/core/finmath"
)

// CalculationService aggregates categorized T12 line items. It is stateless;
// a zero value is ready to use.
type CalculationService struct{}

// NewCalculationService returns a new service instance.
func NewCalculationService() *CalculationService {
	return &CalculationService{}
}

// CalculateRevenue sums Total over items in the revenue group. Signs are
// kept as stored.
func (s *CalculationService) CalculateRevenue(items []DataItem) float64 {
	return finmath.Round2(s.sumByType(items, TypeRevenue, false))
}

// CalculateDeductions sums |Total| over deduction-group items. Vacancy and
// bad-debt rows arrive with inconsistent signs across source documents, so
// deductions are normalized to positive magnitude.
func (s *CalculationService) CalculateDeductions(items []DataItem) float64 {
	return finmath.Round2(s.sumByType(items, TypeDeduction, true))
}

// CalculateExpenses sums |Total| over expense-group items, normalized to
// positive magnitude like deductions.
func (s *CalculationService) CalculateExpenses(items []DataItem) float64 {
	return finmath.Round2(s.sumByType(items, TypeExpense, true))
}

// CalculateGrossIncome is revenue minus deductions.
func (s *CalculationService) CalculateGrossIncome(items []DataItem) float64 {
	return finmath.Round2(s.CalculateRevenue(items) - s.CalculateDeductions(items))
}

// CalculateNOI is gross income minus expenses.
func (s *CalculationService) CalculateNOI(items []DataItem) float64 {
	return finmath.Round2(s.CalculateGrossIncome(items) - s.CalculateExpenses(items))
}

// CalculateAll derives the full financial summary in one pass over the
// aggregation helpers.
func (s *CalculationService) CalculateAll(items []DataItem) FinancialSummary {
	revenue := s.CalculateRevenue(items)
	deductions := s.CalculateDeductions(items)
	expenses := s.CalculateExpenses(items)
	grossIncome := finmath.Round2(revenue - deductions)

	return FinancialSummary{
		TotalRevenue:    revenue,
		TotalDeductions: deductions,
		TotalExpenses:   expenses,
		GrossIncome:     grossIncome,
		NOI:             finmath.Round2(grossIncome - expenses),
		LastCalculated:  time.Now(),
	}
}

// ValidateData runs the structural checks: every item needs a category, a
// finite total, and a line item label. Problems come back as a per-row
// message list, never as an error, so the UI can annotate individual rows.
func (s *CalculationService) ValidateData(items []DataItem) ValidationResult {
	result := ValidationResult{IsValid: true}

	for i, item := range items {
		if item.Category == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing category", i+1))
		}
		if item.LineItem == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing line item", i+1))
		}
		if math.IsNaN(item.Total) || math.IsInf(item.Total, 0) {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d (%s): total is not a finite number", i+1, item.LineItem))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// sumByType folds the items of one bucket. Subtotal and unrecognized
// categories never match, which is what keeps pre-aggregated rows out of the
// totals.
func (s *CalculationService) sumByType(items []DataItem, want CategoryType, useAbs bool) float64 {
	var sum float64
	for _, item := range items {
		ct, ok := CategoryTypeOf(item.Category)
		if !ok || ct != want {
			continue
		}
		if useAbs {
			sum += math.Abs(item.Total)
		} else {
			sum += item.Total
		}
	}
	return sum
}
