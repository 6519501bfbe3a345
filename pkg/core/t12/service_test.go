package t12

import (
	"math"
	"strings"
	"testing"
)

func referenceItems() []DataItem {
	return []DataItem{
		{LineItem: "Gross Potential Rent", Total: 500_000, Category: "Residential Rent"},
		{LineItem: "Vacancy Loss", Total: -20_000, Category: "Residential Vacancy"},
		{LineItem: "Real Estate Taxes", Total: 50_000, Category: "Property Tax"},
	}
}

func TestCalculateAllReferenceItems(t *testing.T) {
	service := NewCalculationService()
	summary := service.CalculateAll(referenceItems())

	if summary.TotalRevenue != 500_000 {
		t.Errorf("revenue = %f, want 500000", summary.TotalRevenue)
	}
	// Vacancy arrives negative; deductions are normalized to magnitude.
	if summary.TotalDeductions != 20_000 {
		t.Errorf("deductions = %f, want 20000", summary.TotalDeductions)
	}
	if summary.TotalExpenses != 50_000 {
		t.Errorf("expenses = %f, want 50000", summary.TotalExpenses)
	}
	if summary.GrossIncome != 480_000 {
		t.Errorf("gross income = %f, want 480000", summary.GrossIncome)
	}
	if summary.NOI != 430_000 {
		t.Errorf("NOI = %f, want 430000", summary.NOI)
	}
	if summary.LastCalculated.IsZero() {
		t.Error("LastCalculated must be stamped")
	}
}

func TestDeductionsAndExpensesUseMagnitude(t *testing.T) {
	service := NewCalculationService()

	// The same bucket with opposite signs must not cancel out.
	items := []DataItem{
		{LineItem: "Vacancy A", Total: -10_000, Category: "Residential Vacancy"},
		{LineItem: "Vacancy B", Total: 10_000, Category: "Commercial Vacancy"},
		{LineItem: "Taxes", Total: -30_000, Category: "Property Tax"},
	}

	if got := service.CalculateDeductions(items); got != 20_000 {
		t.Errorf("deductions = %f, want 20000", got)
	}
	if got := service.CalculateExpenses(items); got != 30_000 {
		t.Errorf("expenses = %f, want 30000", got)
	}
}

func TestRevenueKeepsSigns(t *testing.T) {
	service := NewCalculationService()

	// Revenue rows keep their stored signs: a negative concession row inside
	// a revenue category reduces the total.
	items := []DataItem{
		{LineItem: "Rent", Total: 100_000, Category: "Residential Rent"},
		{LineItem: "Concessions", Total: -5_000, Category: "Other Income"},
	}
	if got := service.CalculateRevenue(items); got != 95_000 {
		t.Errorf("revenue = %f, want 95000", got)
	}
}

func TestSubtotalAndUnknownRowsExcluded(t *testing.T) {
	service := NewCalculationService()

	items := append(referenceItems(),
		DataItem{LineItem: "Total Income", Total: 480_000, Category: "Subtotal"},
		DataItem{LineItem: "Mortgage Interest", Total: 200_000, Category: "Non-Operating Items"},
		DataItem{LineItem: "Mystery Row", Total: 999_999, Category: "Unknown"},
	)

	summary := service.CalculateAll(items)

	// Pre-aggregated and unclassified rows contribute to nothing; the totals
	// match the plain reference set exactly.
	if summary.TotalRevenue != 500_000 || summary.TotalExpenses != 50_000 || summary.NOI != 430_000 {
		t.Errorf("subtotal/unknown rows leaked into totals: %+v", summary)
	}
}

func TestCalculateAllEmptyItems(t *testing.T) {
	summary := NewCalculationService().CalculateAll(nil)
	if summary.TotalRevenue != 0 || summary.NOI != 0 {
		t.Errorf("empty input must yield zero totals, got %+v", summary)
	}
}

func TestValidateData(t *testing.T) {
	service := NewCalculationService()

	if result := service.ValidateData(referenceItems()); !result.IsValid {
		t.Fatalf("reference items should validate, got %v", result.Errors)
	}

	items := []DataItem{
		{LineItem: "Rent", Total: 100, Category: ""},
		{LineItem: "", Total: 50, Category: "Property Tax"},
		{LineItem: "Broken", Total: math.NaN(), Category: "Insurance"},
	}
	result := service.ValidateData(items)
	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(result.Errors), result.Errors)
	}

	// Messages are row-numbered (1-based) for inline display.
	if !strings.HasPrefix(result.Errors[0], "row 1:") {
		t.Errorf("error should carry the row number, got %q", result.Errors[0])
	}

	// Validation is structural only: an unrecognized category name passes.
	odd := []DataItem{{LineItem: "Rent", Total: 100, Category: "Not A Real Category"}}
	if result := service.ValidateData(odd); !result.IsValid {
		t.Errorf("unrecognized category should pass structural validation, got %v", result.Errors)
	}
}
