// Package t12 classifies trailing-twelve-month financial line items into
// revenue / deduction / expense / subtotal buckets and derives the summary
// totals that feed the underwriting engine's inputs.
package t12

import (
	"encoding/json"
	"time"
)

// DataItem is one categorized T12 line item. Upstream extraction attaches
// arbitrary extra fields (per-month columns, source page refs); those are
// carried verbatim in Extra and never read by the categorization logic.
type DataItem struct {
	LineItem string  `json:"line_item"`
	Total    float64 `json:"total"`
	Category string  `json:"category"`

	Extra map[string]json.RawMessage `json:"-"`
}

// FinancialSummary is the aggregate view over a categorized item set.
type FinancialSummary struct {
	TotalRevenue    float64   `json:"total_revenue"`
	TotalDeductions float64   `json:"total_deductions"`
	TotalExpenses   float64   `json:"total_expenses"`
	GrossIncome     float64   `json:"gross_income"`
	NOI             float64   `json:"noi"`
	LastCalculated  time.Time `json:"last_calculated"`
}

// ValidationResult reports structural problems row by row so the UI can
// render per-row messages. It never carries a Go error.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// UnmarshalJSON decodes the three required fields and stashes every other key
// untouched in Extra.
func (d *DataItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type known struct {
		LineItem string  `json:"line_item"`
		Total    float64 `json:"total"`
		Category string  `json:"category"`
	}
	var k known
	if err := json.Unmarshal(data, &k); err != nil {
		return err
	}
	d.LineItem = k.LineItem
	d.Total = k.Total
	d.Category = k.Category

	delete(raw, "line_item")
	delete(raw, "total")
	delete(raw, "category")
	if len(raw) > 0 {
		d.Extra = raw
	} else {
		d.Extra = nil
	}
	return nil
}

// MarshalJSON re-emits the required fields alongside the passthrough ones.
func (d DataItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Extra)+3)
	for key, val := range d.Extra {
		out[key] = val
	}
	out["line_item"] = d.LineItem
	out["total"] = d.Total
	out["category"] = d.Category
	return json.Marshal(out)
}
