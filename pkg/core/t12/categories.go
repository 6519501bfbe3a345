package t12

import "sort"

// CategoryType determines how a category's line items enter the arithmetic.
type CategoryType string

const (
	TypeRevenue   CategoryType = "revenue"
	TypeDeduction CategoryType = "deduction"
	TypeExpense   CategoryType = "expense"
	// Subtotal rows are pre-aggregated display rows; summing them would
	// double count, so they are excluded from every total.
	TypeSubtotal CategoryType = "subtotal"
)

// UnknownCategory is the fallback assigned by upstream classification when a
// line item matched nothing. Unknown items contribute to no aggregate.
const UnknownCategory = "Unknown"

// CategoryInfo is the display and typing metadata for one category.
type CategoryInfo struct {
	Label string       `json:"label"`
	Color string       `json:"color"`
	Icon  string       `json:"icon"`
	Type  CategoryType `json:"type"`
}

// Categories is the single source of truth for T12 classification. Keys are
// the category names emitted by upstream extraction.
var Categories = map[string]CategoryInfo{
	// Revenue
	"Residential Rent":          {Label: "Residential Rent", Color: "#16a34a", Icon: "home", Type: TypeRevenue},
	"Commercial Rent":           {Label: "Commercial Rent", Color: "#15803d", Icon: "store", Type: TypeRevenue},
	"Parking Revenue":           {Label: "Parking Revenue", Color: "#22c55e", Icon: "car", Type: TypeRevenue},
	"Renovated Apartments":      {Label: "Renovated Apartments", Color: "#4ade80", Icon: "hammer", Type: TypeRevenue},
	"Improved Apartment Income": {Label: "Improved Apartment Income", Color: "#86efac", Icon: "trending-up", Type: TypeRevenue},
	"Other Income":              {Label: "Other Income", Color: "#bbf7d0", Icon: "plus-circle", Type: TypeRevenue},

	// Deductions
	"Residential Vacancy": {Label: "Residential Vacancy", Color: "#f97316", Icon: "door-open", Type: TypeDeduction},
	"Commercial Vacancy":  {Label: "Commercial Vacancy", Color: "#fb923c", Icon: "building", Type: TypeDeduction},
	"Parking Vacancy":     {Label: "Parking Vacancy", Color: "#fdba74", Icon: "circle-parking-off", Type: TypeDeduction},
	"Bad Debt":            {Label: "Bad Debt", Color: "#ea580c", Icon: "alert-triangle", Type: TypeDeduction},

	// Expenses
	"Property Tax":        {Label: "Property Tax", Color: "#dc2626", Icon: "landmark", Type: TypeExpense},
	"Insurance":           {Label: "Insurance", Color: "#ef4444", Icon: "shield", Type: TypeExpense},
	"Electricity":         {Label: "Electricity", Color: "#f87171", Icon: "zap", Type: TypeExpense},
	"Water":               {Label: "Water", Color: "#60a5fa", Icon: "droplet", Type: TypeExpense},
	"Gas":                 {Label: "Gas", Color: "#fbbf24", Icon: "flame", Type: TypeExpense},
	"Service Contracts":   {Label: "Service Contracts", Color: "#a78bfa", Icon: "file-text", Type: TypeExpense},
	"Professional Fees":   {Label: "Professional Fees", Color: "#c084fc", Icon: "briefcase", Type: TypeExpense},
	"R&M":                 {Label: "Repairs & Maintenance", Color: "#f472b6", Icon: "wrench", Type: TypeExpense},
	"Leasing & Marketing": {Label: "Leasing & Marketing", Color: "#38bdf8", Icon: "megaphone", Type: TypeExpense},
	"Turnover":            {Label: "Turnover", Color: "#818cf8", Icon: "refresh-cw", Type: TypeExpense},
	"G&A":                 {Label: "General & Administrative", Color: "#94a3b8", Icon: "clipboard", Type: TypeExpense},
	"Payroll":             {Label: "Payroll", Color: "#64748b", Icon: "users", Type: TypeExpense},
	"Management":          {Label: "Management", Color: "#475569", Icon: "user-cog", Type: TypeExpense},
	"Asset Management":    {Label: "Asset Management", Color: "#334155", Icon: "bar-chart", Type: TypeExpense},

	// Subtotals (display only)
	"Subtotal":            {Label: "Subtotal", Color: "#0f172a", Icon: "sigma", Type: TypeSubtotal},
	"Non-Operating Items": {Label: "Non-Operating Items", Color: "#1e293b", Icon: "minus-circle", Type: TypeSubtotal},
}

// CategoryGroup is one named group of categories for the UI picker.
type CategoryGroup struct {
	Name       string         `json:"name"`
	Type       CategoryType   `json:"type"`
	Categories []CategoryInfo `json:"categories"`
}

// CategoryTypeOf returns the bucket for a category name; the second return
// is false for unrecognized categories (including "Unknown").
func CategoryTypeOf(category string) (CategoryType, bool) {
	info, ok := Categories[category]
	if !ok {
		return "", false
	}
	return info.Type, true
}

// IsValidCategory reports whether upstream classification may emit this
// category. "Unknown" is valid as the explicit fallback.
func IsValidCategory(category string) bool {
	if category == UnknownCategory {
		return true
	}
	_, ok := Categories[category]
	return ok
}

// GroupedCategories returns the table arranged into its four named groups,
// ordered for display.
func GroupedCategories() []CategoryGroup {
	groups := []CategoryGroup{
		{Name: "Revenue", Type: TypeRevenue},
		{Name: "Deductions", Type: TypeDeduction},
		{Name: "Expenses", Type: TypeExpense},
		{Name: "Subtotals", Type: TypeSubtotal},
	}
	for _, info := range Categories {
		for i := range groups {
			if groups[i].Type == info.Type {
				groups[i].Categories = append(groups[i].Categories, info)
			}
		}
	}
	// Map iteration order is random; sort for a stable UI.
	for i := range groups {
		sort.Slice(groups[i].Categories, func(a, b int) bool {
			return groups[i].Categories[a].Label < groups[i].Categories[b].Label
		})
	}
	return groups
}
