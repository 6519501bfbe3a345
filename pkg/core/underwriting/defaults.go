package underwriting

// DefaultAssumptions seeds a new deal's assumption editor.
var DefaultAssumptions = Assumptions{
	PurchasePrice:   0,
	RevenueGrowth:   0.03,
	ExpenseGrowth:   0.025,
	HoldPeriodYears: 5,
	InterestRate:    0.065,
	LoanTermYears:   30,
	ExitCapRate:     0.06,
	LTVRatio:        0.75,
}

// Option holds one dropdown entry for the assumption editor. Pure data, no
// behavior.
type Option struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var HoldPeriodOptions = []Option{
	{Label: "3 Years", Value: 3},
	{Label: "5 Years", Value: 5},
	{Label: "7 Years", Value: 7},
	{Label: "10 Years", Value: 10},
}

var InterestRateOptions = []Option{
	{Label: "5.0%", Value: 0.05},
	{Label: "5.5%", Value: 0.055},
	{Label: "6.0%", Value: 0.06},
	{Label: "6.5%", Value: 0.065},
	{Label: "7.0%", Value: 0.07},
	{Label: "7.5%", Value: 0.075},
	{Label: "8.0%", Value: 0.08},
}

var ExitCapRateOptions = []Option{
	{Label: "4.5%", Value: 0.045},
	{Label: "5.0%", Value: 0.05},
	{Label: "5.5%", Value: 0.055},
	{Label: "6.0%", Value: 0.06},
	{Label: "6.5%", Value: 0.065},
	{Label: "7.0%", Value: 0.07},
}

var GrowthRateOptions = []Option{
	{Label: "1.0%", Value: 0.01},
	{Label: "1.5%", Value: 0.015},
	{Label: "2.0%", Value: 0.02},
	{Label: "2.5%", Value: 0.025},
	{Label: "3.0%", Value: 0.03},
	{Label: "3.5%", Value: 0.035},
	{Label: "4.0%", Value: 0.04},
}

var LTVRatioOptions = []Option{
	{Label: "60%", Value: 0.60},
	{Label: "65%", Value: 0.65},
	{Label: "70%", Value: 0.70},
	{Label: "75%", Value: 0.75},
	{Label: "80%", Value: 0.80},
}
