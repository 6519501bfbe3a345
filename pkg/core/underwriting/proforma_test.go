package underwriting

import "testing"

func TestCalculateExitAnalysis(t *testing.T) {
	a := referenceAssumptions()
	projections := ProjectNOI(1_000_000, 400_000, a)
	debt := CalculateDebtService(a)

	exit := CalculateExitAnalysis(projections, a, debt)

	if exit.ExitYear != 6 {
		t.Errorf("exit year = %d, want 6", exit.ExitYear)
	}
	// Year 6 NOI 706,710.78 / 0.06 = 11,778,513.00.
	if !approx(exit.ExitValue, 11_778_513) {
		t.Errorf("exit value = %f, want 11778513", exit.ExitValue)
	}
	// Sale at year 6 of a 30-year interest-only loan: full principal due.
	if exit.RemainingDebt != 6_000_000 {
		t.Errorf("remaining debt = %f, want 6000000", exit.RemainingDebt)
	}
	if !approx(exit.NetSaleProceeds, 5_778_513) {
		t.Errorf("net sale proceeds = %f, want 5778513", exit.NetSaleProceeds)
	}
}

func TestCalculateExitAnalysisOutOfRange(t *testing.T) {
	a := referenceAssumptions()
	debt := CalculateDebtService(a)

	// No projections: the exit values off a zero NOI instead of panicking.
	exit := CalculateExitAnalysis(nil, a, debt)
	if exit.ExitValue != 0 {
		t.Errorf("exit value = %f, want 0", exit.ExitValue)
	}
	if !approx(exit.NetSaleProceeds, -6_000_000) {
		t.Errorf("net sale proceeds = %f, want -6000000", exit.NetSaleProceeds)
	}
}

func TestBuildProFormaCashFlows(t *testing.T) {
	a := referenceAssumptions()
	projections := ProjectNOI(1_000_000, 400_000, a)
	debt := CalculateDebtService(a)
	exit := CalculateExitAnalysis(projections, a, debt)

	flows := BuildProFormaCashFlows(projections, debt, &exit)
	if len(flows) != 6 {
		t.Fatalf("expected 6 cash flow rows, got %d", len(flows))
	}

	// Years 1-5 are NOI minus debt service.
	wantOperating := []float64{210_000, 230_000, 250_650, 271_970.75, 293_983.65}
	for i, w := range wantOperating {
		if !approx(flows[i].CashFlow, w) {
			t.Errorf("year %d cash flow = %f, want %f", i+1, flows[i].CashFlow, w)
		}
	}

	// Terminal year embeds the net sale proceeds:
	// (706,710.78 - 390,000) + 5,778,513 = 6,095,223.78.
	if !approx(flows[5].CashFlow, 6_095_223.78) {
		t.Errorf("terminal cash flow = %f, want 6095223.78", flows[5].CashFlow)
	}
	if !approx(flows[5].CumulativeCashFlow, 7_351_828.18) {
		t.Errorf("final cumulative = %f, want 7351828.18", flows[5].CumulativeCashFlow)
	}
}

func TestBuildProFormaCashFlowsWithoutExit(t *testing.T) {
	a := referenceAssumptions()
	projections := ProjectNOI(1_000_000, 400_000, a)
	debt := CalculateDebtService(a)

	flows := BuildProFormaCashFlows(projections, debt, nil)

	// No exit supplied: the terminal year is operating cash flow only.
	if !approx(flows[5].CashFlow, 316_710.78) {
		t.Errorf("terminal cash flow without exit = %f, want 316710.78", flows[5].CashFlow)
	}
}

func TestCalculateInvestmentMetrics(t *testing.T) {
	a := referenceAssumptions()
	projections := ProjectNOI(1_000_000, 400_000, a)
	debt := CalculateDebtService(a)
	exit := CalculateExitAnalysis(projections, a, debt)
	flows := BuildProFormaCashFlows(projections, debt, &exit)

	metrics := CalculateInvestmentMetrics(a.PurchasePrice, debt, flows)

	if metrics.TotalInvestment != 2_000_000 {
		t.Errorf("total investment = %f, want 2000000", metrics.TotalInvestment)
	}
	if !approx(metrics.TotalReturn, 7_351_828.18) {
		t.Errorf("total return = %f, want 7351828.18", metrics.TotalReturn)
	}
	// Profit must tie out against the other two totals exactly.
	if !approx(metrics.TotalProfit, metrics.TotalReturn-metrics.TotalInvestment) {
		t.Errorf("profit %f != return %f - investment %f",
			metrics.TotalProfit, metrics.TotalReturn, metrics.TotalInvestment)
	}
}

func TestCalculateKPIs(t *testing.T) {
	a := referenceAssumptions()
	projections := ProjectNOI(1_000_000, 400_000, a)
	debt := CalculateDebtService(a)
	exit := CalculateExitAnalysis(projections, a, debt)
	flows := BuildProFormaCashFlows(projections, debt, &exit)
	metrics := CalculateInvestmentMetrics(a.PurchasePrice, debt, flows)

	kpi := CalculateKPIs(a.PurchasePrice, projections, debt, metrics)

	if kpi.Year1NOI != 600_000 {
		t.Errorf("year 1 NOI = %f, want 600000", kpi.Year1NOI)
	}
	// 600,000 / 8,000,000.
	if kpi.CapRate != 0.075 {
		t.Errorf("cap rate = %v, want 0.075", kpi.CapRate)
	}
	// (600,000 - 390,000) / 2,000,000.
	if kpi.CashOnCashReturn != 0.105 {
		t.Errorf("cash-on-cash = %v, want 0.105", kpi.CashOnCashReturn)
	}
	// (706,710.78 - 600,000) / 600,000 = 0.177851..., 4 decimals.
	if kpi.NOIGrowthRate != 0.1779 {
		t.Errorf("NOI growth rate = %v, want 0.1779", kpi.NOIGrowthRate)
	}

	wantDSCR := []float64{1.54, 1.59, 1.64, 1.70, 1.75, 1.81}
	if len(kpi.DSCRByYear) != len(wantDSCR) {
		t.Fatalf("expected %d DSCR entries, got %d", len(wantDSCR), len(kpi.DSCRByYear))
	}
	for i, w := range wantDSCR {
		if kpi.DSCRByYear[i].DSCR != w {
			t.Errorf("year %d DSCR = %v, want %v", i+1, kpi.DSCRByYear[i].DSCR, w)
		}
		if kpi.DSCRByYear[i].Year != projections[i].Year {
			t.Errorf("DSCR entry %d year = %d, want %d", i, kpi.DSCRByYear[i].Year, projections[i].Year)
		}
	}
	if kpi.AverageDSCR != 1.67 {
		t.Errorf("average DSCR = %v, want 1.67", kpi.AverageDSCR)
	}
	if kpi.MinimumDSCR != 1.54 {
		t.Errorf("minimum DSCR = %v, want 1.54", kpi.MinimumDSCR)
	}
}

func TestCalculateKPIsEmptyProjections(t *testing.T) {
	kpi := CalculateKPIs(8_000_000, nil, DebtServiceCalculation{}, InvestmentMetrics{})
	if kpi.Year1NOI != 0 || kpi.CapRate != 0 || len(kpi.DSCRByYear) != 0 {
		t.Errorf("empty projections must yield zero KPIs, got %+v", kpi)
	}
}
