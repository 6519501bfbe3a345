package underwriting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cre_underwriting/pkg/core/underwriting"
)

const referenceBody = `{
	"deal_name": "Maple Street Apartments",
	"year1_revenue": 1000000,
	"year1_expenses": 400000,
	"assumptions": {
		"purchase_price": 8000000,
		"revenue_growth": 0.03,
		"expense_growth": 0.025,
		"hold_period_years": 5,
		"interest_rate": 0.065,
		"loan_term_years": 30,
		"exit_cap_rate": 0.06,
		"ltv_ratio": 0.75
	}
}`

func TestHandleCalculate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/underwriting/calculate", strings.NewReader(referenceBody))
	rec := httptest.NewRecorder()

	HandleCalculate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var analysis underwriting.Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.Year1NOI != 600_000 {
		t.Errorf("year1_noi = %f, want 600000", analysis.Year1NOI)
	}
	if analysis.DebtService.LoanAmount != 6_000_000 {
		t.Errorf("loan_amount = %f, want 6000000", analysis.DebtService.LoanAmount)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
}

func TestHandleCalculateRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"year1_revenue": `},
		{"missing revenue", `{"year1_expenses": 400000, "assumptions": {"purchase_price": 8000000}}`},
		{"engine rejection", strings.Replace(referenceBody, `"exit_cap_rate": 0.06`, `"exit_cap_rate": 0`, 1)},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/underwriting/calculate", strings.NewReader(c.body))
		rec := httptest.NewRecorder()
		HandleCalculate(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", c.name, rec.Code)
		}
	}
}

func TestHandleCalculateMethodAndPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/underwriting/calculate", nil)
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", rec.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/underwriting/calculate", nil)
	rec = httptest.NewRecorder()
	HandleCalculate(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q, want *", got)
	}
}

func TestHandleCustomLoan(t *testing.T) {
	body := strings.Replace(referenceBody, `"year1_revenue"`, `"loan_amount": 5000000, "year1_revenue"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/underwriting/custom-loan", strings.NewReader(body))
	rec := httptest.NewRecorder()

	HandleCustomLoan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var analysis underwriting.Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.DebtService.LoanAmount != 5_000_000 {
		t.Errorf("loan_amount = %f, want 5000000", analysis.DebtService.LoanAmount)
	}
}

func TestCacheKeysDivergeBetweenCalculateVariants(t *testing.T) {
	// An all-cash custom-loan run carries loan_amount=0, which omitempty drops
	// from the marshaled payload, so the two variants hash identical bytes.
	// The keys must still differ: the analyses they cache do not (equity of
	// the full price versus price minus loan).
	var req CalculateRequest
	if err := json.Unmarshal([]byte(referenceBody), &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	req.LoanAmount = 0

	plain := cacheKeyFor(&req, false)
	custom := cacheKeyFor(&req, true)
	if plain == custom {
		t.Errorf("calculate and custom-loan share cache key %q", plain)
	}

	// Same variant, same payload: the key must stay stable.
	if again := cacheKeyFor(&req, true); again != custom {
		t.Errorf("custom-loan key not deterministic: %q vs %q", custom, again)
	}
}

func TestHandleDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/underwriting/defaults", nil)
	rec := httptest.NewRecorder()

	HandleDefaults(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp DefaultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Assumptions.HoldPeriodYears != 5 {
		t.Errorf("default hold period = %d, want 5", resp.Assumptions.HoldPeriodYears)
	}
	if len(resp.HoldPeriods) == 0 || len(resp.LTVRatios) == 0 {
		t.Error("dropdown options missing")
	}
}

func TestHandleExport(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/underwriting/export", strings.NewReader(referenceBody))
	rec := httptest.NewRecorder()

	HandleExport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", got)
	}
	body := rec.Body.Bytes()
	if len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("export body does not look like an xlsx stream")
	}
}
