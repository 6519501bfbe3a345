// Package underwriting exposes the calculation engine over HTTP for the deal
// dashboard: calculate, custom-loan calculate, defaults, and workbook export.
package underwriting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"cre_underwriting/pkg/core/cache"
	"cre_underwriting/pkg/core/config"
	"cre_underwriting/pkg/core/excel"
	"cre_underwriting/pkg/core/store"
	"cre_underwriting/pkg/core/underwriting"
)

var (
	validate = validator.New()
	dealRepo *store.DealRepo
	cacheTTL time.Duration
)

// InitHandler wires the handler's persistence and cache settings.
func InitHandler(repo *store.DealRepo, ttl time.Duration) {
	dealRepo = repo
	cacheTTL = ttl
}

// CalculateRequest is the payload for both calculate endpoints. LoanAmount is
// only read by the custom-loan variant.
type CalculateRequest struct {
	DealID        string                   `json:"deal_id,omitempty"`
	DealName      string                   `json:"deal_name,omitempty"`
	Year1Revenue  float64                  `json:"year1_revenue" validate:"required"`
	Year1Expenses float64                  `json:"year1_expenses" validate:"gte=0"`
	Assumptions   underwriting.Assumptions `json:"assumptions" validate:"required"`
	LoanAmount    float64                  `json:"loan_amount,omitempty"`
}

// DefaultsResponse feeds the assumption editor's initial state and dropdowns.
type DefaultsResponse struct {
	Assumptions   underwriting.Assumptions `json:"assumptions"`
	HoldPeriods   []underwriting.Option    `json:"hold_periods"`
	InterestRates []underwriting.Option    `json:"interest_rates"`
	ExitCapRates  []underwriting.Option    `json:"exit_cap_rates"`
	GrowthRates   []underwriting.Option    `json:"growth_rates"`
	LTVRatios     []underwriting.Option    `json:"ltv_ratios"`
}

// HandleCalculate computes a full underwriting analysis.
func HandleCalculate(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, false)
}

// HandleCustomLoan computes the analysis with a caller-supplied loan amount.
func HandleCustomLoan(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, true)
}

func handleCalculation(w http.ResponseWriter, r *http.Request, customLoan bool) {
	if done := applyCORS(w, r, http.MethodPost); done {
		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	log := config.Logger()
	ctx := r.Context()

	// Identical inputs hit the cache; the engine is pure, so a cached result
	// is exact.
	cacheKey := cacheKeyFor(req, customLoan)
	var analysis *underwriting.Analysis
	if hit, err := cache.GetObject(ctx, cacheKey, &analysis); err == nil && hit {
		log.Debugf("underwriting cache hit for deal %q", req.DealID)
		respondJSON(w, analysis)
		return
	}

	var (
		analysisResult *underwriting.Analysis
		err            error
	)
	if customLoan {
		analysisResult, err = underwriting.CalculateWithCustomLoan(req.Year1Revenue, req.Year1Expenses, req.Assumptions, req.LoanAmount)
	} else {
		analysisResult, err = underwriting.Calculate(req.Year1Revenue, req.Year1Expenses, req.Assumptions)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := cache.SetObject(ctx, cacheKey, analysisResult, cacheTTL); err != nil {
		log.Warnf("failed to cache analysis: %v", err)
	}

	persistIfRequested(ctx, req, analysisResult)
	respondJSON(w, analysisResult)
}

// HandleDefaults serves the default assumption set and the editor dropdowns.
func HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r, http.MethodGet); done {
		return
	}

	respondJSON(w, DefaultsResponse{
		Assumptions:   underwriting.DefaultAssumptions,
		HoldPeriods:   underwriting.HoldPeriodOptions,
		InterestRates: underwriting.InterestRateOptions,
		ExitCapRates:  underwriting.ExitCapRateOptions,
		GrowthRates:   underwriting.GrowthRateOptions,
		LTVRatios:     underwriting.LTVRatioOptions,
	})
}

// HandleExport computes the analysis and streams it as an xlsx attachment.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r, http.MethodPost); done {
		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	analysis, err := underwriting.Calculate(req.Year1Revenue, req.Year1Expenses, req.Assumptions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := req.DealName
	if name == "" {
		name = "Underwriting Model"
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="underwriting.xlsx"`)
	if err := excel.WriteWorkbook(w, name, analysis, req.Assumptions); err != nil {
		config.Logger().Errorf("failed to write workbook: %v", err)
	}
}

// cacheKeyFor namespaces the two calculate variants. loan_amount is omitempty,
// so an all-cash custom-loan request marshals identically to a plain calculate
// request; without the variant in the key one endpoint would serve the other's
// cached analysis.
func cacheKeyFor(req *CalculateRequest, customLoan bool) string {
	if customLoan {
		return cache.Key("underwriting:custom", req)
	}
	return cache.Key("underwriting", req)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*CalculateRequest, bool) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func persistIfRequested(ctx context.Context, req *CalculateRequest, analysis *underwriting.Analysis) {
	if req.DealID == "" || dealRepo == nil || store.GetPool() == nil {
		return
	}

	log := config.Logger()
	dealID, err := uuid.Parse(req.DealID)
	if err != nil {
		log.Warnf("skipping persistence, bad deal id %q: %v", req.DealID, err)
		return
	}

	record := &store.DealRecord{
		Year1Revenue:  req.Year1Revenue,
		Year1Expenses: req.Year1Expenses,
		Assumptions:   req.Assumptions,
		Analysis:      analysis,
	}
	if err := dealRepo.Save(ctx, dealID, record); err != nil {
		log.Warnf("failed to persist underwriting for deal %s: %v", dealID, err)
	}
}

// applyCORS sets the CORS headers and handles preflight. Returns true when
// the request is already answered.
func applyCORS(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return true
	}
	return false
}

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
