// Package t12 exposes the categorization service: summary totals, row
// validation, and the category table for UI pickers.
package t12

import (
	"encoding/json"
	"net/http"

	"cre_underwriting/pkg/core/config"
	"cre_underwriting/pkg/core/t12"
)

var service = t12.NewCalculationService()

// SummaryRequest carries the categorized line items.
type SummaryRequest struct {
	Items []t12.DataItem `json:"items"`
}

// SummaryResponse pairs the totals with the validation outcome so the UI can
// show both in one round trip.
type SummaryResponse struct {
	Summary    t12.FinancialSummary `json:"summary"`
	Validation t12.ValidationResult `json:"validation"`
}

// HandleSummary validates the rows and returns the aggregate totals.
// Structural problems yield 422 with the per-row error list; the UI renders
// them inline.
func HandleSummary(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r, http.MethodPost); done {
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	validation := service.ValidateData(req.Items)
	if !validation.IsValid {
		config.Logger().Debugf("t12 summary rejected: %d structural errors", len(validation.Errors))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(SummaryResponse{Validation: validation})
		return
	}

	respondJSON(w, SummaryResponse{
		Summary:    service.CalculateAll(req.Items),
		Validation: validation,
	})
}

// HandleValidate runs only the structural checks.
func HandleValidate(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r, http.MethodPost); done {
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, service.ValidateData(req.Items))
}

// HandleCategories serves the category table grouped for display.
func HandleCategories(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r, http.MethodGet); done {
		return
	}
	respondJSON(w, t12.GroupedCategories())
}

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
