package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cre_underwriting/pkg/core/t12"
	"cre_underwriting/pkg/core/underwriting"
)

// DealRecord is the stored snapshot for one deal: the inputs that produced
// the analysis plus the analysis itself, so a reload can re-render without
// recalculating.
type DealRecord struct {
	Year1Revenue  float64                  `json:"year1_revenue"`
	Year1Expenses float64                  `json:"year1_expenses"`
	Assumptions   underwriting.Assumptions `json:"assumptions"`
	Analysis      *underwriting.Analysis   `json:"analysis"`
	T12Summary    *t12.FinancialSummary    `json:"t12_summary,omitempty"`
}

// DealRepo handles storage of deal underwriting snapshots.
type DealRepo struct{}

// NewDealRepo creates a new repository instance.
func NewDealRepo() *DealRepo {
	return &DealRepo{}
}

// Save upserts the record for a deal id as a single JSONB blob.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS deal_underwriting (
//	  deal_id UUID PRIMARY KEY,
//	  record_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (r *DealRepo) Save(ctx context.Context, dealID uuid.UUID, record *DealRecord) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal deal record: %w", err)
	}

	query := `
		INSERT INTO deal_underwriting (deal_id, record_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (deal_id)
		DO UPDATE SET
			record_json = EXCLUDED.record_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, dealID, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save deal underwriting: %w", err)
	}
	return nil
}

// Load retrieves the stored record for a deal.
func (r *DealRepo) Load(ctx context.Context, dealID uuid.UUID) (*DealRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT record_json FROM deal_underwriting WHERE deal_id = $1`, dealID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no underwriting found for deal %s", dealID)
		}
		return nil, fmt.Errorf("failed to load deal underwriting: %w", err)
	}

	var record DealRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deal record: %w", err)
	}
	return &record, nil
}
