package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"advisory-service/internal/models"

	"github.com/jmoiron/sqlx"
)

// OutcomeRepository stores historical outcomes in Postgres. The incremental
// averaging happens inside a single upsert, so concurrent updates to the same
// (crop, region) row are serialized by the database.
type OutcomeRepository struct {
	db *sqlx.DB
}

func NewOutcomeRepository(db *sqlx.DB) *OutcomeRepository {
	return &OutcomeRepository{db: db}
}

func (r *OutcomeRepository) Get(ctx context.Context, crop, region string) (*models.HistoricalOutcome, error) {
	query := `
		SELECT crop, region, avg_yield, success_rate, updated_at
		FROM historical_outcome
		WHERE crop = $1 AND region = $2
	`

	var outcome models.HistoricalOutcome
	err := r.db.GetContext(ctx, &outcome, query, crop, region)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query outcome: %w", err)
	}
	return &outcome, nil
}

// Record folds a sample into the stored averages: the new average is the
// midpoint of the old average and the sample. A first sample seeds the row.
func (r *OutcomeRepository) Record(ctx context.Context, crop, region string, yieldValue float64, success bool) (*models.HistoricalOutcome, error) {
	successSample := 0.0
	if success {
		successSample = 1.0
	}

	query := `
		INSERT INTO historical_outcome (crop, region, avg_yield, success_rate, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (crop, region) DO UPDATE SET
			avg_yield    = (historical_outcome.avg_yield + EXCLUDED.avg_yield) / 2,
			success_rate = (historical_outcome.success_rate + EXCLUDED.success_rate) / 2,
			updated_at   = now()
		RETURNING crop, region, avg_yield, success_rate, updated_at
	`

	var outcome models.HistoricalOutcome
	err := r.db.GetContext(ctx, &outcome, query, crop, region, yieldValue, successSample)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert outcome: %w", err)
	}
	return &outcome, nil
}
