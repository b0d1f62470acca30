package repository

import (
	"context"
	"fmt"
	"time"

	"advisory-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PredictionRepository logs served sowing predictions for a user's history.
type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, record *models.PredictionRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()

	query := `
		INSERT INTO prediction_log (
			id, user_id, crop, region, soil_type,
			request_month, suitability_score, season, created_at
		) VALUES (
			:id, :user_id, :crop, :region, :soil_type,
			:request_month, :suitability_score, :season, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.PredictionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, user_id, crop, region, soil_type,
		       request_month, suitability_score, season, created_at
		FROM prediction_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var records []models.PredictionRecord
	if err := r.db.SelectContext(ctx, &records, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to query prediction history: %w", err)
	}
	return records, nil
}
