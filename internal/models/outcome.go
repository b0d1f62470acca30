package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// HISTORICAL OUTCOMES & PREDICTION LOG
// ============================================================================

// HistoricalOutcome is the running average of yield and success rate for a
// (crop, region) pair. Updated by incremental averaging: each sample moves
// the stored average halfway toward the sample value.
type HistoricalOutcome struct {
	Crop        string    `json:"crop" db:"crop"`
	Region      string    `json:"region" db:"region"`
	AvgYield    float64   `json:"avg_yield" db:"avg_yield"`
	SuccessRate float64   `json:"success_rate" db:"success_rate"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PredictionRecord is one logged sowing prediction for a user's history.
type PredictionRecord struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	Crop             string    `json:"crop" db:"crop"`
	Region           string    `json:"region" db:"region"`
	SoilType         string    `json:"soil_type" db:"soil_type"`
	RequestMonth     int       `json:"request_month" db:"request_month"`
	SuitabilityScore float64   `json:"suitability_score" db:"suitability_score"`
	Season           string    `json:"season" db:"season"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
