package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"advisory-service/internal/event"
	"advisory-service/internal/models"
)

// OutcomeService records harvest feedback into the historical outcome store
// and publishes an event for downstream consumers. Publishing is best-effort;
// a broker failure never fails the request.
type OutcomeService struct {
	store     OutcomeStore
	publisher *event.Publisher
}

func NewOutcomeService(store OutcomeStore, publisher *event.Publisher) *OutcomeService {
	return &OutcomeService{store: store, publisher: publisher}
}

// RecordOutcome folds one harvest sample into the running (crop, region)
// averages and returns the updated record.
func (s *OutcomeService) RecordOutcome(ctx context.Context, req models.RecordOutcomeRequest) (*models.HistoricalOutcome, error) {
	crop := strings.ToLower(strings.TrimSpace(req.Crop))
	region := strings.TrimSpace(req.Region)
	if crop == "" || region == "" {
		return nil, fmt.Errorf("%w: crop and region are required", ErrInvalidInput)
	}
	if req.Yield < 0 {
		return nil, fmt.Errorf("%w: yield must not be negative", ErrInvalidInput)
	}

	outcome, err := s.store.Record(ctx, crop, region, req.Yield, req.Success)
	if err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	slog.Info("Recorded harvest outcome",
		"crop", crop,
		"region", region,
		"avg_yield", outcome.AvgYield,
		"success_rate", outcome.SuccessRate)

	if s.publisher != nil {
		evt := event.NewAdvisoryEvent(event.OutcomeRecorded, map[string]any{
			"crop":         outcome.Crop,
			"region":       outcome.Region,
			"avg_yield":    outcome.AvgYield,
			"success_rate": outcome.SuccessRate,
		})
		if err := s.publisher.PublishEvent(ctx, evt); err != nil {
			slog.Warn("Failed to publish outcome event", "error", err)
		}
	}

	return outcome, nil
}

// GetOutcome returns the running averages for a (crop, region) pair, nil when
// no record exists.
func (s *OutcomeService) GetOutcome(ctx context.Context, crop, region string) (*models.HistoricalOutcome, error) {
	return s.store.Get(ctx, strings.ToLower(strings.TrimSpace(crop)), strings.TrimSpace(region))
}
