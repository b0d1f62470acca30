package repository

import (
	"context"
	"sync"
	"time"

	"advisory-service/internal/models"
)

// MemoryOutcomeStore is an in-process outcome store used when no database is
// configured, and in tests. A single mutex serializes the read-modify-write
// of every record, which is sufficient at this table's size.
type MemoryOutcomeStore struct {
	mu       sync.Mutex
	outcomes map[string]models.HistoricalOutcome
}

// NewMemoryOutcomeStore builds a store pre-populated with the given records.
func NewMemoryOutcomeStore(seed []models.HistoricalOutcome) *MemoryOutcomeStore {
	outcomes := make(map[string]models.HistoricalOutcome, len(seed))
	for _, o := range seed {
		outcomes[outcomeKey(o.Crop, o.Region)] = o
	}
	return &MemoryOutcomeStore{outcomes: outcomes}
}

func outcomeKey(crop, region string) string {
	return crop + "|" + region
}

func (s *MemoryOutcomeStore) Get(ctx context.Context, crop, region string) (*models.HistoricalOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, ok := s.outcomes[outcomeKey(crop, region)]
	if !ok {
		return nil, nil
	}
	return &outcome, nil
}

func (s *MemoryOutcomeStore) Record(ctx context.Context, crop, region string, yieldValue float64, success bool) (*models.HistoricalOutcome, error) {
	successSample := 0.0
	if success {
		successSample = 1.0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := outcomeKey(crop, region)
	outcome, ok := s.outcomes[key]
	if !ok {
		outcome = models.HistoricalOutcome{
			Crop:        crop,
			Region:      region,
			AvgYield:    yieldValue,
			SuccessRate: successSample,
		}
	} else {
		outcome.AvgYield = (outcome.AvgYield + yieldValue) / 2
		outcome.SuccessRate = (outcome.SuccessRate + successSample) / 2
	}
	outcome.UpdatedAt = time.Now()

	s.outcomes[key] = outcome
	return &outcome, nil
}
