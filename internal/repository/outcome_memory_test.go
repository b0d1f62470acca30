package repository

import (
	"context"
	"sync"
	"testing"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOutcomeStore_GetMissing(t *testing.T) {
	store := NewMemoryOutcomeStore(nil)

	outcome, err := store.Get(context.Background(), "rice", "Punjab")
	require.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestMemoryOutcomeStore_FirstRecordTakesSampleValues(t *testing.T) {
	store := NewMemoryOutcomeStore(nil)

	outcome, err := store.Record(context.Background(), "rice", "Punjab", 4.0, true)
	require.NoError(t, err)
	assert.Equal(t, 4.0, outcome.AvgYield)
	assert.Equal(t, 1.0, outcome.SuccessRate)
	assert.False(t, outcome.UpdatedAt.IsZero())
}

func TestMemoryOutcomeStore_HalvingUpdate(t *testing.T) {
	store := NewMemoryOutcomeStore([]models.HistoricalOutcome{
		{Crop: "rice", Region: "Punjab", AvgYield: 3.8, SuccessRate: 0.78},
	})

	outcome, err := store.Record(context.Background(), "rice", "Punjab", 4.2, false)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, outcome.AvgYield, 1e-9)
	assert.InDelta(t, 0.39, outcome.SuccessRate, 1e-9)

	stored, err := store.Get(context.Background(), "rice", "Punjab")
	require.NoError(t, err)
	assert.Equal(t, outcome.AvgYield, stored.AvgYield)
}

func TestMemoryOutcomeStore_SuccessRateStaysWithinUnitInterval(t *testing.T) {
	store := NewMemoryOutcomeStore(reference.SeedOutcomes())

	for i := 0; i < 50; i++ {
		outcome, err := store.Record(context.Background(), "wheat", "Punjab", 28, true)
		require.NoError(t, err)
		assert.LessOrEqual(t, outcome.SuccessRate, 1.0)
		assert.GreaterOrEqual(t, outcome.SuccessRate, 0.0)
	}

	// Repeated successes converge toward 1 without overshooting
	outcome, err := store.Get(context.Background(), "wheat", "Punjab")
	require.NoError(t, err)
	assert.Greater(t, outcome.SuccessRate, 0.99)
	assert.LessOrEqual(t, outcome.SuccessRate, 1.0)
}

func TestMemoryOutcomeStore_KeysAreScopedPerRegion(t *testing.T) {
	store := NewMemoryOutcomeStore(reference.SeedOutcomes())

	_, err := store.Record(context.Background(), "rice", "Punjab", 10, true)
	require.NoError(t, err)

	untouched, err := store.Get(context.Background(), "rice", "Tamil Nadu")
	require.NoError(t, err)
	assert.Equal(t, 4.2, untouched.AvgYield)
	assert.Equal(t, 0.85, untouched.SuccessRate)
}

func TestMemoryOutcomeStore_ConcurrentRecords(t *testing.T) {
	store := NewMemoryOutcomeStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Record(context.Background(), "maize", "Karnataka", 30, true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	outcome, err := store.Get(context.Background(), "maize", "Karnataka")
	require.NoError(t, err)
	assert.Equal(t, 30.0, outcome.AvgYield)
	assert.LessOrEqual(t, outcome.SuccessRate, 1.0)
}
