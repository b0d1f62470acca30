package services

import (
	"context"
	"errors"
	"testing"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"
	"advisory-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestPredictor(strategy models.ScoringStrategy) *PredictorService {
	catalog := reference.NewCatalog()
	store := repository.NewMemoryOutcomeStore(reference.SeedOutcomes())
	return NewPredictorService(catalog, store, nil, strategy, 0)
}

// ============================================================================
// CONFIDENCE
// ============================================================================

func TestConfidenceLevel_BoundaryExact(t *testing.T) {
	assert.Equal(t, models.ConfidenceHigh, confidenceLevel(0.80))
	assert.Equal(t, models.ConfidenceMedium, confidenceLevel(0.7999))
	assert.Equal(t, models.ConfidenceMedium, confidenceLevel(0.60))
	assert.Equal(t, models.ConfidenceLow, confidenceLevel(0.5999))
}

// ============================================================================
// PREDICTION
// ============================================================================

func TestPredictSowingWindow_RicePunjabClayAugust(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	result, err := predictor.PredictSowingWindow(context.Background(), "rice", "Punjab", "clay", 8)
	require.NoError(t, err)

	// Clay is in rice's compatible soils
	assert.Equal(t, 1.0, result.ClimateAnalysis.Soil.Score)
	// 25 vs 22 annual gives 0.7, discounted by Punjab's seasonal swing floor
	assert.InDelta(t, 0.56, result.ClimateAnalysis.Temperature.Score, 1e-9)
	// Kharif (June) is in the past relative to August, rabi remains
	assert.Equal(t, "rabi", result.Season)
	assert.Equal(t, "November 15", result.OptimalSowingDate)
	assert.False(t, result.RegionDefaulted)

	ca := result.ClimateAnalysis
	expected := ca.Temperature.Score*0.30 + ca.Rainfall.Score*0.25 +
		ca.Humidity.Score*0.20 + ca.Soil.Score*0.15 + ca.Timing.Score*0.10
	assert.InDelta(t, expected, result.SuitabilityScore, 1e-9)
}

func TestPredictSowingWindow_MeanStrategy(t *testing.T) {
	predictor := newTestPredictor(models.StrategyMean)

	result, err := predictor.PredictSowingWindow(context.Background(), "rice", "Punjab", "clay", 8)
	require.NoError(t, err)

	ca := result.ClimateAnalysis
	expected := (ca.Temperature.Score + ca.Rainfall.Score + ca.Humidity.Score + ca.Soil.Score) / 4
	assert.InDelta(t, expected, result.SuitabilityScore, 1e-9)
}

func TestPredictSowingWindow_AggregateWithinUnitInterval(t *testing.T) {
	for _, strategy := range []models.ScoringStrategy{models.StrategyWeighted, models.StrategyMean} {
		predictor := newTestPredictor(strategy)
		catalog := reference.NewCatalog()

		for _, crop := range catalog.CropIDs() {
			for month := 1; month <= 12; month++ {
				result, err := predictor.PredictSowingWindow(context.Background(), crop, "Karnataka", "loamy", month)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, result.SuitabilityScore, 0.0)
				assert.LessOrEqual(t, result.SuitabilityScore, 1.0)
			}
		}
	}
}

func TestPredictSowingWindow_NeverSelectsPastWindow(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)
	catalog := reference.NewCatalog()

	for _, crop := range catalog.CropIDs() {
		for month := 1; month <= 12; month++ {
			result, err := predictor.PredictSowingWindow(context.Background(), crop, "Tamil Nadu", "loamy", month)
			require.NoError(t, err)

			if result.Season == models.SentinelSeason {
				assert.Equal(t, models.SentinelSowingDate, result.OptimalSowingDate)
				continue
			}
			assert.Greater(t, reference.SeasonMonth(result.Season), month,
				"crop %s month %d selected past window %s", crop, month, result.Season)
		}
	}
}

func TestPredictSowingWindow_NoFutureWindowReturnsSentinel(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	// Wheat only sows in rabi (November); December leaves nothing ahead
	result, err := predictor.PredictSowingWindow(context.Background(), "wheat", "Punjab", "loamy", 12)
	require.NoError(t, err)
	assert.Equal(t, models.SentinelSeason, result.Season)
	assert.Equal(t, models.SentinelSowingDate, result.OptimalSowingDate)
}

func TestPredictSowingWindow_HistoricalMultiplierBreaksTies(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	// In January every maize window is ahead with the same aggregate score.
	// Punjab's records: wheat (rabi) 0.90 beats rice (kharif) 0.78 and the
	// 0.8 default for zaid, so rabi wins.
	result, err := predictor.PredictSowingWindow(context.Background(), "maize", "Punjab", "loamy", 1)
	require.NoError(t, err)
	assert.Equal(t, "rabi", result.Season)
}

func TestPredictSowingWindow_UnknownCrop(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	result, err := predictor.PredictSowingWindow(context.Background(), "dragonfruit", "Punjab", "clay", 4)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUnknownCrop))
}

func TestPredictSowingWindow_UnknownRegionDefaults(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	result, err := predictor.PredictSowingWindow(context.Background(), "rice", "Atlantis", "clay", 4)
	require.NoError(t, err)
	assert.True(t, result.RegionDefaulted)
	assert.Equal(t, reference.DefaultRegion, result.Region)
	// Unknown regions carry no advisory strings
	for _, rec := range result.Recommendations {
		assert.NotContains(t, rec, "monsoon")
	}
}

func TestPredictSowingWindow_InvalidMonth(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	for _, month := range []int{0, -1, 13} {
		_, err := predictor.PredictSowingWindow(context.Background(), "rice", "Punjab", "clay", month)
		assert.True(t, errors.Is(err, ErrInvalidInput), "month %d", month)
	}
}

func TestPredictSowingWindow_RegionAdvisoriesAppended(t *testing.T) {
	predictor := newTestPredictor(models.StrategyWeighted)

	result, err := predictor.PredictSowingWindow(context.Background(), "rice", "Punjab", "clay", 4)
	require.NoError(t, err)
	assert.Contains(t, result.Recommendations, "Implement water conservation techniques")
}
