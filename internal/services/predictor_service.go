package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"

	"github.com/redis/go-redis/v9"
)

// defaultSuccessMultiplier is applied to a sowing window when no historical
// record exists for the window's representative crop in the region.
const defaultSuccessMultiplier = 0.8

// OutcomeStore is the keyed get/put boundary to the historical outcome
// persistence. Record must serialize concurrent updates per (crop, region).
type OutcomeStore interface {
	Get(ctx context.Context, crop, region string) (*models.HistoricalOutcome, error)
	Record(ctx context.Context, crop, region string, yieldValue float64, success bool) (*models.HistoricalOutcome, error)
}

// PredictorService combines per-factor suitability scores into a sowing
// window recommendation. All computation is pure; the optional Redis cache
// only memoizes results.
type PredictorService struct {
	catalog  *reference.Catalog
	outcomes OutcomeStore
	cache    *redis.Client
	strategy models.ScoringStrategy
	cacheTTL time.Duration
}

func NewPredictorService(
	catalog *reference.Catalog,
	outcomes OutcomeStore,
	cache *redis.Client,
	strategy models.ScoringStrategy,
	cacheTTL time.Duration,
) *PredictorService {
	if !strategy.Valid() {
		strategy = models.StrategyWeighted
	}
	return &PredictorService{
		catalog:  catalog,
		outcomes: outcomes,
		cache:    cache,
		strategy: strategy,
		cacheTTL: cacheTTL,
	}
}

// PredictSowingWindow computes the suitability of growing a crop in a region
// on a soil type, and selects the best sowing window after currentMonth.
// Unknown crops return ErrUnknownCrop; unknown regions fall back to the
// default region with RegionDefaulted set.
func (s *PredictorService) PredictSowingWindow(
	ctx context.Context,
	crop, region, soilType string,
	currentMonth int,
) (*models.SuitabilityResult, error) {
	if currentMonth < 1 || currentMonth > 12 {
		return nil, fmt.Errorf("%w: current_month must be between 1 and 12, got %d", ErrInvalidInput, currentMonth)
	}

	if cached := s.cachedResult(ctx, crop, region, soilType, currentMonth); cached != nil {
		return cached, nil
	}

	profile, ok := s.catalog.Crop(crop)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCrop, crop)
	}

	weather, defaulted := s.catalog.Weather(region)
	if defaulted {
		slog.Warn("Region not in weather baseline, using default",
			"requested_region", region,
			"default_region", reference.DefaultRegion)
	}

	tempScore := TemperatureScore(profile.Temperature.Optimal, weather.Temperature)
	rainScore := RainfallScore(profile.Rainfall.Optimal, weather.Rainfall)
	humidityScore := HumidityScore(profile.Humidity.Optimal, weather.Humidity)
	soilScore := SoilScore(profile, soilType)
	timingScore := TimingScore(profile.SowingWindows, currentMonth)

	aggregate := s.aggregate(tempScore, rainScore, humidityScore, soilScore, timingScore)

	season, window := s.selectSowingWindow(ctx, profile, region, aggregate, currentMonth)

	result := &models.SuitabilityResult{
		Crop:              profile.Name,
		Region:            weather.Region,
		RegionDefaulted:   defaulted,
		SuitabilityScore:  aggregate,
		Confidence:        confidenceLevel(aggregate),
		Season:            season,
		OptimalSowingDate: window,
		ClimateAnalysis: models.ClimateAnalysis{
			Temperature: models.FactorScore{Score: tempScore, Status: climateStatus(tempScore)},
			Rainfall:    models.FactorScore{Score: rainScore, Status: climateStatus(rainScore)},
			Humidity:    models.FactorScore{Score: humidityScore, Status: climateStatus(humidityScore)},
			Soil:        models.FactorScore{Score: soilScore, Status: soilStatus(soilScore)},
			Timing:      models.FactorScore{Score: timingScore, Status: climateStatus(timingScore)},
		},
		Recommendations: s.recommendations(region, aggregate),
	}

	s.cacheResult(ctx, crop, region, soilType, currentMonth, result)
	return result, nil
}

// aggregate combines component scores per the configured strategy. The
// weighted rule is the documented default; the mean rule averages the four
// climate/soil components without timing.
func (s *PredictorService) aggregate(temp, rain, humidity, soil, timing float64) float64 {
	if s.strategy == models.StrategyMean {
		return (temp + rain + humidity + soil) / 4
	}
	return temp*0.30 + rain*0.25 + humidity*0.20 + soil*0.15 + timing*0.10
}

// selectSowingWindow picks the future window maximizing the aggregate score
// times the historical success multiplier. With no future window it returns
// the sentinel season and date.
func (s *PredictorService) selectSowingWindow(
	ctx context.Context,
	profile models.CropProfile,
	region string,
	aggregate float64,
	currentMonth int,
) (string, string) {
	seasons := make([]string, 0, len(profile.SowingWindows))
	for season := range profile.SowingWindows {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)

	bestSeason := models.SentinelSeason
	bestDate := models.SentinelSowingDate
	bestScore := 0.0

	for _, season := range seasons {
		if reference.SeasonMonth(season) <= currentMonth {
			continue
		}
		windowScore := aggregate * s.successMultiplier(ctx, season, region)
		if windowScore > bestScore {
			bestScore = windowScore
			bestSeason = season
			bestDate = profile.SowingWindows[season].Optimal
		}
	}

	return bestSeason, bestDate
}

// successMultiplier looks up the historical success rate of the season's
// representative crop in the region, defaulting when no record exists.
func (s *PredictorService) successMultiplier(ctx context.Context, season, region string) float64 {
	if s.outcomes == nil {
		return defaultSuccessMultiplier
	}
	outcome, err := s.outcomes.Get(ctx, reference.SeasonCrop(season), region)
	if err != nil || outcome == nil {
		return defaultSuccessMultiplier
	}
	return outcome.SuccessRate
}

func (s *PredictorService) recommendations(region string, aggregate float64) []string {
	recs := []string{}

	if aggregate < 0.7 {
		recs = append(recs,
			"Consider alternative crops better suited to your region",
			"Implement climate adaptation strategies")
	}
	if aggregate >= 0.8 {
		recs = append(recs,
			"Optimal conditions detected - proceed with recommended timeline",
			"Consider precision agriculture techniques for maximum yield")
	}

	recs = append(recs, s.catalog.RegionAdvisories(region)...)
	return recs
}

// confidenceLevel is a monotonic step function of the aggregate score.
func confidenceLevel(score float64) models.ConfidenceLevel {
	switch {
	case score >= 0.8:
		return models.ConfidenceHigh
	case score >= 0.6:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// ============================================================================
// RESULT CACHE
// ============================================================================

func (s *PredictorService) cacheKey(crop, region, soilType string, month int) string {
	return fmt.Sprintf("prediction:%s:%s:%s:%d:%s", crop, region, soilType, month, s.strategy)
}

func (s *PredictorService) cachedResult(ctx context.Context, crop, region, soilType string, month int) *models.SuitabilityResult {
	if s.cache == nil {
		return nil
	}
	val, err := s.cache.Get(ctx, s.cacheKey(crop, region, soilType, month)).Bytes()
	if err != nil {
		return nil
	}
	var result models.SuitabilityResult
	if err := json.Unmarshal(val, &result); err != nil {
		slog.Warn("Failed to decode cached prediction, recomputing", "error", err)
		return nil
	}
	return &result
}

func (s *PredictorService) cacheResult(ctx context.Context, crop, region, soilType string, month int, result *models.SuitabilityResult) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	buf, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cacheKey(crop, region, soilType, month), buf, s.cacheTTL).Err(); err != nil {
		slog.Warn("Failed to cache prediction result", "error", err)
	}
}
