package services

import (
	"testing"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// stableTemps has no kharif/rabi swing, so the seasonal adjustment is neutral
// and the deviation term can be asserted exactly.
func stableTemps(annual float64) models.SeasonalValues {
	return models.SeasonalValues{Annual: annual, Kharif: annual, Rabi: annual, Zaid: annual}
}

// ============================================================================
// TEMPERATURE
// ============================================================================

func TestTemperatureScore_DeviationOnly(t *testing.T) {
	// 3 degree gap from optimal, no seasonal swing: 1 - 3/10 = 0.7
	score := TemperatureScore(25, stableTemps(22))
	assert.InDelta(t, 0.7, score, 1e-9)
}

func TestTemperatureScore_ExactOptimal(t *testing.T) {
	score := TemperatureScore(25, stableTemps(25))
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestTemperatureScore_LargeDeviationZeroes(t *testing.T) {
	score := TemperatureScore(25, stableTemps(40))
	assert.Equal(t, 0.0, score)
}

func TestTemperatureScore_SeasonalSwingPenalty(t *testing.T) {
	// Punjab-style swing: |30-15|/10 = 1.5, adjustment floors at 0.8
	temps := models.SeasonalValues{Annual: 22, Kharif: 30, Rabi: 15, Zaid: 35}
	score := TemperatureScore(25, temps)
	assert.InDelta(t, 0.7*0.8, score, 1e-9)
}

// ============================================================================
// RAINFALL
// ============================================================================

func TestRainfallScore_AveragesDeviationAndDistribution(t *testing.T) {
	// Tamil Nadu baseline: annual 1000 vs optimal 1500 zeroes the deviation
	// term; distribution = 1 - |600/900 - 0.6|
	rain := models.SeasonalValues{Annual: 1000, Kharif: 600, Rabi: 200, Zaid: 100}
	expectedDistribution := 1 - (600.0/900.0 - 0.6)
	score := RainfallScore(1500, rain)
	assert.InDelta(t, expectedDistribution/2, score, 1e-9)
}

func TestRainfallScore_ZeroSeasonalTotal(t *testing.T) {
	rain := models.SeasonalValues{Annual: 600}
	score := RainfallScore(600, rain)
	assert.InDelta(t, 0.5, score, 1e-9)
}

// ============================================================================
// HUMIDITY
// ============================================================================

func TestHumidityScore_Deviation(t *testing.T) {
	score := HumidityScore(75, models.SeasonalValues{Annual: 70})
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestHumidityScore_LargeDeviationZeroes(t *testing.T) {
	score := HumidityScore(75, models.SeasonalValues{Annual: 40})
	assert.Equal(t, 0.0, score)
}

// ============================================================================
// SOIL
// ============================================================================

func TestSoilScore_ExactValuesForAllCrops(t *testing.T) {
	catalog := reference.NewCatalog()
	for _, id := range catalog.CropIDs() {
		profile, _ := catalog.Crop(id)
		for _, soil := range profile.Soils {
			assert.Equal(t, 1.0, SoilScore(profile, soil), "crop %s soil %s", id, soil)
		}
		assert.Equal(t, 0.5, SoilScore(profile, "volcanic"), "crop %s incompatible soil", id)
	}
}

// ============================================================================
// TIMING
// ============================================================================

func TestTimingScore_NearestWindowDominates(t *testing.T) {
	catalog := reference.NewCatalog()
	maize, _ := catalog.Crop("maize")

	// Month 5: kharif (June) is one month away and beats zaid and rabi
	score := TimingScore(maize.SowingWindows, 5)
	assert.InDelta(t, 1-1.0/6, score, 1e-9)
}

func TestTimingScore_SixMonthsAwayZeroes(t *testing.T) {
	windows := map[string]models.SowingWindow{
		"rabi": {Start: "November", End: "December", Optimal: "November 15"},
	}
	score := TimingScore(windows, 5)
	assert.Equal(t, 0.0, score)
}

func TestTimingScore_NoWindows(t *testing.T) {
	assert.Equal(t, 0.0, TimingScore(map[string]models.SowingWindow{}, 6))
}

// ============================================================================
// BOUNDS
// ============================================================================

func TestComponentScores_AlwaysWithinUnitInterval(t *testing.T) {
	catalog := reference.NewCatalog()
	regions := []string{"Tamil Nadu", "Punjab", "Maharashtra", "Karnataka"}
	soils := []string{"clay", "loamy", "sandy", "black", "volcanic"}

	for _, id := range catalog.CropIDs() {
		profile, _ := catalog.Crop(id)
		for _, region := range regions {
			weather, _ := catalog.Weather(region)
			for _, soil := range soils {
				for month := 1; month <= 12; month++ {
					scores := []float64{
						TemperatureScore(profile.Temperature.Optimal, weather.Temperature),
						RainfallScore(profile.Rainfall.Optimal, weather.Rainfall),
						HumidityScore(profile.Humidity.Optimal, weather.Humidity),
						SoilScore(profile, soil),
						TimingScore(profile.SowingWindows, month),
					}
					for i, s := range scores {
						assert.GreaterOrEqual(t, s, 0.0, "crop %s region %s component %d", id, region, i)
						assert.LessOrEqual(t, s, 1.0, "crop %s region %s component %d", id, region, i)
					}
				}
			}
		}
	}
}
