package services

import (
	"math"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"
)

// Scoring functions convert a crop requirement and a region baseline into
// normalized [0,1] suitability scores. All of them are pure.

// TemperatureScore scores the gap between a crop's optimal temperature and
// the region's annual mean. A 10 degree deviation fully zeroes suitability;
// a large intra-year swing between kharif and rabi discounts the score down
// to at most 20% to reflect climate instability.
func TemperatureScore(optimalC float64, regionTemp models.SeasonalValues) float64 {
	score := math.Max(0, 1-math.Abs(optimalC-regionTemp.Annual)/10)
	swing := math.Abs(regionTemp.Kharif-regionTemp.Rabi) / 10
	adjustment := math.Max(0.8, 1-swing)
	return math.Min(1, score*adjustment)
}

// RainfallScore averages two components: closeness of annual rainfall to the
// crop optimum (500mm deviation zeroes it) and how the rainfall distributes
// across seasons, preferring 60% of the total to fall in kharif.
func RainfallScore(optimalMm float64, regionRain models.SeasonalValues) float64 {
	score := math.Max(0, 1-math.Abs(optimalMm-regionRain.Annual)/500)
	return (score + rainfallDistributionScore(regionRain)) / 2
}

func rainfallDistributionScore(regionRain models.SeasonalValues) float64 {
	total := regionRain.Kharif + regionRain.Rabi + regionRain.Zaid
	if total <= 0 {
		return 0
	}
	kharifRatio := regionRain.Kharif / total
	return 1 - math.Abs(kharifRatio-0.6)
}

// HumidityScore scores the gap to the crop's optimal humidity; a 20 point
// deviation zeroes it.
func HumidityScore(optimalPct float64, regionHumidity models.SeasonalValues) float64 {
	return math.Max(0, 1-math.Abs(optimalPct-regionHumidity.Annual)/20)
}

// SoilScore is 1.0 for a compatible soil type and a fixed 0.5 partial credit
// otherwise.
func SoilScore(crop models.CropProfile, soilType string) float64 {
	if crop.CompatibleWith(soilType) {
		return 1.0
	}
	return 0.5
}

// TimingScore scores how close the current month is to any of the crop's
// sowing seasons. The nearest window dominates; six months away zeroes it.
func TimingScore(windows map[string]models.SowingWindow, currentMonth int) float64 {
	best := 0.0
	for season := range windows {
		seasonMonth := reference.SeasonMonth(season)
		monthDiff := math.Abs(float64(seasonMonth - currentMonth))
		score := math.Max(0, 1-monthDiff/6)
		best = math.Max(best, score)
	}
	return best
}

func climateStatus(score float64) models.FactorStatus {
	if score > 0.7 {
		return models.StatusOptimal
	}
	return models.StatusSubOptimal
}

func soilStatus(score float64) models.FactorStatus {
	if score > 0.8 {
		return models.StatusCompatible
	}
	return models.StatusModerate
}
