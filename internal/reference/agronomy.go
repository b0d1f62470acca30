package reference

import "advisory-service/internal/models"

// seasonMonths anchors each named sowing season to a calendar month.
var seasonMonths = map[string]int{
	"kharif": 6,  // June
	"rabi":   11, // November
	"zaid":   3,  // March
	"spring": 2,  // February
	"autumn": 9,  // September
}

// SeasonMonth returns the calendar month anchoring a season name.
// Unknown seasons resolve to January.
func SeasonMonth(season string) int {
	if m, ok := seasonMonths[season]; ok {
		return m
	}
	return 1
}

// seasonCrops maps a season to its representative crop, used to look up the
// historical success multiplier for a sowing window.
var seasonCrops = map[string]string{
	"kharif": "rice",
	"rabi":   "wheat",
	"zaid":   "maize",
}

// SeasonCrop returns the representative crop for a season, defaulting to rice.
func SeasonCrop(season string) string {
	if c, ok := seasonCrops[season]; ok {
		return c
	}
	return "rice"
}

// seedRates is the per-acre seeding table. Crops without an entry get an
// explicit unknown requirement, never a numeric default.
var seedRates = map[string]models.SeedRate{
	"rice":      {PerAcre: 25, Unit: "kg"},
	"wheat":     {PerAcre: 40, Unit: "kg"},
	"maize":     {PerAcre: 25, Unit: "kg"},
	"cotton":    {PerAcre: 1.5, Unit: "kg"},
	"sugarcane": {PerAcre: 35000, Unit: "setts"},
}

// timelineFallbackCrop supplies the growth timeline for crops without one of
// their own.
const timelineFallbackCrop = "rice"

var cropTimelines = map[string][]models.TimelineStage{
	"rice": {
		{Stage: "Land Preparation", Duration: "15 days", Activities: []string{"Plowing", "Puddling", "Leveling"}},
		{Stage: "Nursery Preparation", Duration: "25 days", Activities: []string{"Seed treatment", "Nursery management"}},
		{Stage: "Transplanting", Duration: "7 days", Activities: []string{"Transplanting", "Gap filling"}},
		{Stage: "Vegetative Growth", Duration: "45 days", Activities: []string{"Weeding", "Fertilizer application"}},
		{Stage: "Reproductive Phase", Duration: "30 days", Activities: []string{"Pest monitoring", "Water management"}},
		{Stage: "Harvesting", Duration: "15 days", Activities: []string{"Harvesting", "Threshing", "Storage"}},
	},
	"wheat": {
		{Stage: "Land Preparation", Duration: "10 days", Activities: []string{"Plowing", "Harrowing", "Leveling"}},
		{Stage: "Sowing", Duration: "5 days", Activities: []string{"Seed treatment", "Sowing"}},
		{Stage: "Vegetative Growth", Duration: "60 days", Activities: []string{"Weeding", "Fertilizer application"}},
		{Stage: "Reproductive Phase", Duration: "40 days", Activities: []string{"Pest monitoring", "Irrigation"}},
		{Stage: "Harvesting", Duration: "10 days", Activities: []string{"Harvesting", "Threshing"}},
	},
}

// SeedOutcomes returns the starting historical records used to seed an
// outcome store. Yields are in each crop's own yield unit.
func SeedOutcomes() []models.HistoricalOutcome {
	return []models.HistoricalOutcome{
		{Crop: "rice", Region: "Tamil Nadu", AvgYield: 4.2, SuccessRate: 0.85},
		{Crop: "rice", Region: "Punjab", AvgYield: 3.8, SuccessRate: 0.78},
		{Crop: "rice", Region: "Maharashtra", AvgYield: 4.0, SuccessRate: 0.82},
		{Crop: "wheat", Region: "Punjab", AvgYield: 28, SuccessRate: 0.90},
		{Crop: "wheat", Region: "Uttar Pradesh", AvgYield: 26, SuccessRate: 0.88},
		{Crop: "wheat", Region: "Madhya Pradesh", AvgYield: 24, SuccessRate: 0.85},
		{Crop: "maize", Region: "Karnataka", AvgYield: 30, SuccessRate: 0.80},
		{Crop: "maize", Region: "Maharashtra", AvgYield: 28, SuccessRate: 0.78},
		{Crop: "maize", Region: "Tamil Nadu", AvgYield: 26, SuccessRate: 0.75},
	}
}
