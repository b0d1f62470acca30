package models

// ============================================================================
// REFERENCE DATA
// ============================================================================

// ClimateRange describes a crop requirement band for one climate factor.
type ClimateRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Optimal float64 `json:"optimal"`
}

// SowingWindow is a named season's planting range. Labels are calendar
// date strings ("June 15"), not timestamps.
type SowingWindow struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Optimal string `json:"optimal"`
}

type FertilizerRegimen struct {
	Basal          string `json:"basal"`
	TopDress       string `json:"top_dress"`
	Micronutrients string `json:"micronutrients"`
}

type YieldRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// CropProfile is the immutable reference record for one crop. Built once at
// process start, never mutated afterwards.
type CropProfile struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Varieties        []string                `json:"varieties"`
	Temperature      ClimateRange            `json:"temperature"`
	Rainfall         ClimateRange            `json:"rainfall"`
	Humidity         ClimateRange            `json:"humidity"`
	Soils            []string                `json:"soils"`
	SowingWindows    map[string]SowingWindow `json:"sowing_windows"`
	Tools            []string                `json:"tools"`
	Fertilizers      FertilizerRegimen       `json:"fertilizers"`
	PestManagement   []string                `json:"pest_management"`
	WaterRequirement string                  `json:"water_requirement"`
	ExpectedYield    YieldRange              `json:"expected_yield"`
}

// AverageYield is the midpoint of the expected yield range, used by the
// financial projection.
func (c CropProfile) AverageYield() float64 {
	return (c.ExpectedYield.Min + c.ExpectedYield.Max) / 2
}

// CompatibleWith reports whether the crop tolerates the given soil type.
func (c CropProfile) CompatibleWith(soilType string) bool {
	for _, s := range c.Soils {
		if s == soilType {
			return true
		}
	}
	return false
}

// SeasonalValues holds a per-season breakdown plus the annual baseline for
// one weather factor.
type SeasonalValues struct {
	Annual float64 `json:"annual"`
	Kharif float64 `json:"kharif"`
	Rabi   float64 `json:"rabi"`
	Zaid   float64 `json:"zaid"`
}

// RegionWeather is the immutable weather baseline for one region.
type RegionWeather struct {
	Region      string         `json:"region"`
	Temperature SeasonalValues `json:"temperature"`
	Rainfall    SeasonalValues `json:"rainfall"`
	Humidity    SeasonalValues `json:"humidity"`
}

// TimelineStage is one step of a crop growth timeline.
type TimelineStage struct {
	Stage      string   `json:"stage"`
	Duration   string   `json:"duration"`
	Activities []string `json:"activities"`
}

// SeedRate is the per-acre seeding requirement for a crop.
type SeedRate struct {
	PerAcre float64 `json:"per_acre"`
	Unit    string  `json:"unit"`
}
