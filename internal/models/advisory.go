package models

// ============================================================================
// DERIVED ADVISORY RESULTS
// ============================================================================

// FactorScore pairs a normalized [0,1] score with its qualitative status.
type FactorScore struct {
	Score  float64      `json:"score"`
	Status FactorStatus `json:"status"`
}

// ClimateAnalysis is the per-factor breakdown behind a suitability score.
type ClimateAnalysis struct {
	Temperature FactorScore `json:"temperature"`
	Rainfall    FactorScore `json:"rainfall"`
	Humidity    FactorScore `json:"humidity"`
	Soil        FactorScore `json:"soil"`
	Timing      FactorScore `json:"timing"`
}

// SuitabilityResult is the outcome of a sowing-window prediction. It is
// computed fresh per request and never persisted as-is.
type SuitabilityResult struct {
	Crop              string          `json:"crop"`
	Region            string          `json:"region"`
	RegionDefaulted   bool            `json:"region_defaulted"`
	SuitabilityScore  float64         `json:"suitability_score"`
	Confidence        ConfidenceLevel `json:"confidence"`
	Season            string          `json:"season"`
	OptimalSowingDate string          `json:"optimal_sowing_date"`
	ClimateAnalysis   ClimateAnalysis `json:"climate_analysis"`
	Recommendations   []string        `json:"recommendations"`
}

// SentinelSeason and SentinelSowingDate mark a prediction where no sowing
// window falls after the requested month.
const (
	SentinelSeason     = "unknown"
	SentinelSowingDate = "Not available"
)

type PlanInputs struct {
	Seeds       string            `json:"seeds"`
	Fertilizers FertilizerRegimen `json:"fertilizers"`
	Pesticides  []string          `json:"pesticides"`
}

type FinancialProjection struct {
	Currency        string  `json:"currency"`
	TotalInvestment float64 `json:"total_investment"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	NetProfit       float64 `json:"net_profit"`
	ROIPercent      float64 `json:"roi_percent"`
}

type RiskEntry struct {
	Factor     string     `json:"factor"`
	Impact     RiskImpact `json:"impact"`
	Mitigation string     `json:"mitigation"`
}

// CropPlan expands a SuitabilityResult into a full operating plan.
// Computed fresh per request.
type CropPlan struct {
	Crop             string              `json:"crop"`
	Variety          string              `json:"variety"`
	AreaAcres        float64             `json:"area_acres"`
	SowingPrediction SuitabilityResult   `json:"sowing_prediction"`
	Inputs           PlanInputs          `json:"inputs"`
	Equipment        []string            `json:"equipment"`
	Timeline         []TimelineStage     `json:"timeline"`
	Financials       FinancialProjection `json:"financials"`
	Risks            []RiskEntry         `json:"risks"`
	Recommendations  []string            `json:"recommendations"`
}
