package models

// ============================================================================
// ENUMS
// ============================================================================

type ExperienceTier string

const (
	ExperienceBeginner     ExperienceTier = "beginner"
	ExperienceIntermediate ExperienceTier = "intermediate"
	ExperienceExpert       ExperienceTier = "expert"
)

func (e ExperienceTier) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// ScoringStrategy selects how component scores are combined into the
// aggregate suitability score.
type ScoringStrategy string

const (
	// StrategyWeighted combines temperature/rainfall/humidity/soil/timing
	// with fixed weights 0.30/0.25/0.20/0.15/0.10.
	StrategyWeighted ScoringStrategy = "weighted"
	// StrategyMean takes the unweighted mean of the temperature, rainfall,
	// humidity and soil scores.
	StrategyMean ScoringStrategy = "mean"
)

func (s ScoringStrategy) Valid() bool {
	return s == StrategyWeighted || s == StrategyMean
}

type FactorStatus string

const (
	StatusOptimal    FactorStatus = "Optimal"
	StatusSubOptimal FactorStatus = "Sub-optimal"
	StatusCompatible FactorStatus = "Compatible"
	StatusModerate   FactorStatus = "Moderate"
)

type RiskImpact string

const (
	RiskImpactHigh   RiskImpact = "High"
	RiskImpactMedium RiskImpact = "Medium"
	RiskImpactLow    RiskImpact = "Low"
)
