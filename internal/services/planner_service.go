package services

import (
	"context"
	"fmt"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"
)

// Per-acre cost constants and the fixed unit sale price, in INR. These are a
// planning simplification, not a market-price lookup.
const (
	inputCostPerAcre     = 15000
	laborCostPerAcre     = 8000
	equipmentCostPerAcre = 5000
	unitPrice            = 2000
	currency             = "INR"
)

// areaBufferShare of the declared farm size is reserved for irrigation
// infrastructure, paths and fallow.
const areaBufferShare = 0.8

// PlannerService expands a sowing prediction into a full operating plan.
type PlannerService struct {
	catalog   *reference.Catalog
	predictor *PredictorService
}

func NewPlannerService(catalog *reference.Catalog, predictor *PredictorService) *PlannerService {
	return &PlannerService{catalog: catalog, predictor: predictor}
}

// GenerateCropPlan validates the request, predicts the sowing window and
// derives area allocation, inputs, equipment, timeline, financials and risks.
func (s *PlannerService) GenerateCropPlan(ctx context.Context, req models.GenerateCropPlanRequest) (*models.CropPlan, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	profile, ok := s.catalog.Crop(req.Crop)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCrop, req.Crop)
	}

	prediction, err := s.predictor.PredictSowingWindow(ctx, req.Crop, req.Region, req.SoilType, req.CurrentMonth)
	if err != nil {
		return nil, err
	}

	area := min(req.FarmSizeAcres*areaBufferShare, req.FarmSizeAcres)

	plan := &models.CropPlan{
		Crop:             profile.Name,
		Variety:          profile.Varieties[0],
		AreaAcres:        area,
		SowingPrediction: *prediction,
		Inputs: models.PlanInputs{
			Seeds:       s.seedRequirement(req.Crop, area),
			Fertilizers: profile.Fertilizers,
			Pesticides:  profile.PestManagement,
		},
		Equipment:       s.equipmentNeeds(profile, req.Experience),
		Timeline:        s.catalog.Timeline(req.Crop),
		Financials:      s.financialProjection(profile, area),
		Risks:           s.riskAssessment(req.Crop, req.Region, prediction.SuitabilityScore),
		Recommendations: s.planRecommendations(req.SoilType, req.Experience),
	}

	return plan, nil
}

func (s *PlannerService) validate(req models.GenerateCropPlanRequest) error {
	if req.FarmSizeAcres <= 0 {
		return fmt.Errorf("%w: farm_size_acres must be greater than 0", ErrInvalidInput)
	}
	if req.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}
	if req.CurrentMonth < 1 || req.CurrentMonth > 12 {
		return fmt.Errorf("%w: current_month must be between 1 and 12", ErrInvalidInput)
	}
	if !req.Experience.Valid() {
		return fmt.Errorf("%w: experience must be beginner, intermediate or expert", ErrInvalidInput)
	}
	return nil
}

// seedRequirement multiplies the per-acre seed rate by the allocated area.
// Crops without a listed rate get an explicit unknown, never a guessed number.
func (s *PlannerService) seedRequirement(crop string, area float64) string {
	rate, ok := s.catalog.SeedRate(crop)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%g %s", rate.PerAcre*area, rate.Unit)
}

// equipmentNeeds augments the crop's tool list with experience-tier defaults.
// Additions never remove crop-specific tools, and the catalog slice is
// copied before appending.
func (s *PlannerService) equipmentNeeds(profile models.CropProfile, tier models.ExperienceTier) []string {
	equipment := make([]string, len(profile.Tools))
	copy(equipment, profile.Tools)

	switch tier {
	case models.ExperienceBeginner:
		equipment = append(equipment, "Irrigation System", "Weather Station")
	case models.ExperienceExpert:
		equipment = append(equipment, "Precision Agriculture Tools", "Drone")
	}
	return equipment
}

func (s *PlannerService) financialProjection(profile models.CropProfile, area float64) models.FinancialProjection {
	totalCost := area * (inputCostPerAcre + laborCostPerAcre + equipmentCostPerAcre)
	revenue := area * profile.AverageYield() * unitPrice
	netProfit := revenue - totalCost

	roi := 0.0
	if totalCost > 0 {
		roi = netProfit / totalCost * 100
	}

	return models.FinancialProjection{
		Currency:        currency,
		TotalInvestment: totalCost,
		ExpectedRevenue: revenue,
		NetProfit:       netProfit,
		ROIPercent:      roi,
	}
}

func (s *PlannerService) riskAssessment(crop, region string, suitability float64) []models.RiskEntry {
	risks := []models.RiskEntry{}

	if suitability < 0.7 {
		risks = append(risks, models.RiskEntry{
			Factor:     "Climate Suitability",
			Impact:     models.RiskImpactHigh,
			Mitigation: "Consider alternative crops or adjust sowing time",
		})
	}

	if region == "Punjab" && crop == "rice" {
		risks = append(risks, models.RiskEntry{
			Factor:     "Water Scarcity",
			Impact:     models.RiskImpactHigh,
			Mitigation: "Implement water-efficient irrigation systems",
		})
	}

	risks = append(risks, models.RiskEntry{
		Factor:     "Market Price Fluctuation",
		Impact:     models.RiskImpactMedium,
		Mitigation: "Contract farming, storage facilities",
	})

	return risks
}

func (s *PlannerService) planRecommendations(soilType string, tier models.ExperienceTier) []string {
	recs := []string{
		"Implement crop rotation to maintain soil health",
		"Use organic fertilizers and bio-pesticides where possible",
	}

	if tier == models.ExperienceBeginner {
		recs = append(recs,
			"Start with smaller area to gain experience",
			"Consult local agricultural extension officers")
	}
	if soilType == "sandy" {
		recs = append(recs, "Add organic matter to improve soil structure")
	}
	return recs
}
