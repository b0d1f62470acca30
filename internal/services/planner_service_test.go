package services

import (
	"context"
	"errors"
	"testing"

	"advisory-service/internal/models"
	"advisory-service/internal/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner() *PlannerService {
	catalog := reference.NewCatalog()
	predictor := newTestPredictor(models.StrategyWeighted)
	return NewPlannerService(catalog, predictor)
}

func validPlanRequest() models.GenerateCropPlanRequest {
	return models.GenerateCropPlanRequest{
		Crop:          "wheat",
		Region:        "Punjab",
		SoilType:      "loamy",
		FarmSizeAcres: 10,
		Budget:        50000,
		Experience:    models.ExperienceBeginner,
		CurrentMonth:  4,
	}
}

func TestGenerateCropPlan_WheatTenAcres(t *testing.T) {
	planner := newTestPlanner()

	plan, err := planner.GenerateCropPlan(context.Background(), validPlanRequest())
	require.NoError(t, err)

	assert.Equal(t, "Wheat", plan.Crop)
	assert.Equal(t, "HD-2967", plan.Variety)
	assert.Equal(t, 8.0, plan.AreaAcres)
	assert.Equal(t, "320 kg", plan.Inputs.Seeds)
	assert.Equal(t, "rabi", plan.SowingPrediction.Season)
	assert.Equal(t, "November 15", plan.SowingPrediction.OptimalSowingDate)

	// Wheat carries its own five-stage timeline
	require.Len(t, plan.Timeline, 5)
	assert.Equal(t, "Land Preparation", plan.Timeline[0].Stage)
	assert.Equal(t, "Harvesting", plan.Timeline[4].Stage)

	fin := plan.Financials
	assert.Equal(t, "INR", fin.Currency)
	assert.Equal(t, 224000.0, fin.TotalInvestment)
	assert.Equal(t, 400000.0, fin.ExpectedRevenue)
	assert.Equal(t, 176000.0, fin.NetProfit)
	assert.InDelta(t, 78.5714, fin.ROIPercent, 1e-3)

	assert.Contains(t, plan.Recommendations, "Start with smaller area to gain experience")
}

func TestGenerateCropPlan_UnknownRegionStillCompletes(t *testing.T) {
	planner := newTestPlanner()

	req := validPlanRequest()
	req.Region = "UnknownRegion"

	plan, err := planner.GenerateCropPlan(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, plan.SowingPrediction.RegionDefaulted)
	assert.Equal(t, reference.DefaultRegion, plan.SowingPrediction.Region)
	assert.Equal(t, 8.0, plan.AreaAcres)
	assert.NotEmpty(t, plan.Timeline)
	assert.NotEmpty(t, plan.Risks)
	assert.Positive(t, plan.Financials.TotalInvestment)
}

func TestGenerateCropPlan_EquipmentByExperience(t *testing.T) {
	planner := newTestPlanner()

	beginner := validPlanRequest()
	plan, err := planner.GenerateCropPlan(context.Background(), beginner)
	require.NoError(t, err)
	assert.Contains(t, plan.Equipment, "Irrigation System")
	assert.Contains(t, plan.Equipment, "Weather Station")
	assert.Contains(t, plan.Equipment, "Seed Drill")

	expert := validPlanRequest()
	expert.Experience = models.ExperienceExpert
	plan, err = planner.GenerateCropPlan(context.Background(), expert)
	require.NoError(t, err)
	assert.Contains(t, plan.Equipment, "Precision Agriculture Tools")
	assert.Contains(t, plan.Equipment, "Drone")
	assert.NotContains(t, plan.Equipment, "Irrigation System")
}

func TestGenerateCropPlan_EquipmentDoesNotMutateCatalog(t *testing.T) {
	planner := newTestPlanner()
	catalog := reference.NewCatalog()

	before, _ := catalog.Crop("wheat")
	toolCount := len(before.Tools)

	for i := 0; i < 3; i++ {
		_, err := planner.GenerateCropPlan(context.Background(), validPlanRequest())
		require.NoError(t, err)
	}

	after, _ := planner.catalog.Crop("wheat")
	assert.Len(t, after.Tools, toolCount)
}

func TestGenerateCropPlan_RicePunjabRisks(t *testing.T) {
	planner := newTestPlanner()

	req := validPlanRequest()
	req.Crop = "rice"
	req.SoilType = "clay"
	req.CurrentMonth = 8

	plan, err := planner.GenerateCropPlan(context.Background(), req)
	require.NoError(t, err)

	factors := make([]string, 0, len(plan.Risks))
	for _, r := range plan.Risks {
		factors = append(factors, r.Factor)
	}
	// Rice in Punjab scores below 0.7 and trips the water scarcity rule
	assert.Contains(t, factors, "Climate Suitability")
	assert.Contains(t, factors, "Water Scarcity")
	assert.Contains(t, factors, "Market Price Fluctuation")
}

func TestGenerateCropPlan_MarketRiskAlwaysPresent(t *testing.T) {
	planner := newTestPlanner()

	plan, err := planner.GenerateCropPlan(context.Background(), validPlanRequest())
	require.NoError(t, err)

	var found bool
	for _, r := range plan.Risks {
		if r.Factor == "Market Price Fluctuation" {
			found = true
			assert.Equal(t, models.RiskImpactMedium, r.Impact)
		}
	}
	assert.True(t, found)
}

func TestGenerateCropPlan_UnknownSeedRate(t *testing.T) {
	planner := newTestPlanner()

	req := validPlanRequest()
	req.Crop = "tomato"

	plan, err := planner.GenerateCropPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "unknown", plan.Inputs.Seeds)
	// Tomato has no timeline of its own and borrows the rice stages
	assert.Len(t, plan.Timeline, 6)
}

func TestGenerateCropPlan_SandySoilRecommendation(t *testing.T) {
	planner := newTestPlanner()

	req := validPlanRequest()
	req.Crop = "maize"
	req.SoilType = "sandy"
	req.Experience = models.ExperienceIntermediate

	plan, err := planner.GenerateCropPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, plan.Recommendations, "Add organic matter to improve soil structure")
	assert.NotContains(t, plan.Recommendations, "Start with smaller area to gain experience")
}

func TestGenerateCropPlan_UnknownCrop(t *testing.T) {
	planner := newTestPlanner()

	req := validPlanRequest()
	req.Crop = "quinoa"

	plan, err := planner.GenerateCropPlan(context.Background(), req)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrUnknownCrop))
}

func TestGenerateCropPlan_Validation(t *testing.T) {
	planner := newTestPlanner()

	cases := []struct {
		name   string
		mutate func(*models.GenerateCropPlanRequest)
	}{
		{"zero farm size", func(r *models.GenerateCropPlanRequest) { r.FarmSizeAcres = 0 }},
		{"negative farm size", func(r *models.GenerateCropPlanRequest) { r.FarmSizeAcres = -2 }},
		{"negative budget", func(r *models.GenerateCropPlanRequest) { r.Budget = -1 }},
		{"month too low", func(r *models.GenerateCropPlanRequest) { r.CurrentMonth = 0 }},
		{"month too high", func(r *models.GenerateCropPlanRequest) { r.CurrentMonth = 13 }},
		{"bad experience", func(r *models.GenerateCropPlanRequest) { r.Experience = "wizard" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPlanRequest()
			tc.mutate(&req)
			_, err := planner.GenerateCropPlan(context.Background(), req)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}
