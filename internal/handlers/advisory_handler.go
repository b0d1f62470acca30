package handlers

import (
	"errors"
	"log/slog"
	"time"

	"advisory-service/internal/event"
	"advisory-service/internal/models"
	"advisory-service/internal/reference"
	"advisory-service/internal/repository"
	"advisory-service/internal/services"
	"advisory-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type AdvisoryHandler struct {
	catalog     *reference.Catalog
	predictor   *services.PredictorService
	planner     *services.PlannerService
	outcomes    *services.OutcomeService
	predictions *repository.PredictionRepository
	publisher   *event.Publisher
}

func NewAdvisoryHandler(
	catalog *reference.Catalog,
	predictor *services.PredictorService,
	planner *services.PlannerService,
	outcomes *services.OutcomeService,
	predictions *repository.PredictionRepository,
	publisher *event.Publisher,
) *AdvisoryHandler {
	return &AdvisoryHandler{
		catalog:     catalog,
		predictor:   predictor,
		planner:     planner,
		outcomes:    outcomes,
		predictions: predictions,
		publisher:   publisher,
	}
}

func (h *AdvisoryHandler) RegisterRoutes(app *fiber.App, m *Middleware) {
	publicGr := app.Group("advisory/api/v1")
	publicGr.Get("/crops", h.ListCrops)
	publicGr.Get("/crops/:id", h.GetCrop)
	publicGr.Get("/weather/:region", h.GetRegionWeather)

	protectedGr := app.Group("advisory/protected/api/v1", m.RequireAuth)
	protectedGr.Post("/predict-sowing", h.PredictSowing)
	protectedGr.Post("/generate-plan", h.GeneratePlan)
	protectedGr.Post("/outcomes", h.RecordOutcome)
	protectedGr.Get("/outcomes/:crop/:region", h.GetOutcome)
	protectedGr.Get("/predictions", h.ListPredictions)
}

type cropSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Varieties []string `json:"varieties"`
}

func (h *AdvisoryHandler) ListCrops(c fiber.Ctx) error {
	crops := []cropSummary{}
	for _, id := range h.catalog.CropIDs() {
		profile, _ := h.catalog.Crop(id)
		crops = append(crops, cropSummary{
			ID:        profile.ID,
			Name:      profile.Name,
			Varieties: profile.Varieties,
		})
	}
	return c.JSON(utils.CreateSuccessResponse(crops))
}

func (h *AdvisoryHandler) GetCrop(c fiber.Ctx) error {
	profile, ok := h.catalog.Crop(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(
			utils.CreateErrorResponse("CROP_NOT_FOUND", "crop not found"))
	}
	return c.JSON(utils.CreateSuccessResponse(profile))
}

func (h *AdvisoryHandler) GetRegionWeather(c fiber.Ctx) error {
	weather, ok := h.catalog.WeatherExact(c.Params("region"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(
			utils.CreateErrorResponse("REGION_NOT_FOUND", "weather data not available for this region"))
	}
	return c.JSON(utils.CreateSuccessResponse(weather))
}

func (h *AdvisoryHandler) PredictSowing(c fiber.Ctx) error {
	var req models.PredictSowingRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "invalid request body"))
	}
	if req.Crop == "" || req.Region == "" || req.SoilType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_INPUT", "crop, region and soil_type are required"))
	}
	if req.CurrentMonth == 0 {
		req.CurrentMonth = int(time.Now().Month())
	}

	result, err := h.predictor.PredictSowingWindow(c.Context(), req.Crop, req.Region, req.SoilType, req.CurrentMonth)
	if err != nil {
		return h.advisoryError(c, err)
	}

	h.logPrediction(c, req, result)
	return c.JSON(utils.CreateSuccessResponse(result))
}

func (h *AdvisoryHandler) GeneratePlan(c fiber.Ctx) error {
	var req models.GenerateCropPlanRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "invalid request body"))
	}
	if req.Crop == "" || req.Region == "" || req.SoilType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_INPUT", "crop, region and soil_type are required"))
	}
	if req.CurrentMonth == 0 {
		req.CurrentMonth = int(time.Now().Month())
	}
	if req.Experience == "" {
		req.Experience = models.ExperienceIntermediate
	}

	plan, err := h.planner.GenerateCropPlan(c.Context(), req)
	if err != nil {
		return h.advisoryError(c, err)
	}

	h.logPrediction(c, models.PredictSowingRequest{
		Crop:         req.Crop,
		Region:       req.Region,
		SoilType:     req.SoilType,
		CurrentMonth: req.CurrentMonth,
	}, &plan.SowingPrediction)

	if h.publisher != nil {
		evt := event.NewAdvisoryEvent(event.PlanGenerated, map[string]any{
			"crop":              plan.Crop,
			"region":            req.Region,
			"area_acres":        plan.AreaAcres,
			"suitability_score": plan.SowingPrediction.SuitabilityScore,
		})
		if err := h.publisher.PublishEvent(c.Context(), evt); err != nil {
			slog.Warn("Failed to publish plan event", "error", err)
		}
	}

	return c.JSON(utils.CreateSuccessResponse(plan))
}

func (h *AdvisoryHandler) RecordOutcome(c fiber.Ctx) error {
	var req models.RecordOutcomeRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "invalid request body"))
	}

	outcome, err := h.outcomes.RecordOutcome(c.Context(), req)
	if err != nil {
		return h.advisoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.CreateSuccessResponse(outcome))
}

func (h *AdvisoryHandler) GetOutcome(c fiber.Ctx) error {
	outcome, err := h.outcomes.GetOutcome(c.Context(), c.Params("crop"), c.Params("region"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_ERROR", "failed to fetch outcome"))
	}
	if outcome == nil {
		return c.Status(fiber.StatusNotFound).JSON(
			utils.CreateErrorResponse("OUTCOME_NOT_FOUND", "no outcome recorded for this crop and region"))
	}
	return c.JSON(utils.CreateSuccessResponse(outcome))
}

func (h *AdvisoryHandler) ListPredictions(c fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("MISSING_USER", "caller identity is required"))
	}
	if h.predictions == nil {
		return c.JSON(utils.CreateSuccessResponse([]models.PredictionRecord{}))
	}

	records, err := h.predictions.ListByUser(c.Context(), userID, 50)
	if err != nil {
		slog.Error("Failed to list prediction history", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_ERROR", "failed to fetch prediction history"))
	}
	return c.JSON(utils.CreateSuccessResponse(records))
}

// logPrediction appends the served prediction to the caller's history.
// Failures are logged, never surfaced.
func (h *AdvisoryHandler) logPrediction(c fiber.Ctx, req models.PredictSowingRequest, result *models.SuitabilityResult) {
	if h.predictions == nil {
		return
	}
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return
	}

	record := models.PredictionRecord{
		UserID:           userID,
		Crop:             result.Crop,
		Region:           req.Region,
		SoilType:         req.SoilType,
		RequestMonth:     req.CurrentMonth,
		SuitabilityScore: result.SuitabilityScore,
		Season:           result.Season,
	}
	if err := h.predictions.Create(c.Context(), &record); err != nil {
		slog.Warn("Failed to log prediction", "user_id", userID, "error", err)
	}
}

// advisoryError maps service errors onto the response envelope.
func (h *AdvisoryHandler) advisoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownCrop):
		return c.Status(fiber.StatusNotFound).JSON(
			utils.CreateErrorResponse("PREDICTION_UNAVAILABLE", "prediction unavailable for this crop"))
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_INPUT", err.Error()))
	default:
		slog.Error("Advisory request failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_ERROR", "internal server error"))
	}
}
