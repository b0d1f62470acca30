package models

// ============================================================================
// REQUEST MODELS
// ============================================================================

type PredictSowingRequest struct {
	Crop         string `json:"crop"`
	Region       string `json:"region"`
	SoilType     string `json:"soil_type"`
	CurrentMonth int    `json:"current_month"`
}

type GenerateCropPlanRequest struct {
	Crop          string         `json:"crop"`
	Region        string         `json:"region"`
	SoilType      string         `json:"soil_type"`
	FarmSizeAcres float64        `json:"farm_size_acres"`
	Budget        float64        `json:"budget"`
	Experience    ExperienceTier `json:"experience"`
	CurrentMonth  int            `json:"current_month"`
}

type RecordOutcomeRequest struct {
	Crop    string  `json:"crop"`
	Region  string  `json:"region"`
	Yield   float64 `json:"yield"`
	Success bool    `json:"success"`
}
