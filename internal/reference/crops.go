package reference

import "advisory-service/internal/models"

// cropProfiles is the static crop requirement table. Climate bands, soils,
// sowing windows and input regimens follow standard Indian agronomy
// references for each crop.
var cropProfiles = map[string]models.CropProfile{
	"rice": {
		ID:        "rice",
		Name:      "Rice",
		Varieties: []string{"ADT-43", "IR-64", "Pusa Basmati", "Swarna"},
		Temperature: models.ClimateRange{Min: 20, Max: 35, Optimal: 25},
		Rainfall:    models.ClimateRange{Min: 1000, Max: 2000, Optimal: 1500},
		Humidity:    models.ClimateRange{Min: 60, Max: 90, Optimal: 75},
		Soils:       []string{"clay", "loamy", "silt"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 15"},
			"rabi":   {Start: "November", End: "December", Optimal: "November 15"},
		},
		Tools: []string{"Tractor", "Puddler", "Transplanter", "Combine Harvester"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 20-20-0 @ 250 kg/acre",
			TopDress:       "Urea @ 100 kg/acre",
			Micronutrients: "Zinc Sulphate @ 25 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Pesticides"},
		WaterRequirement: "High",
		ExpectedYield:    models.YieldRange{Min: 3, Max: 5, Unit: "tons/acre"},
	},
	"wheat": {
		ID:        "wheat",
		Name:      "Wheat",
		Varieties: []string{"HD-2967", "PBW-343", "UP-2338", "K-9107"},
		Temperature: models.ClimateRange{Min: 15, Max: 25, Optimal: 20},
		Rainfall:    models.ClimateRange{Min: 400, Max: 800, Optimal: 600},
		Humidity:    models.ClimateRange{Min: 40, Max: 70, Optimal: 55},
		Soils:       []string{"loamy", "clay", "silt"},
		SowingWindows: map[string]models.SowingWindow{
			"rabi": {Start: "November", End: "December", Optimal: "November 15"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Combine Harvester", "Thresher"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 12-32-16 @ 150 kg/acre",
			TopDress:       "Urea @ 80 kg/acre",
			Micronutrients: "Boron @ 2 kg/acre",
		},
		PestManagement:   []string{"Fungicides", "Insecticides", "IPM"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 20, Max: 30, Unit: "quintals/acre"},
	},
	"maize": {
		ID:        "maize",
		Name:      "Maize",
		Varieties: []string{"African Tall", "Ganga Safed", "Pioneer", "Syngenta"},
		Temperature: models.ClimateRange{Min: 18, Max: 32, Optimal: 25},
		Rainfall:    models.ClimateRange{Min: 500, Max: 1200, Optimal: 800},
		Humidity:    models.ClimateRange{Min: 50, Max: 80, Optimal: 65},
		Soils:       []string{"loamy", "sandy", "clay"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 1"},
			"rabi":   {Start: "January", End: "February", Optimal: "January 15"},
			"zaid":   {Start: "March", End: "April", Optimal: "March 15"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Sprayer", "Harvester"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 17-17-17 @ 200 kg/acre",
			TopDress:       "Urea @ 120 kg/acre",
			Micronutrients: "Zinc Sulphate @ 20 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Control"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 25, Max: 35, Unit: "quintals/acre"},
	},
	"cotton": {
		ID:        "cotton",
		Name:      "Cotton",
		Varieties: []string{"Suraj", "Bunny", "RCH-2", "Ankur"},
		Temperature: models.ClimateRange{Min: 20, Max: 35, Optimal: 28},
		Rainfall:    models.ClimateRange{Min: 600, Max: 1200, Optimal: 900},
		Humidity:    models.ClimateRange{Min: 60, Max: 85, Optimal: 72},
		Soils:       []string{"black", "red", "loamy"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 1"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Sprayer", "Cotton Picker"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 17-17-17 @ 200 kg/acre",
			TopDress:       "Urea @ 100 kg/acre",
			Micronutrients: "Boron @ 1.5 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Pesticides"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 15, Max: 20, Unit: "quintals/acre"},
	},
	"sugarcane": {
		ID:        "sugarcane",
		Name:      "Sugarcane",
		Varieties: []string{"Co-86032", "Co-0238", "Co-1148", "Co-15023"},
		Temperature: models.ClimateRange{Min: 20, Max: 38, Optimal: 30},
		Rainfall:    models.ClimateRange{Min: 800, Max: 1500, Optimal: 1200},
		Humidity:    models.ClimateRange{Min: 65, Max: 90, Optimal: 80},
		Soils:       []string{"loamy", "clay", "silt"},
		SowingWindows: map[string]models.SowingWindow{
			"spring": {Start: "February", End: "March", Optimal: "February 15"},
			"autumn": {Start: "September", End: "October", Optimal: "September 15"},
		},
		Tools: []string{"Tractor", "Planter", "Harvester", "Crusher"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 20-20-0 @ 300 kg/acre",
			TopDress:       "Urea @ 150 kg/acre",
			Micronutrients: "Zinc Sulphate @ 30 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Control"},
		WaterRequirement: "High",
		ExpectedYield:    models.YieldRange{Min: 300, Max: 400, Unit: "tons/acre"},
	},
	"corn": {
		ID:        "corn",
		Name:      "Corn",
		Varieties: []string{"Sweet Corn", "Field Corn", "Popcorn", "Dent Corn"},
		Temperature: models.ClimateRange{Min: 18, Max: 32, Optimal: 25},
		Rainfall:    models.ClimateRange{Min: 500, Max: 1200, Optimal: 800},
		Humidity:    models.ClimateRange{Min: 50, Max: 80, Optimal: 65},
		Soils:       []string{"loamy", "sandy", "clay"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 1"},
			"rabi":   {Start: "January", End: "February", Optimal: "January 15"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Sprayer", "Harvester"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 17-17-17 @ 200 kg/acre",
			TopDress:       "Urea @ 120 kg/acre",
			Micronutrients: "Zinc Sulphate @ 20 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Control"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 25, Max: 35, Unit: "quintals/acre"},
	},
	"soybean": {
		ID:        "soybean",
		Name:      "Soybean",
		Varieties: []string{"JS-335", "JS-9305", "MAUS-47", "PK-472"},
		Temperature: models.ClimateRange{Min: 20, Max: 35, Optimal: 28},
		Rainfall:    models.ClimateRange{Min: 600, Max: 1000, Optimal: 800},
		Humidity:    models.ClimateRange{Min: 60, Max: 85, Optimal: 72},
		Soils:       []string{"loamy", "clay", "silt"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 15"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Sprayer", "Combine"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 12-32-16 @ 150 kg/acre",
			TopDress:       "Urea @ 80 kg/acre",
			Micronutrients: "Boron @ 2 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Pesticides"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 15, Max: 25, Unit: "quintals/acre"},
	},
	"mustard": {
		ID:        "mustard",
		Name:      "Mustard",
		Varieties: []string{"Pusa Bold", "Pusa Agrani", "Varuna", "Kranti"},
		Temperature: models.ClimateRange{Min: 15, Max: 25, Optimal: 20},
		Rainfall:    models.ClimateRange{Min: 300, Max: 600, Optimal: 450},
		Humidity:    models.ClimateRange{Min: 40, Max: 70, Optimal: 55},
		Soils:       []string{"loamy", "clay", "silt"},
		SowingWindows: map[string]models.SowingWindow{
			"rabi": {Start: "October", End: "November", Optimal: "October 15"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Sprayer"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 18-46-0 @ 100 kg/acre",
			TopDress:       "Urea @ 60 kg/acre",
			Micronutrients: "Boron @ 1 kg/acre",
		},
		PestManagement:   []string{"IPM", "Fungicides", "Insecticides"},
		WaterRequirement: "Low",
		ExpectedYield:    models.YieldRange{Min: 8, Max: 12, Unit: "quintals/acre"},
	},
	"chickpea": {
		ID:        "chickpea",
		Name:      "Chickpea",
		Varieties: []string{"Pusa-372", "Pusa-391", "JG-11", "KAK-2"},
		Temperature: models.ClimateRange{Min: 15, Max: 25, Optimal: 20},
		Rainfall:    models.ClimateRange{Min: 400, Max: 700, Optimal: 550},
		Humidity:    models.ClimateRange{Min: 45, Max: 75, Optimal: 60},
		Soils:       []string{"loamy", "clay", "silt"},
		SowingWindows: map[string]models.SowingWindow{
			"rabi": {Start: "October", End: "November", Optimal: "October 15"},
		},
		Tools: []string{"Tractor", "Seed Drill", "Sprayer"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 12-32-16 @ 100 kg/acre",
			TopDress:       "Urea @ 50 kg/acre",
			Micronutrients: "Zinc Sulphate @ 15 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Control"},
		WaterRequirement: "Low",
		ExpectedYield:    models.YieldRange{Min: 12, Max: 18, Unit: "quintals/acre"},
	},
	"tomato": {
		ID:        "tomato",
		Name:      "Tomato",
		Varieties: []string{"Pusa Ruby", "Pusa Early Dwarf", "Arka Vikas", "Hybrid"},
		Temperature: models.ClimateRange{Min: 20, Max: 30, Optimal: 25},
		Rainfall:    models.ClimateRange{Min: 400, Max: 800, Optimal: 600},
		Humidity:    models.ClimateRange{Min: 50, Max: 80, Optimal: 65},
		Soils:       []string{"loamy", "sandy", "clay"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 15"},
			"rabi":   {Start: "November", End: "December", Optimal: "November 15"},
			"zaid":   {Start: "February", End: "March", Optimal: "February 15"},
		},
		Tools: []string{"Tractor", "Transplanter", "Sprayer", "Harvester"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 20-20-0 @ 150 kg/acre",
			TopDress:       "Urea @ 100 kg/acre",
			Micronutrients: "Boron @ 2 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Pesticides"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 200, Max: 300, Unit: "quintals/acre"},
	},
	"onion": {
		ID:        "onion",
		Name:      "Onion",
		Varieties: []string{"Pusa Red", "Pusa White", "Arka Kalyan", "Hybrid"},
		Temperature: models.ClimateRange{Min: 15, Max: 30, Optimal: 22},
		Rainfall:    models.ClimateRange{Min: 300, Max: 600, Optimal: 450},
		Humidity:    models.ClimateRange{Min: 40, Max: 70, Optimal: 55},
		Soils:       []string{"loamy", "sandy", "clay"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "May", End: "June", Optimal: "May 15"},
			"rabi":   {Start: "October", End: "November", Optimal: "October 15"},
		},
		Tools: []string{"Tractor", "Transplanter", "Sprayer"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 12-32-16 @ 120 kg/acre",
			TopDress:       "Urea @ 80 kg/acre",
			Micronutrients: "Zinc Sulphate @ 20 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Control"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 150, Max: 250, Unit: "quintals/acre"},
	},
	"potato": {
		ID:        "potato",
		Name:      "Potato",
		Varieties: []string{"Kufri Chandramukhi", "Kufri Jyoti", "Kufri Bahar", "Hybrid"},
		Temperature: models.ClimateRange{Min: 15, Max: 25, Optimal: 20},
		Rainfall:    models.ClimateRange{Min: 400, Max: 700, Optimal: 550},
		Humidity:    models.ClimateRange{Min: 50, Max: 80, Optimal: 65},
		Soils:       []string{"loamy", "sandy", "clay"},
		SowingWindows: map[string]models.SowingWindow{
			"rabi": {Start: "October", End: "November", Optimal: "October 15"},
			"zaid": {Start: "January", End: "February", Optimal: "January 15"},
		},
		Tools: []string{"Tractor", "Planter", "Sprayer", "Harvester"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 15-15-15 @ 200 kg/acre",
			TopDress:       "Urea @ 120 kg/acre",
			Micronutrients: "Boron @ 2 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Pesticides"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 200, Max: 300, Unit: "quintals/acre"},
	},
	"chili": {
		ID:        "chili",
		Name:      "Chili",
		Varieties: []string{"Pusa Jwala", "Pusa Sadabahar", "Arka Lohit", "Hybrid"},
		Temperature: models.ClimateRange{Min: 20, Max: 35, Optimal: 28},
		Rainfall:    models.ClimateRange{Min: 400, Max: 800, Optimal: 600},
		Humidity:    models.ClimateRange{Min: 50, Max: 80, Optimal: 65},
		Soils:       []string{"loamy", "sandy", "clay"},
		SowingWindows: map[string]models.SowingWindow{
			"kharif": {Start: "June", End: "July", Optimal: "June 15"},
			"rabi":   {Start: "November", End: "December", Optimal: "November 15"},
		},
		Tools: []string{"Tractor", "Transplanter", "Sprayer"},
		Fertilizers: models.FertilizerRegimen{
			Basal:          "NPK 20-20-0 @ 150 kg/acre",
			TopDress:       "Urea @ 100 kg/acre",
			Micronutrients: "Boron @ 2 kg/acre",
		},
		PestManagement:   []string{"IPM", "Biological Control", "Chemical Pesticides"},
		WaterRequirement: "Medium",
		ExpectedYield:    models.YieldRange{Min: 80, Max: 120, Unit: "quintals/acre"},
	},
}
