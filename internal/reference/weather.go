package reference

import "advisory-service/internal/models"

// DefaultRegion is substituted whenever a requested region has no weather
// baseline. The substitution is deliberate degradation, not an error, and
// results carry a region_defaulted flag so callers can warn users.
const DefaultRegion = "Tamil Nadu"

var regionWeather = map[string]models.RegionWeather{
	"Tamil Nadu": {
		Region:      "Tamil Nadu",
		Temperature: models.SeasonalValues{Annual: 25, Kharif: 28, Rabi: 22, Zaid: 32},
		Rainfall:    models.SeasonalValues{Annual: 1000, Kharif: 600, Rabi: 200, Zaid: 100},
		Humidity:    models.SeasonalValues{Annual: 70, Kharif: 80, Rabi: 60, Zaid: 50},
	},
	"Punjab": {
		Region:      "Punjab",
		Temperature: models.SeasonalValues{Annual: 22, Kharif: 30, Rabi: 15, Zaid: 35},
		Rainfall:    models.SeasonalValues{Annual: 600, Kharif: 400, Rabi: 100, Zaid: 50},
		Humidity:    models.SeasonalValues{Annual: 60, Kharif: 70, Rabi: 45, Zaid: 40},
	},
	"Maharashtra": {
		Region:      "Maharashtra",
		Temperature: models.SeasonalValues{Annual: 26, Kharif: 30, Rabi: 20, Zaid: 35},
		Rainfall:    models.SeasonalValues{Annual: 1200, Kharif: 800, Rabi: 150, Zaid: 80},
		Humidity:    models.SeasonalValues{Annual: 65, Kharif: 75, Rabi: 55, Zaid: 45},
	},
	"Karnataka": {
		Region:      "Karnataka",
		Temperature: models.SeasonalValues{Annual: 24, Kharif: 28, Rabi: 18, Zaid: 30},
		Rainfall:    models.SeasonalValues{Annual: 1100, Kharif: 700, Rabi: 180, Zaid: 90},
		Humidity:    models.SeasonalValues{Annual: 68, Kharif: 78, Rabi: 58, Zaid: 48},
	},
}

// regionAdvisories holds region-specific recommendation strings appended to
// every prediction for that region. Unknown regions get none.
var regionAdvisories = map[string][]string{
	"Tamil Nadu": {
		"Consider water management strategies for summer months",
		"Monitor for pest outbreaks during monsoon season",
	},
	"Punjab": {
		"Implement water conservation techniques",
		"Consider crop rotation to maintain soil health",
	},
	"Maharashtra": {
		"Plan for variable rainfall patterns",
		"Consider drought-resistant crop varieties",
	},
}
