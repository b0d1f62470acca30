package reference

import (
	"sort"
	"strings"

	"advisory-service/internal/models"
)

// Catalog is the immutable agronomic reference data set. It is built once at
// process start and injected into services; nothing mutates it afterwards.
type Catalog struct {
	crops    map[string]models.CropProfile
	weather  map[string]models.RegionWeather
	advisory map[string][]string
}

// NewCatalog builds the catalog from the static reference tables.
func NewCatalog() *Catalog {
	return &Catalog{
		crops:    cropProfiles,
		weather:  regionWeather,
		advisory: regionAdvisories,
	}
}

// Crop looks up a crop profile by identifier, case-insensitively.
func (c *Catalog) Crop(id string) (models.CropProfile, bool) {
	p, ok := c.crops[strings.ToLower(id)]
	return p, ok
}

// CropIDs returns all crop identifiers in sorted order.
func (c *Catalog) CropIDs() []string {
	ids := make([]string, 0, len(c.crops))
	for id := range c.crops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Weather returns the weather baseline for a region. Unknown regions fall
// back to DefaultRegion; the second return reports whether the fallback was
// taken.
func (c *Catalog) Weather(region string) (models.RegionWeather, bool) {
	if w, ok := c.weather[region]; ok {
		return w, false
	}
	return c.weather[DefaultRegion], true
}

// WeatherExact returns the baseline only when the region is known.
func (c *Catalog) WeatherExact(region string) (models.RegionWeather, bool) {
	w, ok := c.weather[region]
	return w, ok
}

// RegionAdvisories returns region-specific recommendation strings, empty for
// unknown regions.
func (c *Catalog) RegionAdvisories(region string) []string {
	return c.advisory[region]
}

// SeedRate returns the per-acre seeding requirement for a crop.
func (c *Catalog) SeedRate(cropID string) (models.SeedRate, bool) {
	r, ok := seedRates[strings.ToLower(cropID)]
	return r, ok
}

// Timeline returns the growth timeline for a crop, falling back to the rice
// timeline for crops without one.
func (c *Catalog) Timeline(cropID string) []models.TimelineStage {
	if t, ok := cropTimelines[strings.ToLower(cropID)]; ok {
		return t
	}
	return cropTimelines[timelineFallbackCrop]
}
