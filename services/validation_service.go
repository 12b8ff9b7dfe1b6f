package services

import (
	"fmt"
	"regexp"

	"bjj_atlas_go/models"

	"gorm.io/gorm"
)

// ValidationResult lists the data-quality issues found on one city.
type ValidationResult struct {
	CityID string   `json:"city_id"`
	City   string   `json:"city"`
	Issues []string `json:"issues"`
}

var coordinatesPattern = regexp.MustCompile(`^\(-?\d+(\.\d+)?,-?\d+(\.\d+)?\)$`)

// Scored attributes nominally in [1,10]. Out-of-range values are reported,
// never rejected at write time.
var cityScoreFields = []struct {
	name  string
	value func(models.City) *float64
}{
	{"gym_density", func(c models.City) *float64 { return c.GymDensity }},
	{"belt_friendliness", func(c models.City) *float64 { return c.BeltFriendliness }},
	{"instructor_quality", func(c models.City) *float64 { return c.InstructorQuality }},
	{"drop_in_friendliness", func(c models.City) *float64 { return c.DropInFriendliness }},
	{"competition_opportunities", func(c models.City) *float64 { return c.CompetitionOpportunities }},
	{"cost_of_living", func(c models.City) *float64 { return c.CostOfLiving }},
	{"visa_friendliness", func(c models.City) *float64 { return c.VisaFriendliness }},
	{"safety", func(c models.City) *float64 { return c.Safety }},
	{"weather_score", func(c models.City) *float64 { return c.WeatherScore }},
	{"healthcare", func(c models.City) *float64 { return c.Healthcare }},
	{"bjj_community", func(c models.City) *float64 { return c.BJJCommunity }},
	{"social_life", func(c models.City) *float64 { return c.SocialLife }},
}

// ValidateCity audits one city record and returns its issues, if any.
func ValidateCity(c models.City) []string {
	var issues []string

	if c.Coordinates == nil || !coordinatesPattern.MatchString(*c.Coordinates) {
		issues = append(issues, "invalid coordinates format")
	}

	for _, f := range cityScoreFields {
		v := f.value(c)
		if v != nil && (*v < 1 || *v > 10) {
			issues = append(issues, fmt.Sprintf("%s rating out of range (1-10): %g", f.name, *v))
		}
	}

	if c.MonthlyCost != nil && *c.MonthlyCost < 0 {
		issues = append(issues, fmt.Sprintf("monthly_cost is negative: %g", *c.MonthlyCost))
	}
	if c.WifiSpeed != nil && *c.WifiSpeed < 0 {
		issues = append(issues, fmt.Sprintf("wifi_speed is negative: %g", *c.WifiSpeed))
	}

	return issues
}

// ValidateCities audits every stored city against the schema's soft
// invariants and returns one entry per city with issues. The report also
// flags gym-count drift against the gyms table.
func ValidateCities(db *gorm.DB) ([]ValidationResult, error) {
	var cities []models.City
	if err := db.Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	var results []ValidationResult
	for _, c := range cities {
		issues := ValidateCity(c)

		var gymCount int64
		if err := db.Model(&models.Gym{}).Where("city_id = ?", c.ID).Count(&gymCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count gyms for %s: %w", c.Name, err)
		}
		if c.GymCount != nil && int64(*c.GymCount) != gymCount {
			issues = append(issues, fmt.Sprintf("gym_count is %d but %d gyms are stored", *c.GymCount, gymCount))
		}

		if len(issues) > 0 {
			results = append(results, ValidationResult{CityID: c.ID, City: c.Name, Issues: issues})
		}
	}

	return results, nil
}

// ValidateGyms audits stored gyms: missing required fields and negative
// review counts.
func ValidateGyms(db *gorm.DB) ([]ValidationResult, error) {
	var gyms []models.Gym
	if err := db.Find(&gyms).Error; err != nil {
		return nil, fmt.Errorf("failed to load gyms: %w", err)
	}

	var results []ValidationResult
	for _, g := range gyms {
		var issues []string
		if g.Name == "" {
			issues = append(issues, "missing name")
		}
		if g.Address == "" {
			issues = append(issues, "missing address")
		}
		if g.ReviewCount < 0 {
			issues = append(issues, fmt.Sprintf("review_count is negative: %d", g.ReviewCount))
		}
		if g.Rating != nil && (*g.Rating < 0 || *g.Rating > 5) {
			issues = append(issues, fmt.Sprintf("rating out of range (0-5): %g", *g.Rating))
		}
		if len(issues) > 0 {
			results = append(results, ValidationResult{CityID: g.ID, City: g.Name, Issues: issues})
		}
	}

	return results, nil
}
