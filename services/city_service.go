package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"bjj_atlas_go/models"

	"gorm.io/gorm"
)

// CityCondition is one storage predicate assembled from a query parameter.
// All conditions for a request are ANDed together.
type CityCondition struct {
	SQL  string
	Args []interface{}
}

// paramColumn binds a recognized query parameter to a column and comparison.
type paramColumn struct {
	param  string
	column string
}

// 12 minimum-threshold metrics, in the order the API documents them.
var cityMinParams = []paramColumn{
	{"gymDensityMin", "gym_density"},
	{"beltFriendlinessMin", "belt_friendliness"},
	{"instructorQualityMin", "instructor_quality"},
	{"dropInFriendlinessMin", "drop_in_friendliness"},
	{"competitionOpportunitiesMin", "competition_opportunities"},
	{"visaFriendlinessMin", "visa_friendliness"},
	{"safetyMin", "safety"},
	{"weatherScoreMin", "weather_score"},
	{"healthcareMin", "healthcare"},
	{"bjjCommunityMin", "bjj_community"},
	{"socialLifeMin", "social_life"},
	{"wifiSpeedMin", "wifi_speed"},
}

var cityMaxParams = []paramColumn{
	{"monthlyCostMax", "monthly_cost"},
	{"costOfLivingMax", "cost_of_living"},
}

var cityBoolParams = []paramColumn{
	{"featured", "featured"},
	{"englishFriendly", "english_friendly"},
	{"recoveryFacilities", "recovery_facilities"},
	{"remoteWorkFriendly", "remote_work_friendly"},
	{"coworkingSpaces", "coworking_spaces"},
}

// CityConditions translates a flat query-parameter bag into storage
// predicates. Unrecognized keys and empty values are ignored; a malformed
// numeric value drops that one predicate (logged) rather than failing the
// request. An empty result means an unfiltered full scan.
func CityConditions(params map[string]string) []CityCondition {
	var conditions []CityCondition

	if v := params["continent"]; v != "" {
		conditions = append(conditions, CityCondition{"continent = ?", []interface{}{v}})
	}

	for _, p := range cityMinParams {
		raw := params[p.param]
		if raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("Ignoring non-numeric %s=%q", p.param, raw)
			continue
		}
		conditions = append(conditions, CityCondition{p.column + " >= ?", []interface{}{n}})
	}

	for _, p := range cityMaxParams {
		raw := params[p.param]
		if raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("Ignoring non-numeric %s=%q", p.param, raw)
			continue
		}
		conditions = append(conditions, CityCondition{p.column + " <= ?", []interface{}{n}})
	}

	for _, p := range cityBoolParams {
		raw := params[p.param]
		if raw == "" {
			continue
		}
		conditions = append(conditions, CityCondition{p.column + " = ?", []interface{}{raw == "true"}})
	}

	if v := params["search"]; v != "" {
		term := "%" + strings.ToLower(v) + "%"
		conditions = append(conditions, CityCondition{
			"(LOWER(name) LIKE ? OR LOWER(country) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?)",
			[]interface{}{term, term, term},
		})
	}

	return conditions
}

// ListCities returns all cities matching the given query parameters,
// unpaginated.
func ListCities(db *gorm.DB, params map[string]string) ([]models.City, error) {
	query := db.Model(&models.City{})
	for _, cond := range CityConditions(params) {
		query = query.Where(cond.SQL, cond.Args...)
	}

	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// GetCityByID fetches a single city with its gyms. Returns
// gorm.ErrRecordNotFound when the id is unknown.
func GetCityByID(db *gorm.DB, id string) (*models.City, error) {
	var city models.City
	if err := db.Preload("Gyms").Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// UpdateGymCount sets a city's cached gym count. Returns
// gorm.ErrRecordNotFound when the id is unknown.
func UpdateGymCount(db *gorm.DB, id string, gymCount int) (*models.City, error) {
	city, err := GetCityByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(city).Update("gym_count", gymCount).Error; err != nil {
		return nil, fmt.Errorf("failed to update gym count: %w", err)
	}
	city.GymCount = &gymCount
	return city, nil
}

// RefreshGymCount recomputes a city's gym count from the gyms table.
func RefreshGymCount(db *gorm.DB, cityID string) (int, error) {
	var count int64
	if err := db.Model(&models.Gym{}).Where("city_id = ?", cityID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count gyms: %w", err)
	}

	n := int(count)
	if err := db.Model(&models.City{}).Where("id = ?", cityID).Update("gym_count", n).Error; err != nil {
		return 0, fmt.Errorf("failed to store gym count: %w", err)
	}
	return n, nil
}

// SetCityImage stores the uploaded image URL on the city record.
func SetCityImage(db *gorm.DB, id, url string) (*models.City, error) {
	city, err := GetCityByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(city).Update("image", url).Error; err != nil {
		return nil, fmt.Errorf("failed to update city image: %w", err)
	}
	city.Image = &url
	return city, nil
}
