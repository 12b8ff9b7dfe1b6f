package services

import (
	"errors"
	"fmt"
	"strconv"

	"bjj_atlas_go/models"
	"bjj_atlas_go/services/serpapi"

	"gorm.io/gorm"
)

// Most BJJ gyms run gi, no-gi and self-defense programs; search providers do
// not expose style information, so scraped gyms start from this assumption.
var defaultTrainingStyles = models.TrainingStyles{
	Gi:          true,
	NoGi:        true,
	MMA:         false,
	SelfDefense: true,
}

// GetGymsByCity returns all gyms attached to a city, best rated first with
// unrated gyms at the end.
func GetGymsByCity(db *gorm.DB, cityID string) ([]models.Gym, error) {
	var gyms []models.Gym
	if err := db.Where("city_id = ?", cityID).
		Order("rating IS NULL, rating DESC").
		Find(&gyms).Error; err != nil {
		return nil, fmt.Errorf("failed to list gyms: %w", err)
	}
	return gyms, nil
}

// GymFilterFromParams reconstructs a gym FilterSpec from query parameters.
// Unrecognized keys and malformed numbers are ignored.
func GymFilterFromParams(params map[string]string) FilterSpec {
	var spec FilterSpec

	parse := func(key string) *float64 {
		raw := params[key]
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return &n
	}
	spec.RatingMin = parse("ratingMin")
	spec.MonthlyFeeMin = parse("monthlyFeeMin")
	spec.MonthlyFeeMax = parse("monthlyFeeMax")
	spec.Search = params["search"]

	styles := models.TrainingStyles{
		Gi:          params["gi"] == "true",
		NoGi:        params["noGi"] == "true",
		MMA:         params["mma"] == "true",
		SelfDefense: params["selfDefense"] == "true",
	}
	if styles.Gi || styles.NoGi || styles.MMA || styles.SelfDefense {
		spec.TrainingStyles = &styles
	}

	return spec
}

// CreateGym persists a manually submitted gym. Name, Address and CityID are
// required; free-text fields are sanitized at this boundary.
func CreateGym(db *gorm.DB, gym *models.Gym) error {
	if gym.Name == "" || gym.Address == "" || gym.CityID == nil || *gym.CityID == "" {
		return ErrMissingGymFields
	}

	gym.Name = SanitizeText(gym.Name)
	gym.Address = SanitizeText(gym.Address)
	gym.Description = SanitizeTextPtr(gym.Description)

	if err := db.Create(gym).Error; err != nil {
		return fmt.Errorf("failed to create gym: %w", err)
	}
	return nil
}

// ErrMissingGymFields signals a create request without the required fields.
var ErrMissingGymFields = errors.New("name, address and city_id are required")

// GymFromSearchResult maps a provider hit into a gym row. Fields the provider
// did not supply stay nil except training styles, which fall back to the
// default assumption.
func GymFromSearchResult(cityID string, res serpapi.GymResult) models.Gym {
	styles := defaultTrainingStyles

	gym := models.Gym{
		CityID:         &cityID,
		Name:           SanitizeText(res.Name),
		Address:        SanitizeText(res.Address),
		Description:    SanitizeTextPtr(res.Description),
		Phone:          res.Phone,
		Website:        res.Website,
		Rating:         res.Rating,
		ReviewCount:    res.ReviewCount,
		Photos:         res.Photos,
		OpeningHours:   res.OpeningHours,
		TrainingStyles: &styles,
	}
	if res.Latitude != nil && res.Longitude != nil {
		coords := models.FormatCoordinates(*res.Latitude, *res.Longitude)
		gym.Coordinates = &coords
	}
	return gym
}

// UpsertScrapedGym inserts or updates a scraped gym keyed on (name, address).
// On update every scraped field is last-write-wins; the curated fields
// (MonthlyFee, DropInFee, Verified) are left untouched. Returns true when a
// new row was created.
func UpsertScrapedGym(db *gorm.DB, scraped models.Gym) (bool, error) {
	var existing models.Gym
	err := db.Where("name = ? AND address = ?", scraped.Name, scraped.Address).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up gym: %w", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&scraped).Error; err != nil {
			return false, fmt.Errorf("failed to insert gym: %w", err)
		}
		return true, nil
	}

	existing.CityID = scraped.CityID
	existing.Description = scraped.Description
	existing.Phone = scraped.Phone
	existing.Website = scraped.Website
	existing.Coordinates = scraped.Coordinates
	existing.Rating = scraped.Rating
	existing.ReviewCount = scraped.ReviewCount
	existing.Photos = scraped.Photos
	existing.OpeningHours = scraped.OpeningHours
	existing.TrainingStyles = scraped.TrainingStyles

	if err := db.Save(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to update gym: %w", err)
	}
	return false, nil
}
