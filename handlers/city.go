package handlers

import (
	"errors"
	"log"
	"net/http"

	"bjj_atlas_go/db"
	"bjj_atlas_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GetCitiesHandler returns cities matching the query string filters
// GET /api/cities?continent=Asia&gymDensityMin=5&search=tokyo...
func GetCitiesHandler(c echo.Context) error {
	params := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	cities, err := services.ListCities(db.DB, params)
	if err != nil {
		log.Printf("[ERROR] Failed to list cities: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cities")
	}

	return c.JSON(http.StatusOK, cities)
}

// GetCityHandler returns a single city with its gyms preloaded
// GET /api/cities/:id
func GetCityHandler(c echo.Context) error {
	id := c.Param("id")

	city, err := services.GetCityByID(db.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "City not found")
		}
		log.Printf("[ERROR] Failed to fetch city %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch city")
	}

	return c.JSON(http.StatusOK, city)
}

// UpdateGymCountHandler sets the cached gym count for a city
// PATCH /api/cities/:id/gym-count
func UpdateGymCountHandler(c echo.Context) error {
	id := c.Param("id")

	var req struct {
		GymCount *int `json:"gym_count"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.GymCount == nil || *req.GymCount < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "gym_count must be a non-negative integer")
	}

	city, err := services.UpdateGymCount(db.DB, id, *req.GymCount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "City not found")
		}
		log.Printf("[ERROR] Failed to update gym count for city %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update gym count")
	}

	return c.JSON(http.StatusOK, city)
}

// UploadCityImageHandler stores a hero image for a city
// POST /api/cities/:id/image (multipart form, field "image")
func UploadCityImageHandler(c echo.Context) error {
	id := c.Param("id")

	if _, err := services.GetCityByID(db.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "City not found")
		}
		log.Printf("[ERROR] Failed to fetch city %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch city")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	key := services.GenerateCityImageKey(id, file.Filename)
	result, err := services.Storage.Upload(c.Request().Context(), file, key)
	if err != nil {
		log.Printf("[ERROR] Failed to upload image for city %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload image")
	}

	city, err := services.SetCityImage(db.DB, id, result.URL)
	if err != nil {
		log.Printf("[ERROR] Failed to save image URL for city %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save image")
	}

	return c.JSON(http.StatusOK, city)
}
