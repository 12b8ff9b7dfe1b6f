package handlers

import (
	"log"
	"net/http"

	"bjj_atlas_go/db"
	"bjj_atlas_go/services"

	"github.com/labstack/echo/v4"
)

// GetCityValidationHandler runs the data quality audit over cities
// GET /api/validation/cities
func GetCityValidationHandler(c echo.Context) error {
	results, err := services.ValidateCities(db.DB)
	if err != nil {
		log.Printf("[ERROR] City validation failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to validate cities")
	}
	return c.JSON(http.StatusOK, results)
}

// GetGymValidationHandler runs the data quality audit over gyms
// GET /api/validation/gyms
func GetGymValidationHandler(c echo.Context) error {
	results, err := services.ValidateGyms(db.DB)
	if err != nil {
		log.Printf("[ERROR] Gym validation failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to validate gyms")
	}
	return c.JSON(http.StatusOK, results)
}
