package handlers

import (
	"errors"
	"log"
	"net/http"

	"bjj_atlas_go/db"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services"

	"github.com/labstack/echo/v4"
)

// GetGymsByCityHandler returns gyms in a city, best rated first, optionally
// narrowed by filter query parameters
// GET /api/cities/:cityId/gyms?ratingMin=4&gi=true&search=...
func GetGymsByCityHandler(c echo.Context) error {
	cityID := c.Param("cityId")

	gyms, err := services.GetGymsByCity(db.DB, cityID)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch gyms for city %s: %v", cityID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch gyms")
	}

	params := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	gyms = services.FilterGyms(gyms, services.GymFilterFromParams(params))

	return c.JSON(http.StatusOK, gyms)
}

// CreateGymHandler creates a manually curated gym entry
// POST /api/gyms
func CreateGymHandler(c echo.Context) error {
	var gym models.Gym
	if err := c.Bind(&gym); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := services.CreateGym(db.DB, &gym); err != nil {
		if errors.Is(err, services.ErrMissingGymFields) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] Failed to create gym: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create gym")
	}

	return c.JSON(http.StatusCreated, gym)
}
