package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"bjj_atlas_go/db"
	"bjj_atlas_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGymsByCityHandler(t *testing.T) {
	setupTestDB(t)

	city := createTestCity(t, "Bangkok", "Thailand", "Asia", 7)
	for _, name := range []string{"Bangkok BJJ", "Sukhumvit Grappling"} {
		gym := models.Gym{CityID: &city.ID, Name: name, Address: name + " St"}
		require.NoError(t, db.DB.Create(&gym).Error)
	}
	other := createTestCity(t, "Tokyo", "Japan", "Asia", 9)
	gym := models.Gym{CityID: &other.ID, Name: "Tokyo BJJ", Address: "1-1 Shibuya"}
	require.NoError(t, db.DB.Create(&gym).Error)

	_, c, rec := setupEcho(http.MethodGet, "/api/cities/"+city.ID+"/gyms", nil)
	c.SetParamNames("cityId")
	c.SetParamValues(city.ID)

	require.NoError(t, GetGymsByCityHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var gyms []models.Gym
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gyms))
	assert.Len(t, gyms, 2)
	for _, g := range gyms {
		require.NotNil(t, g.CityID)
		assert.Equal(t, city.ID, *g.CityID)
	}
}

func TestGetGymsByCityHandlerFilters(t *testing.T) {
	setupTestDB(t)

	city := createTestCity(t, "Lisbon", "Portugal", "Europe", 6)
	strong := models.Gym{CityID: &city.ID, Name: "Checkmat Lisbon", Address: "Rua A 1", Rating: floatToPtr(4.8)}
	require.NoError(t, db.DB.Create(&strong).Error)
	weak := models.Gym{CityID: &city.ID, Name: "Garage Mats", Address: "Rua B 2", Rating: floatToPtr(3.9)}
	require.NoError(t, db.DB.Create(&weak).Error)

	_, c, rec := setupEcho(http.MethodGet, "/api/cities/"+city.ID+"/gyms?ratingMin=4.5", nil)
	c.SetParamNames("cityId")
	c.SetParamValues(city.ID)

	require.NoError(t, GetGymsByCityHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var gyms []models.Gym
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gyms))
	require.Len(t, gyms, 1)
	assert.Equal(t, "Checkmat Lisbon", gyms[0].Name)
}

func TestCreateGymHandler(t *testing.T) {
	setupTestDB(t)

	city := createTestCity(t, "Lisbon", "Portugal", "Europe", 6)

	t.Run("creates a gym", func(t *testing.T) {
		body := strings.NewReader(`{"name": "Checkmat Lisbon", "address": "Rua A 1", "city_id": "` + city.ID + `"}`)
		_, c, rec := setupEcho(http.MethodPost, "/api/gyms", body)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		require.NoError(t, CreateGymHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got models.Gym
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Checkmat Lisbon", got.Name)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		body := strings.NewReader(`{"name": "No Address"}`)
		_, c, _ := setupEcho(http.MethodPost, "/api/gyms", body)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		err := CreateGymHandler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
