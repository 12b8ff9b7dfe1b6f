package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"bjj_atlas_go/db"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services"

	"github.com/labstack/echo/v4"
)

func compareCitiesFromQuery(c echo.Context) ([]models.City, error) {
	raw := strings.TrimSpace(c.QueryParam("ids"))
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "ids query parameter is required")
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "ids query parameter is required")
	}
	if len(ids) > services.MaxCompareCities {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("at most %d cities can be compared", services.MaxCompareCities))
	}

	var found []models.City
	if err := db.DB.Where("id IN ?", ids).Find(&found).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch cities for comparison: %v", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cities")
	}

	byID := make(map[string]models.City, len(found))
	for _, city := range found {
		byID[city.ID] = city
	}

	// Preserve the order the client asked for
	cities := make([]models.City, 0, len(ids))
	for _, id := range ids {
		city, ok := byID[id]
		if !ok {
			return nil, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("City %s not found", id))
		}
		cities = append(cities, city)
	}
	return cities, nil
}

// CompareCitiesHandler returns the comparison table for the requested cities
// GET /api/cities/compare?ids=id1,id2,id3
func CompareCitiesHandler(c echo.Context) error {
	cities, err := compareCitiesFromQuery(c)
	if err != nil {
		return err
	}

	table, err := services.BuildComparison(cities)
	if err != nil {
		if errors.Is(err, services.ErrTooManyCities) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] Failed to build comparison: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build comparison")
	}

	return c.JSON(http.StatusOK, table)
}

// ExportComparisonHandler returns the comparison table as an Excel download
// GET /api/cities/compare/export?ids=id1,id2,id3
func ExportComparisonHandler(c echo.Context) error {
	cities, err := compareCitiesFromQuery(c)
	if err != nil {
		return err
	}

	table, err := services.BuildComparison(cities)
	if err != nil {
		if errors.Is(err, services.ErrTooManyCities) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] Failed to build comparison: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build comparison")
	}

	buf, err := services.ExportComparison(table)
	if err != nil {
		log.Printf("[ERROR] Failed to export comparison: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export comparison")
	}

	filename := fmt.Sprintf("city-comparison-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
