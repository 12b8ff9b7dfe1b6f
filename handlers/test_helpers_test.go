package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"bjj_atlas_go/config"
	"bjj_atlas_go/db"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared-memory name isolates tests while keeping a shared cache
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	if services.Storage == nil {
		services.Storage = services.NewLocalStorage(t.TempDir())
	}

	err = testDB.AutoMigrate(
		&models.City{},
		&models.Gym{},
		&models.ScrapeRun{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

func stringToPtr(s string) *string {
	return &s
}

func floatToPtr(f float64) *float64 {
	return &f
}
