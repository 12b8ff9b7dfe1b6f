package serpapi

import (
	"fmt"
	"net/http"
	"time"
)

// Provider defines the interface for local-business search backends used to
// discover gyms. Implementations normalize their wire formats into GymResult.
type Provider interface {
	// SearchGyms looks up BJJ gyms for a city. coordinates is the city's
	// stored "(lng,lat)" string and may be empty, in which case the
	// implementation falls back to a textual location.
	SearchGyms(city, country, coordinates string) ([]GymResult, error)
}

// GymResult normalizes one search hit. Fields the backend did not supply are
// nil, never fabricated defaults.
type GymResult struct {
	Name         string
	Address      string
	Description  *string
	Phone        *string
	Website      *string
	Rating       *float64
	ReviewCount  int
	Latitude     *float64
	Longitude    *float64
	Photos       []string
	OpeningHours map[string]string
}

// BaseService provides common functionality like HTTP client
type BaseService struct {
	client *http.Client
}

// NewBaseService creates a configured base service
func NewBaseService() BaseService {
	return BaseService{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetProvider returns the implementation for the given engine name.
func GetProvider(engine, apiKey string) (Provider, error) {
	switch engine {
	case "", "google_maps":
		return NewGoogleMapsService(apiKey), nil
	default:
		return nil, fmt.Errorf("search provider not implemented for engine: %s", engine)
	}
}
