package serpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bjj_atlas_go/models"
)

var GoogleMapsBaseURL = "https://serpapi.com/search.json"

// GoogleMapsService implements Provider against SerpAPI's google_maps engine.
type GoogleMapsService struct {
	BaseService
	apiKey string
}

// NewGoogleMapsService creates a new instance
func NewGoogleMapsService(apiKey string) *GoogleMapsService {
	return &GoogleMapsService{
		BaseService: NewBaseService(),
		apiKey:      apiKey,
	}
}

// === SerpAPI wire structs ===

type gmSearchResponse struct {
	LocalResults []gmLocalResult `json:"local_results"`
}

type gmLocalResult struct {
	Title          string            `json:"title"`
	Address        string            `json:"address"`
	Description    string            `json:"description"`
	Phone          string            `json:"phone"`
	Website        string            `json:"website"`
	Rating         *float64          `json:"rating"`
	Reviews        int               `json:"reviews"`
	GPSCoordinates *gmGPSCoordinates `json:"gps_coordinates"`
	OperatingHours map[string]string `json:"operating_hours"`
	Photos         []gmPhoto         `json:"photos"`
}

type gmGPSCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type gmPhoto struct {
	URL string `json:"url"`
}

// SearchGyms implements Provider. It queries "Brazilian Jiu Jitsu {city}
// {country}" centered on the city's coordinates when available, retrying once
// with the shorter "BJJ" query when the first search returns nothing.
func (s *GoogleMapsService) SearchGyms(city, country, coordinates string) ([]GymResult, error) {
	location := city + " " + country
	if lat, lng, ok := models.ParseCoordinates(coordinates); ok {
		location = fmt.Sprintf("@%g,%g,13z", lat, lng)
	}

	results, err := s.search(fmt.Sprintf("Brazilian Jiu Jitsu %s %s", city, country), location)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		// Alternative query for sparse markets
		results, err = s.search(fmt.Sprintf("BJJ %s %s", city, country), location)
		if err != nil {
			return nil, err
		}
	}

	normalized := make([]GymResult, 0, len(results))
	for _, r := range results {
		normalized = append(normalized, normalizeResult(r))
	}
	return normalized, nil
}

func (s *GoogleMapsService) search(query, location string) ([]gmLocalResult, error) {
	params := url.Values{}
	params.Add("engine", "google_maps")
	params.Add("type", "search")
	params.Add("q", query)
	params.Add("ll", location)
	params.Add("api_key", s.apiKey)

	reqURL := fmt.Sprintf("%s?%s", GoogleMapsBaseURL, params.Encode())

	resp, err := s.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var searchResp gmSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return searchResp.LocalResults, nil
}

func normalizeResult(r gmLocalResult) GymResult {
	result := GymResult{
		Name:         r.Title,
		Address:      r.Address,
		Description:  optional(r.Description),
		Phone:        optional(r.Phone),
		Website:      optional(r.Website),
		Rating:       r.Rating,
		ReviewCount:  r.Reviews,
		OpeningHours: r.OperatingHours,
	}
	if r.GPSCoordinates != nil {
		lat := r.GPSCoordinates.Latitude
		lng := r.GPSCoordinates.Longitude
		result.Latitude = &lat
		result.Longitude = &lng
	}
	for _, p := range r.Photos {
		if p.URL != "" {
			result.Photos = append(result.Photos, p.URL)
		}
	}
	return result
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
