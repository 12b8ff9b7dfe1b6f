package serpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResultJSON = `{
	"local_results": [
		{
			"title": "Checkmat Lisbon",
			"address": "Rua A 1, Lisbon",
			"description": "Competition team",
			"phone": "+351 111 222 333",
			"website": "https://checkmat-lisbon.example",
			"rating": 4.8,
			"reviews": 132,
			"gps_coordinates": {"latitude": 38.7223, "longitude": -9.1393},
			"operating_hours": {"monday": "7AM-10PM"},
			"photos": [{"url": "https://photos.example/1.jpg"}, {"url": ""}]
		},
		{
			"title": "Bare Bones BJJ",
			"address": "Rua B 2, Lisbon"
		}
	]
}`

func overrideBaseURL(t *testing.T, url string) {
	t.Helper()
	prev := GoogleMapsBaseURL
	GoogleMapsBaseURL = url
	t.Cleanup(func() { GoogleMapsBaseURL = prev })
}

func TestSearchGyms(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_maps", r.URL.Query().Get("engine"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		queries = append(queries, r.URL.Query().Get("q"))
		fmt.Fprint(w, fullResultJSON)
	}))
	defer server.Close()
	overrideBaseURL(t, server.URL)

	svc := NewGoogleMapsService("test-key")
	results, err := svc.SearchGyms("Lisbon", "Portugal", "(-9.1393,38.7223)")
	require.NoError(t, err)

	require.Len(t, queries, 1)
	assert.Equal(t, "Brazilian Jiu Jitsu Lisbon Portugal", queries[0])

	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "Checkmat Lisbon", first.Name)
	assert.Equal(t, "Rua A 1, Lisbon", first.Address)
	require.NotNil(t, first.Description)
	assert.Equal(t, "Competition team", *first.Description)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.8, *first.Rating)
	assert.Equal(t, 132, first.ReviewCount)
	require.NotNil(t, first.Latitude)
	assert.Equal(t, 38.7223, *first.Latitude)
	require.NotNil(t, first.Longitude)
	assert.Equal(t, -9.1393, *first.Longitude)
	assert.Equal(t, map[string]string{"monday": "7AM-10PM"}, first.OpeningHours)
	// Empty photo URLs are dropped
	assert.Equal(t, []string{"https://photos.example/1.jpg"}, first.Photos)

	second := results[1]
	assert.Nil(t, second.Description)
	assert.Nil(t, second.Phone)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.Latitude)
}

func TestSearchGymsLocationFromCoordinates(t *testing.T) {
	var locations []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locations = append(locations, r.URL.Query().Get("ll"))
		fmt.Fprint(w, fullResultJSON)
	}))
	defer server.Close()
	overrideBaseURL(t, server.URL)

	svc := NewGoogleMapsService("test-key")

	_, err := svc.SearchGyms("Lisbon", "Portugal", "(-9.1393,38.7223)")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "@38.7223,-9.1393,13z", locations[0])

	// Without stored coordinates the textual location is used
	_, err = svc.SearchGyms("Lisbon", "Portugal", "")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Lisbon Portugal", locations[1])
}

func TestSearchGymsFallbackQuery(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		if len(queries) == 1 {
			fmt.Fprint(w, `{"local_results": []}`)
			return
		}
		fmt.Fprint(w, fullResultJSON)
	}))
	defer server.Close()
	overrideBaseURL(t, server.URL)

	svc := NewGoogleMapsService("test-key")
	results, err := svc.SearchGyms("Tbilisi", "Georgia", "")
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "Brazilian Jiu Jitsu Tbilisi Georgia", queries[0])
	assert.Equal(t, "BJJ Tbilisi Georgia", queries[1])
	assert.Len(t, results, 2)
}

func TestSearchGymsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()
	overrideBaseURL(t, server.URL)

	svc := NewGoogleMapsService("test-key")
	_, err := svc.SearchGyms("Lisbon", "Portugal", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGetProvider(t *testing.T) {
	p, err := GetProvider("google_maps", "key")
	require.NoError(t, err)
	assert.IsType(t, &GoogleMapsService{}, p)

	p, err = GetProvider("", "key")
	require.NoError(t, err)
	assert.IsType(t, &GoogleMapsService{}, p)

	_, err = GetProvider("yelp", "key")
	assert.Error(t, err)
}
