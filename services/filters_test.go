package services

import (
	"testing"

	"bjj_atlas_go/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 {
	return &v
}

func testCities() []models.City {
	return []models.City{
		{
			ID:               "tokyo",
			Name:             "Tokyo",
			Country:          "Japan",
			Continent:        "Asia",
			Description:      strPtr("World-class competition scene"),
			GymDensity:       f64(9),
			BeltFriendliness: f64(7),
			Safety:           f64(9),
			MonthlyCost:      f64(150),
			CostOfLiving:     f64(2200),
			WifiSpeed:        f64(300),
			EnglishFriendly:  false,
			CoworkingSpaces:  true,
			TrainingStyles:   &models.TrainingStyles{Gi: true, NoGi: true},
			ClassAvailability: &models.ClassAvailability{Morning: true, Evening: true},
			Weather:          &models.Weather{Type: "temperate", Description: "Four seasons"},
		},
		{
			ID:               "bangkok",
			Name:             "Bangkok",
			Country:          "Thailand",
			Continent:        "Asia",
			GymDensity:       f64(4),
			BeltFriendliness: f64(8),
			Safety:           f64(7),
			MonthlyCost:      f64(120),
			CostOfLiving:     f64(1100),
			WifiSpeed:        f64(150),
			EnglishFriendly:  true,
			TrainingStyles:   &models.TrainingStyles{Gi: true, NoGi: true, MMA: true},
			ClassAvailability: &models.ClassAvailability{Morning: true},
			Weather:          &models.Weather{Type: "tropical"},
		},
		{
			ID:        "rio",
			Name:      "Rio de Janeiro",
			Country:   "Brazil",
			Continent: "South America",
			// No scores recorded yet
			EnglishFriendly: false,
			TrainingStyles:  nil,
			Weather:         &models.Weather{Type: "tropical"},
		},
	}
}

func cityIDs(cities []models.City) []string {
	ids := make([]string, 0, len(cities))
	for _, c := range cities {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterCitiesEmptySpecIsIdentity(t *testing.T) {
	cities := testCities()

	got := FilterCities(cities, FilterSpec{})

	assert.Equal(t, cityIDs(cities), cityIDs(got))
}

func TestFilterCitiesPreservesOrder(t *testing.T) {
	cities := testCities()

	// Both Tokyo and Bangkok are in Asia; Rio is excluded
	got := FilterCities(cities, FilterSpec{Continent: "Asia"})

	assert.Equal(t, []string{"tokyo", "bangkok"}, cityIDs(got))
}

func TestFilterCitiesIdempotent(t *testing.T) {
	cities := testCities()
	spec := FilterSpec{GymDensityMin: f64(5)}

	once := FilterCities(cities, spec)
	twice := FilterCities(once, spec)

	assert.Equal(t, cityIDs(once), cityIDs(twice))
}

func TestFilterCities(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{
			name: "minimum threshold excludes below",
			spec: FilterSpec{GymDensityMin: f64(5)},
			want: []string{"tokyo"},
		},
		{
			name: "missing score counts as zero for minimums",
			spec: FilterSpec{SafetyMin: f64(1)},
			want: []string{"tokyo", "bangkok"},
		},
		{
			name: "zero threshold passes missing scores",
			spec: FilterSpec{SafetyMin: f64(0)},
			want: []string{"tokyo", "bangkok", "rio"},
		},
		{
			name: "maximum threshold excludes above",
			spec: FilterSpec{CostOfLivingMax: f64(1500)},
			want: []string{"bangkok", "rio"},
		},
		{
			name: "missing value always passes maximums",
			spec: FilterSpec{MonthlyCostMax: f64(100)},
			want: []string{"rio"},
		},
		{
			name: "boolean require flag",
			spec: FilterSpec{EnglishFriendly: true},
			want: []string{"bangkok"},
		},
		{
			name: "style subset requires every flag",
			spec: FilterSpec{TrainingStyles: &models.TrainingStyles{Gi: true, MMA: true}},
			want: []string{"bangkok"},
		},
		{
			name: "missing styles fail any required style",
			spec: FilterSpec{TrainingStyles: &models.TrainingStyles{Gi: true}},
			want: []string{"tokyo", "bangkok"},
		},
		{
			name: "availability subset",
			spec: FilterSpec{ClassAvailability: &models.ClassAvailability{Morning: true, Evening: true}},
			want: []string{"tokyo"},
		},
		{
			name: "weather type membership is case insensitive",
			spec: FilterSpec{WeatherTypes: []string{"TROPICAL"}},
			want: []string{"bangkok", "rio"},
		},
		{
			name: "search matches name case insensitively",
			spec: FilterSpec{Search: "rio"},
			want: []string{"rio"},
		},
		{
			name: "search matches country",
			spec: FilterSpec{Search: "thai"},
			want: []string{"bangkok"},
		},
		{
			name: "search matches description",
			spec: FilterSpec{Search: "competition"},
			want: []string{"tokyo"},
		},
		{
			name: "conjunction of constraints",
			spec: FilterSpec{Continent: "Asia", EnglishFriendly: true, CostOfLivingMax: f64(1500)},
			want: []string{"bangkok"},
		},
		{
			name: "unmatchable spec yields empty result",
			spec: FilterSpec{GymDensityMin: f64(5), Continent: "Europe"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCities(testCities(), tt.spec)
			assert.Equal(t, tt.want, cityIDs(got))
		})
	}
}

func TestFilterGyms(t *testing.T) {
	gyms := []models.Gym{
		{
			ID:             "alpha",
			Name:           "Alpha BJJ",
			Address:        "1 Main St",
			Rating:         f64(4.8),
			MonthlyFee:     f64(120),
			TrainingStyles: &models.TrainingStyles{Gi: true, NoGi: true},
		},
		{
			ID:      "beta",
			Name:    "Beta Grappling",
			Address: "2 Beach Rd",
			Rating:  f64(4.1),
			// Fee not curated yet
			TrainingStyles: &models.TrainingStyles{NoGi: true},
		},
		{
			ID:      "gamma",
			Name:    "Gamma Academy",
			Address: "3 Hill Ave",
			// No rating yet
			MonthlyFee: f64(60),
		},
	}

	gymIDs := func(gs []models.Gym) []string {
		ids := make([]string, 0, len(gs))
		for _, g := range gs {
			ids = append(ids, g.ID)
		}
		return ids
	}

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{
			name: "empty spec is identity",
			spec: FilterSpec{},
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "rating minimum treats missing as zero",
			spec: FilterSpec{RatingMin: f64(4.5)},
			want: []string{"alpha"},
		},
		{
			name: "fee maximum passes missing fee",
			spec: FilterSpec{MonthlyFeeMax: f64(100)},
			want: []string{"beta", "gamma"},
		},
		{
			name: "fee minimum fails missing fee",
			spec: FilterSpec{MonthlyFeeMin: f64(50)},
			want: []string{"alpha", "gamma"},
		},
		{
			name: "gi style requirement",
			spec: FilterSpec{TrainingStyles: &models.TrainingStyles{Gi: true}},
			want: []string{"alpha"},
		},
		{
			name: "search over name and address",
			spec: FilterSpec{Search: "beach"},
			want: []string{"beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterGyms(gyms, tt.spec)
			assert.Equal(t, tt.want, gymIDs(got))
		})
	}
}
