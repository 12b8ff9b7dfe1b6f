package services

import (
	"errors"
	"fmt"

	"bjj_atlas_go/models"
)

// MaxCompareCities caps a side-by-side comparison. Enforced here, not just in
// the UI, so every caller gets the same contract.
const MaxCompareCities = 3

// ErrTooManyCities signals a comparison request above MaxCompareCities.
var ErrTooManyCities = errors.New("too many cities to compare")

// RenderKind selects how a metric value is rendered into a cell.
type RenderKind string

const (
	RenderRating   RenderKind = "rating"
	RenderBool     RenderKind = "bool"
	RenderCurrency RenderKind = "currency"
	RenderText     RenderKind = "text"
)

// NotAvailable is the placeholder for a metric the city has no value for.
const NotAvailable = "N/A"

// MetricDef is one fixed row of the comparison matrix.
type MetricDef struct {
	Group string
	Label string
	Kind  RenderKind
	cell  func(models.City) string
}

// ComparisonCityHeader identifies one column of the matrix.
type ComparisonCityHeader struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Image   *string `json:"image"`
}

// ComparisonRow is one metric across all selected cities, cells in input
// city order.
type ComparisonRow struct {
	Group string     `json:"group"`
	Label string     `json:"label"`
	Kind  RenderKind `json:"kind"`
	Cells []string   `json:"cells"`
}

// ComparisonTable is the row-oriented metric-by-city matrix.
type ComparisonTable struct {
	Cities []ComparisonCityHeader `json:"cities"`
	Rows   []ComparisonRow        `json:"rows"`
}

func scoreCell(value *float64) string {
	d := Rating(value, 10)
	if !d.Available {
		return NotAvailable
	}
	return fmt.Sprintf("%.0f%%", d.Percent)
}

func boolCell(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func currencyCell(value *float64) string {
	if value == nil {
		return NotAvailable
	}
	return fmt.Sprintf("$%.0f", *value)
}

func styleCell(pick func(models.TrainingStyles) bool) func(models.City) string {
	return func(c models.City) string {
		if c.TrainingStyles == nil {
			return NotAvailable
		}
		return boolCell(pick(*c.TrainingStyles))
	}
}

func availabilityCell(pick func(models.ClassAvailability) bool) func(models.City) string {
	return func(c models.City) string {
		if c.ClassAvailability == nil {
			return NotAvailable
		}
		return boolCell(pick(*c.ClassAvailability))
	}
}

// comparisonMetrics is the fixed, ordered metric list. Output rows mirror
// this order exactly.
var comparisonMetrics = []MetricDef{
	{"BJJ Metrics", "Gym Density", RenderRating, func(c models.City) string { return scoreCell(c.GymDensity) }},
	{"BJJ Metrics", "Belt-Friendly Culture", RenderRating, func(c models.City) string { return scoreCell(c.BeltFriendliness) }},
	{"BJJ Metrics", "Instructor Quality", RenderRating, func(c models.City) string { return scoreCell(c.InstructorQuality) }},
	{"BJJ Metrics", "Drop-In Friendliness", RenderRating, func(c models.City) string { return scoreCell(c.DropInFriendliness) }},
	{"BJJ Metrics", "Competition Opportunities", RenderRating, func(c models.City) string { return scoreCell(c.CompetitionOpportunities) }},
	{"BJJ Metrics", "Monthly Training Cost", RenderCurrency, func(c models.City) string { return currencyCell(c.MonthlyCost) }},

	{"Training Styles", "Gi Training", RenderBool, styleCell(func(s models.TrainingStyles) bool { return s.Gi })},
	{"Training Styles", "No-Gi Training", RenderBool, styleCell(func(s models.TrainingStyles) bool { return s.NoGi })},
	{"Training Styles", "MMA Training", RenderBool, styleCell(func(s models.TrainingStyles) bool { return s.MMA })},
	{"Training Styles", "Self-Defense", RenderBool, styleCell(func(s models.TrainingStyles) bool { return s.SelfDefense })},

	{"Class Availability", "Morning Classes", RenderBool, availabilityCell(func(a models.ClassAvailability) bool { return a.Morning })},
	{"Class Availability", "Afternoon Classes", RenderBool, availabilityCell(func(a models.ClassAvailability) bool { return a.Afternoon })},
	{"Class Availability", "Evening Classes", RenderBool, availabilityCell(func(a models.ClassAvailability) bool { return a.Evening })},

	{"Lifestyle", "Cost of Living", RenderRating, func(c models.City) string { return scoreCell(c.CostOfLiving) }},
	{"Lifestyle", "Visa Friendliness", RenderRating, func(c models.City) string { return scoreCell(c.VisaFriendliness) }},
	{"Lifestyle", "Safety", RenderRating, func(c models.City) string { return scoreCell(c.Safety) }},
	{"Lifestyle", "Weather", RenderText, func(c models.City) string {
		if c.Weather == nil || c.Weather.Type == "" {
			return NotAvailable
		}
		if c.Weather.Description != "" {
			return fmt.Sprintf("%s (%s)", c.Weather.Type, c.Weather.Description)
		}
		return c.Weather.Type
	}},
	{"Lifestyle", "Healthcare", RenderRating, func(c models.City) string { return scoreCell(c.Healthcare) }},
	{"Lifestyle", "BJJ Community", RenderRating, func(c models.City) string { return scoreCell(c.BJJCommunity) }},
	{"Lifestyle", "Social Life", RenderRating, func(c models.City) string { return scoreCell(c.SocialLife) }},
	{"Lifestyle", "English Friendly", RenderBool, func(c models.City) string { return boolCell(c.EnglishFriendly) }},

	{"Remote Work", "Remote Work Friendly", RenderBool, func(c models.City) string { return boolCell(c.RemoteWorkFriendly) }},
	{"Remote Work", "Wifi Speed", RenderText, func(c models.City) string {
		if c.WifiSpeed == nil {
			return NotAvailable
		}
		return fmt.Sprintf("%.0f Mbps", *c.WifiSpeed)
	}},
	{"Remote Work", "Coworking Spaces", RenderBool, func(c models.City) string { return boolCell(c.CoworkingSpaces) }},
	{"Remote Work", "Recovery Facilities", RenderBool, func(c models.City) string { return boolCell(c.RecoveryFacilities) }},
}

// ComparisonMetricCount is the fixed number of rows every comparison has.
func ComparisonMetricCount() int {
	return len(comparisonMetrics)
}

// BuildComparison assembles the metric-by-city matrix for up to
// MaxCompareCities cities. Column order mirrors the input order; row order is
// the fixed metric order. Missing values render as NotAvailable, never as an
// error.
func BuildComparison(cities []models.City) (*ComparisonTable, error) {
	if len(cities) > MaxCompareCities {
		return nil, ErrTooManyCities
	}

	table := &ComparisonTable{
		Cities: make([]ComparisonCityHeader, 0, len(cities)),
		Rows:   make([]ComparisonRow, 0, len(comparisonMetrics)),
	}

	for _, c := range cities {
		table.Cities = append(table.Cities, ComparisonCityHeader{
			ID:      c.ID,
			Name:    c.Name,
			Country: c.Country,
			Image:   c.Image,
		})
	}

	for _, metric := range comparisonMetrics {
		row := ComparisonRow{
			Group: metric.Group,
			Label: metric.Label,
			Kind:  metric.Kind,
			Cells: make([]string, 0, len(cities)),
		}
		for _, c := range cities {
			row.Cells = append(row.Cells, metric.cell(c))
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
