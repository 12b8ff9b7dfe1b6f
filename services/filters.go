package services

import (
	"strings"

	"bjj_atlas_go/models"
)

// FilterSpec is a sparse set of optional constraints over City or Gym
// collections. A nil/zero field means "no constraint". The same value is used
// by the in-memory filter engine and reconstructed from query parameters on
// the server side, so filter semantics live in exactly one place.
//
// Missing-value policy: an entity's absent numeric score counts as 0, so it
// passes a minimum filter only when the threshold is <= 0 and always passes a
// maximum filter. An absent boolean never satisfies an active require-flag.
type FilterSpec struct {
	// Minimum-threshold numeric filters (entity field >= threshold)
	GymDensityMin               *float64 `json:"gymDensityMin,omitempty"`
	BeltFriendlinessMin         *float64 `json:"beltFriendlinessMin,omitempty"`
	InstructorQualityMin        *float64 `json:"instructorQualityMin,omitempty"`
	DropInFriendlinessMin       *float64 `json:"dropInFriendlinessMin,omitempty"`
	CompetitionOpportunitiesMin *float64 `json:"competitionOpportunitiesMin,omitempty"`
	VisaFriendlinessMin         *float64 `json:"visaFriendlinessMin,omitempty"`
	SafetyMin                   *float64 `json:"safetyMin,omitempty"`
	WeatherScoreMin             *float64 `json:"weatherScoreMin,omitempty"`
	HealthcareMin               *float64 `json:"healthcareMin,omitempty"`
	BJJCommunityMin             *float64 `json:"bjjCommunityMin,omitempty"`
	SocialLifeMin               *float64 `json:"socialLifeMin,omitempty"`
	WifiSpeedMin                *float64 `json:"wifiSpeedMin,omitempty"`

	// Maximum-threshold numeric filters (entity field <= threshold)
	MonthlyCostMax *float64 `json:"monthlyCostMax,omitempty"`
	CostOfLivingMax *float64 `json:"costOfLivingMax,omitempty"`

	// Boolean-require filters (true requires the entity flag to be true;
	// false imposes no constraint)
	EnglishFriendly    bool `json:"englishFriendly,omitempty"`
	RecoveryFacilities bool `json:"recoveryFacilities,omitempty"`
	RemoteWorkFriendly bool `json:"remoteWorkFriendly,omitempty"`
	CoworkingSpaces    bool `json:"coworkingSpaces,omitempty"`

	// Structured-subset filters: every sub-flag set true here must also be
	// true on the entity
	TrainingStyles    *models.TrainingStyles    `json:"trainingStyles,omitempty"`
	ClassAvailability *models.ClassAvailability `json:"classAvailability,omitempty"`

	// Set-membership filter over Weather.Type; empty means unconstrained
	WeatherTypes []string `json:"weatherTypes,omitempty"`

	// Exact-match filter
	Continent string `json:"continent,omitempty"`

	// Case-insensitive substring over name/country/description (cities) or
	// name/address/description (gyms)
	Search string `json:"search,omitempty"`

	// Gym-only constraints
	RatingMin     *float64 `json:"ratingMin,omitempty"`
	MonthlyFeeMin *float64 `json:"monthlyFeeMin,omitempty"`
	MonthlyFeeMax *float64 `json:"monthlyFeeMax,omitempty"`
}

// FilterCities returns the sublist of cities satisfying every active
// constraint in spec, preserving input order. The input is never mutated and
// no constraint combination is an error: an unmatchable spec yields an empty
// result.
func FilterCities(cities []models.City, spec FilterSpec) []models.City {
	result := make([]models.City, 0, len(cities))
	for _, city := range cities {
		if cityMatches(city, spec) {
			result = append(result, city)
		}
	}
	return result
}

// FilterGyms returns the sublist of gyms satisfying every active constraint
// in spec, preserving input order.
func FilterGyms(gyms []models.Gym, spec FilterSpec) []models.Gym {
	result := make([]models.Gym, 0, len(gyms))
	for _, gym := range gyms {
		if gymMatches(gym, spec) {
			result = append(result, gym)
		}
	}
	return result
}

func cityMatches(c models.City, spec FilterSpec) bool {
	mins := []struct {
		threshold *float64
		value     *float64
	}{
		{spec.GymDensityMin, c.GymDensity},
		{spec.BeltFriendlinessMin, c.BeltFriendliness},
		{spec.InstructorQualityMin, c.InstructorQuality},
		{spec.DropInFriendlinessMin, c.DropInFriendliness},
		{spec.CompetitionOpportunitiesMin, c.CompetitionOpportunities},
		{spec.VisaFriendlinessMin, c.VisaFriendliness},
		{spec.SafetyMin, c.Safety},
		{spec.WeatherScoreMin, c.WeatherScore},
		{spec.HealthcareMin, c.Healthcare},
		{spec.BJJCommunityMin, c.BJJCommunity},
		{spec.SocialLifeMin, c.SocialLife},
		{spec.WifiSpeedMin, c.WifiSpeed},
	}
	for _, m := range mins {
		if !meetsMin(m.value, m.threshold) {
			return false
		}
	}

	if !meetsMax(c.MonthlyCost, spec.MonthlyCostMax) {
		return false
	}
	if !meetsMax(c.CostOfLiving, spec.CostOfLivingMax) {
		return false
	}

	if spec.EnglishFriendly && !c.EnglishFriendly {
		return false
	}
	if spec.RecoveryFacilities && !c.RecoveryFacilities {
		return false
	}
	if spec.RemoteWorkFriendly && !c.RemoteWorkFriendly {
		return false
	}
	if spec.CoworkingSpaces && !c.CoworkingSpaces {
		return false
	}

	if !hasStyles(c.TrainingStyles, spec.TrainingStyles) {
		return false
	}
	if !hasAvailability(c.ClassAvailability, spec.ClassAvailability) {
		return false
	}

	if len(spec.WeatherTypes) > 0 {
		if c.Weather == nil || !containsFold(spec.WeatherTypes, c.Weather.Type) {
			return false
		}
	}

	if spec.Continent != "" && c.Continent != spec.Continent {
		return false
	}

	if spec.Search != "" {
		if !containsAnyFold(spec.Search, c.Name, c.Country, deref(c.Description)) {
			return false
		}
	}

	return true
}

func gymMatches(g models.Gym, spec FilterSpec) bool {
	if !meetsMin(g.Rating, spec.RatingMin) {
		return false
	}
	if !meetsMin(g.MonthlyFee, spec.MonthlyFeeMin) {
		return false
	}
	if !meetsMax(g.MonthlyFee, spec.MonthlyFeeMax) {
		return false
	}
	if !hasStyles(g.TrainingStyles, spec.TrainingStyles) {
		return false
	}
	if spec.Search != "" {
		if !containsAnyFold(spec.Search, g.Name, g.Address, deref(g.Description)) {
			return false
		}
	}
	return true
}

// meetsMin applies the minimum-threshold family. A nil entity value counts
// as 0, so it fails any strictly positive threshold.
func meetsMin(value, threshold *float64) bool {
	if threshold == nil {
		return true
	}
	v := 0.0
	if value != nil {
		v = *value
	}
	return v >= *threshold
}

// meetsMax applies the maximum-threshold family; a nil entity value (0)
// always passes.
func meetsMax(value, threshold *float64) bool {
	if threshold == nil {
		return true
	}
	v := 0.0
	if value != nil {
		v = *value
	}
	return v <= *threshold
}

// hasStyles checks the structured-subset rule: every style required by the
// filter must be offered by the entity. An absent filter imposes nothing; an
// absent entity value fails any required style.
func hasStyles(have, want *models.TrainingStyles) bool {
	if want == nil {
		return true
	}
	required := []struct{ want, have bool }{
		{want.Gi, have != nil && have.Gi},
		{want.NoGi, have != nil && have.NoGi},
		{want.MMA, have != nil && have.MMA},
		{want.SelfDefense, have != nil && have.SelfDefense},
	}
	for _, r := range required {
		if r.want && !r.have {
			return false
		}
	}
	return true
}

func hasAvailability(have, want *models.ClassAvailability) bool {
	if want == nil {
		return true
	}
	required := []struct{ want, have bool }{
		{want.Morning, have != nil && have.Morning},
		{want.Afternoon, have != nil && have.Afternoon},
		{want.Evening, have != nil && have.Evening},
	}
	for _, r := range required {
		if r.want && !r.have {
			return false
		}
	}
	return true
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func containsAnyFold(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
