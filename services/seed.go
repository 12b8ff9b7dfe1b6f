package services

import (
	"log"

	"bjj_atlas_go/models"

	"gorm.io/gorm"
)

type citySeed struct {
	Name             string
	Country          string
	Continent        string
	Description      string
	Coordinates      string
	Featured         bool
	GymDensity       float64
	BeltFriendliness float64
	MonthlyCost      float64
	CostOfLiving     float64
	VisaFriendliness float64
	Safety           float64
	WeatherScore     float64
	BJJCommunity     float64
	WifiSpeed        float64
	EnglishFriendly  bool
	RemoteWork       bool
	Styles           models.TrainingStyles
	Availability     models.ClassAvailability
	Weather          models.Weather
}

var featuredCitySeeds = []citySeed{
	{
		Name:             "Rio de Janeiro",
		Country:          "Brazil",
		Continent:        "South America",
		Description:      "Birthplace of Brazilian Jiu-Jitsu with the densest concentration of historic academies in the world.",
		Coordinates:      "(-43.1729,-22.9068)",
		Featured:         true,
		GymDensity:       10,
		BeltFriendliness: 9,
		MonthlyCost:      80,
		CostOfLiving:     1200,
		VisaFriendliness: 8,
		Safety:           5,
		WeatherScore:     8,
		BJJCommunity:     10,
		WifiSpeed:        60,
		EnglishFriendly:  false,
		RemoteWork:       true,
		Styles:           models.TrainingStyles{Gi: true, NoGi: true, MMA: true, SelfDefense: true},
		Availability:     models.ClassAvailability{Morning: true, Afternoon: true, Evening: true},
		Weather:          models.Weather{Type: "tropical", Description: "Hot and humid year round"},
	},
	{
		Name:             "Bangkok",
		Country:          "Thailand",
		Continent:        "Asia",
		Description:      "Fast-growing BJJ scene alongside the Muay Thai ecosystem, with affordable long-stay training options.",
		Coordinates:      "(100.5018,13.7563)",
		Featured:         true,
		GymDensity:       7,
		BeltFriendliness: 8,
		MonthlyCost:      120,
		CostOfLiving:     1100,
		VisaFriendliness: 7,
		Safety:           7,
		WeatherScore:     6,
		BJJCommunity:     7,
		WifiSpeed:        150,
		EnglishFriendly:  true,
		RemoteWork:       true,
		Styles:           models.TrainingStyles{Gi: true, NoGi: true, MMA: true, SelfDefense: true},
		Availability:     models.ClassAvailability{Morning: true, Afternoon: false, Evening: true},
		Weather:          models.Weather{Type: "tropical", Description: "Hot with a rainy season"},
	},
	{
		Name:             "Lisbon",
		Country:          "Portugal",
		Continent:        "Europe",
		Description:      "European BJJ hub with a strong competition calendar and a large remote-work community.",
		Coordinates:      "(-9.1393,38.7223)",
		Featured:         true,
		GymDensity:       6,
		BeltFriendliness: 8,
		MonthlyCost:      90,
		CostOfLiving:     1800,
		VisaFriendliness: 9,
		Safety:           9,
		WeatherScore:     9,
		BJJCommunity:     8,
		WifiSpeed:        200,
		EnglishFriendly:  true,
		RemoteWork:       true,
		Styles:           models.TrainingStyles{Gi: true, NoGi: true, MMA: false, SelfDefense: true},
		Availability:     models.ClassAvailability{Morning: true, Afternoon: true, Evening: true},
		Weather:          models.Weather{Type: "mediterranean", Description: "Mild winters, dry summers"},
	},
}

// SeedCities populates the cities table with the featured destinations
// when the table is empty. Safe to call on every startup.
func SeedCities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.City{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[SEED] Cities already present (%d), skipping seed", count)
		return nil
	}

	for _, s := range featuredCitySeeds {
		city := models.City{
			Name:              s.Name,
			Country:           s.Country,
			Continent:         s.Continent,
			Description:       strPtr(s.Description),
			Coordinates:       strPtr(s.Coordinates),
			Featured:          s.Featured,
			GymDensity:        floatPtr(s.GymDensity),
			BeltFriendliness:  floatPtr(s.BeltFriendliness),
			MonthlyCost:       floatPtr(s.MonthlyCost),
			CostOfLiving:      floatPtr(s.CostOfLiving),
			VisaFriendliness:  floatPtr(s.VisaFriendliness),
			Safety:            floatPtr(s.Safety),
			WeatherScore:      floatPtr(s.WeatherScore),
			BJJCommunity:      floatPtr(s.BJJCommunity),
			WifiSpeed:         floatPtr(s.WifiSpeed),
			EnglishFriendly:   s.EnglishFriendly,
			RemoteWorkFriendly: s.RemoteWork,
			TrainingStyles:    &models.TrainingStyles{Gi: s.Styles.Gi, NoGi: s.Styles.NoGi, MMA: s.Styles.MMA, SelfDefense: s.Styles.SelfDefense},
			ClassAvailability: &models.ClassAvailability{Morning: s.Availability.Morning, Afternoon: s.Availability.Afternoon, Evening: s.Availability.Evening},
			Weather:           &models.Weather{Type: s.Weather.Type, Description: s.Weather.Description},
		}
		if err := db.Create(&city).Error; err != nil {
			return err
		}
	}

	log.Printf("[SEED] Created %d featured cities", len(featuredCitySeeds))
	return nil
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
