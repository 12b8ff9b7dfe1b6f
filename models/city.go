package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City represents a training destination with lifestyle and BJJ scores.
// Scored attributes are nominally 1-10 (out-of-range values are a data-quality
// defect reported by the validation audit, not rejected at write time).
// Nullable attributes are pointers; nil means "not rated yet".
type City struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string  `gorm:"size:100;not null;index" json:"name"`
	Country     string  `gorm:"size:100;not null" json:"country"`
	Continent   string  `gorm:"size:50;index" json:"continent"`
	Description *string `gorm:"type:text" json:"description"`
	Image       *string `json:"image"`
	Coordinates *string `gorm:"size:60" json:"coordinates"` // "(lng,lat)"
	Featured    bool    `json:"featured"`

	// BJJ scores
	GymDensity               *float64 `json:"gym_density"`
	BeltFriendliness         *float64 `json:"belt_friendliness"`
	InstructorQuality        *float64 `json:"instructor_quality"`
	DropInFriendliness       *float64 `json:"drop_in_friendliness"`
	CompetitionOpportunities *float64 `json:"competition_opportunities"`
	MonthlyCost              *float64 `json:"monthly_cost"` // typical monthly training cost, USD

	// Lifestyle scores
	CostOfLiving    *float64 `json:"cost_of_living"`
	VisaFriendliness *float64 `json:"visa_friendliness"`
	Safety          *float64 `json:"safety"`
	WeatherScore    *float64 `json:"weather_score"`
	Healthcare      *float64 `json:"healthcare"`
	BJJCommunity    *float64 `json:"bjj_community"`
	SocialLife      *float64 `json:"social_life"`
	WifiSpeed       *float64 `json:"wifi_speed"` // Mbps, unbounded

	EnglishFriendly    bool `json:"english_friendly"`
	RecoveryFacilities bool `json:"recovery_facilities"`
	RemoteWorkFriendly bool `json:"remote_work_friendly"`
	CoworkingSpaces    bool `json:"coworking_spaces"`

	TrainingStyles    *TrainingStyles    `gorm:"type:text" json:"training_styles"`
	ClassAvailability *ClassAvailability `gorm:"type:text" json:"class_availability"`
	Weather           *Weather           `gorm:"type:text" json:"weather"`

	GymCount *int `json:"gym_count"`

	// Relationships
	Gyms []Gym `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"gyms,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (City) TableName() string {
	return "cities"
}
