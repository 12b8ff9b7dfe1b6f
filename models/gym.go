package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gym represents a training facility, optionally attached to a City.
// (Name, Address) is unique: it is the idempotency key the scraper upserts on.
type Gym struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Nullable: a scraped gym may be awaiting city assignment
	CityID *string `gorm:"type:uuid;index" json:"city_id"`
	City   *City   `gorm:"foreignKey:CityID" json:"city,omitempty"`

	Name    string `gorm:"size:200;not null;uniqueIndex:idx_gym_name_address" json:"name"`
	Address string `gorm:"size:300;not null;uniqueIndex:idx_gym_name_address" json:"address"`

	Description *string `gorm:"type:text" json:"description"`
	Website     *string `json:"website"`
	Phone       *string `gorm:"size:50" json:"phone"`
	Email       *string `gorm:"size:200" json:"email"`
	Coordinates *string `gorm:"size:60" json:"coordinates"` // "(lng,lat)"

	Rating      *float64 `json:"rating"` // 0-5, from reviews
	ReviewCount int      `json:"review_count"`

	Photos       StringList      `gorm:"type:text" json:"photos"`
	Amenities    StringList      `gorm:"type:text" json:"amenities"`
	OpeningHours OpeningHours    `gorm:"type:text" json:"opening_hours"`
	TrainingStyles *TrainingStyles `gorm:"type:text" json:"training_styles"`

	// Curated fields, never overwritten by the scraper
	DropInFee  *float64 `json:"drop_in_fee"`
	MonthlyFee *float64 `json:"monthly_fee"`
	Verified   bool     `json:"verified"`
}

// BeforeCreate hook to generate UUID
func (g *Gym) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Gym) TableName() string {
	return "gyms"
}
