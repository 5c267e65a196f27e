package models

import (
	"time"
)

// Activity is a single carbon-generating action logged by a user.
//
// CO2Emissions is a snapshot of quantity * category emission factor taken
// when the row is written. It is never recomputed at read time, so a later
// change to the category's factor leaves existing rows untouched.
type Activity struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       uint64    `gorm:"not null;index" json:"user_id"`
	CategoryID   uint64    `gorm:"not null;index" json:"category_id"`
	Description  string    `gorm:"type:text" json:"description"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	CO2Emissions float64   `gorm:"column:co2_emissions;not null" json:"co2_emissions"`
	ActivityDate time.Time `gorm:"not null;index" json:"activity_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Category ActivityCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
