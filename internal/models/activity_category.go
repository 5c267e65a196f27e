package models

// ActivityCategory is read-only reference data seeded at startup. The
// emission factor is CO2 per unit of the category's quantity.
type ActivityCategory struct {
	ID             uint64  `gorm:"primarykey" json:"id"`
	Name           string  `gorm:"type:varchar(100);not null" json:"name"`
	Description    string  `gorm:"type:text" json:"description"`
	EmissionFactor float64 `gorm:"not null" json:"emission_factor"`
	Unit           string  `gorm:"type:varchar(50);not null" json:"unit"`
}
