package models

import "gorm.io/gorm"

// Medication entries keep their onboarding order via Position.
// Only the name is required to save.
type Medication struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Position  int    `gorm:"not null"`
	Name      string `gorm:"not null"`
	Dosage    string
	Frequency string
	Notes     string `gorm:"type:text"`
}
