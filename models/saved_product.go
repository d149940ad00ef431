package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedProduct is a diary snapshot of an analyzed product. At most one entry
// exists per barcode per user; saves for a known barcode overwrite it.
type SavedProduct struct {
	ID                string `gorm:"type:varchar(36);primaryKey"`
	UserID            uint   `gorm:"index:idx_user_barcode,unique;not null"`
	Barcode           string `gorm:"index:idx_user_barcode,unique;not null"`
	Brand             string
	Name              string
	Calories          float64
	Protein           float64
	Carbs             float64
	Fat               float64
	SuitabilityStatus string
	Analysis          string `gorm:"type:text"`
	NovaGroup         int
	SavedDate         time.Time `gorm:"index"`
}

// NewSavedProduct snapshots the fields the diary keeps from a full record.
func NewSavedProduct(details ProductDetails, barcode string, userID uint) SavedProduct {
	m := details.NutritionData.Macronutrients
	return SavedProduct{
		ID:                uuid.NewString(),
		UserID:            userID,
		Barcode:           barcode,
		Brand:             details.Brand,
		Name:              details.Name,
		Calories:          m.Calories,
		Protein:           m.Protein,
		Carbs:             m.Carbohydrates,
		Fat:               m.Fat,
		SuitabilityStatus: string(details.SuitabilityStatus()),
		Analysis:          details.Analysis,
		NovaGroup:         details.NutritionData.AdditionalMetrics.NovaGroup,
		SavedDate:         time.Now(),
	}
}
