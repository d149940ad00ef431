package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Biometrics collected during onboarding
	Height        float64 // cm
	Weight        float64 // kg
	Age           int
	Gender        string
	ActivityLevel string

	// Comma-joined tag lists plus the "other" free-text fields
	Allergens               string `gorm:"type:text"`
	OtherAllergens          string `gorm:"type:text"`
	FoodIntolerances        string `gorm:"type:text"`
	HealthConditions        string `gorm:"type:text"`
	OtherHealthConditions   string `gorm:"type:text"`
	DietaryPreferences      string `gorm:"type:text"`
	OtherDietaryPreferences string `gorm:"type:text"`

	ProfilePicture string

	// Derived from biometrics, recomputed whenever those change
	BMI           float64
	DailyCalories float64
	DailyProtein  float64
	DailyCarbs    float64
	DailyFat      float64

	OnboardingCompleted bool

	Medications      []Medication     `gorm:"constraint:OnDelete:CASCADE"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_"`
}

// UserProfile is the immutable snapshot the calculators and request builders
// consume. List fields are always non-nil.
type UserProfile struct {
	Height                  float64
	Weight                  float64
	Age                     int
	BMI                     float64
	Gender                  string
	ActivityLevel           string
	Allergens               []string
	OtherAllergens          string
	FoodIntolerances        []string
	HealthConditions        []string
	OtherHealthConditions   string
	DietaryPreferences      []string
	OtherDietaryPreferences string
	Medications             []MedicationInfo
	EmergencyContact        EmergencyContact
}

// MedicationInfo is the wire shape of a single medication entry.
type MedicationInfo struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// Profile flattens the stored document into a snapshot.
func (u *User) Profile() UserProfile {
	meds := make([]MedicationInfo, 0, len(u.Medications))
	for _, m := range u.Medications {
		meds = append(meds, MedicationInfo{Name: m.Name, Dosage: m.Dosage, Frequency: m.Frequency})
	}
	return UserProfile{
		Height:                  u.Height,
		Weight:                  u.Weight,
		Age:                     u.Age,
		BMI:                     u.BMI,
		Gender:                  u.Gender,
		ActivityLevel:           u.ActivityLevel,
		Allergens:               SplitTags(u.Allergens),
		OtherAllergens:          u.OtherAllergens,
		FoodIntolerances:        SplitTags(u.FoodIntolerances),
		HealthConditions:        SplitTags(u.HealthConditions),
		OtherHealthConditions:   u.OtherHealthConditions,
		DietaryPreferences:      SplitTags(u.DietaryPreferences),
		OtherDietaryPreferences: u.OtherDietaryPreferences,
		Medications:             meds,
		EmergencyContact:        u.EmergencyContact,
	}
}

// SplitTags turns a comma-joined column into a list, dropping empties.
func SplitTags(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinTags is the inverse of SplitTags for persistence.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
