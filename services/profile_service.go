package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// OnboardingInput is the full field set collected by the onboarding flow.
type OnboardingInput struct {
	Height                  float64                  `json:"height"`
	Weight                  float64                  `json:"weight"`
	Age                     int                      `json:"age"`
	Gender                  string                   `json:"gender"`
	ActivityLevel           string                   `json:"activityLevel"`
	Allergens               []string                 `json:"allergens"`
	OtherAllergens          string                   `json:"otherAllergens"`
	FoodIntolerances        []string                 `json:"foodIntolerances"`
	HealthConditions        []string                 `json:"healthConditions"`
	OtherHealthConditions   string                   `json:"otherHealthConditions"`
	DietaryPreferences      []string                 `json:"dietaryPreferences"`
	OtherDietaryPreferences string                   `json:"otherDietaryPreferences"`
	Medications             []MedicationInput        `json:"medications"`
	EmergencyContact        *models.EmergencyContact `json:"emergencyContact"`
	ProfilePicture          string                   `json:"profilePicture"`
}

// MedicationInput accepts the notes field the wire contract drops.
type MedicationInput struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes"`
}

func medicationsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("medications.position")
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Preload("Medications", medicationsByPosition).First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.Preload("Medications", medicationsByPosition).First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// ProfileSnapshot loads the stored document and flattens it for the core.
func ProfileSnapshot(userID uint) (models.UserProfile, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	return user.Profile(), nil
}

// GetUserProfile returns the profile document plus derived values as the app
// reads them.
func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return map[string]interface{}{
		"id":                      user.ID,
		"email":                   user.Email,
		"fullName":                user.FullName,
		"height":                  user.Height,
		"weight":                  user.Weight,
		"age":                     user.Age,
		"gender":                  user.Gender,
		"activityLevel":           user.ActivityLevel,
		"allergens":               profile.Allergens,
		"otherAllergens":          user.OtherAllergens,
		"foodIntolerances":        profile.FoodIntolerances,
		"healthConditions":        profile.HealthConditions,
		"otherHealthConditions":   user.OtherHealthConditions,
		"dietaryPreferences":      profile.DietaryPreferences,
		"otherDietaryPreferences": user.OtherDietaryPreferences,
		"medications":             profile.Medications,
		"emergencyContact":        user.EmergencyContact,
		"profilePicture":          user.ProfilePicture,
		"bmi":                     user.BMI,
		"bmiCategory":             utils.BMICategory(user.BMI),
		"dailyCalories":           user.DailyCalories,
		"dailyProtein":            user.DailyProtein,
		"dailyCarbs":              user.DailyCarbs,
		"dailyFat":                user.DailyFat,
		"onboardingCompleted":     user.OnboardingCompleted,
	}, nil
}

// CompleteOnboarding stores the collected profile and the derived BMI and
// daily targets, then flips the onboarding flag.
func CompleteOnboarding(userID uint, input OnboardingInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	user.Height = input.Height
	user.Weight = input.Weight
	user.Age = input.Age
	user.Gender = input.Gender
	user.ActivityLevel = input.ActivityLevel
	user.Allergens = models.JoinTags(input.Allergens)
	user.OtherAllergens = input.OtherAllergens
	user.FoodIntolerances = models.JoinTags(input.FoodIntolerances)
	user.HealthConditions = models.JoinTags(input.HealthConditions)
	user.OtherHealthConditions = input.OtherHealthConditions
	user.DietaryPreferences = models.JoinTags(input.DietaryPreferences)
	user.OtherDietaryPreferences = input.OtherDietaryPreferences
	if input.EmergencyContact != nil {
		user.EmergencyContact = *input.EmergencyContact
	}

	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "onboarding/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	recomputeDerived(user)
	user.OnboardingCompleted = true

	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return replaceMedications(user.ID, input.Medications)
}

// UpdateProfile applies a partial update; biometric changes recompute the
// derived targets, keeping them a pure function of the profile.
func UpdateProfile(userID uint, input OnboardingInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	biometricsChanged := false
	if input.Height > 0 && input.Height != user.Height {
		user.Height = input.Height
		biometricsChanged = true
	}
	if input.Weight > 0 && input.Weight != user.Weight {
		user.Weight = input.Weight
		biometricsChanged = true
	}
	if input.Age > 0 && input.Age != user.Age {
		user.Age = input.Age
		biometricsChanged = true
	}
	if input.Gender != "" && input.Gender != user.Gender {
		user.Gender = input.Gender
		biometricsChanged = true
	}
	if input.ActivityLevel != "" && input.ActivityLevel != user.ActivityLevel {
		user.ActivityLevel = input.ActivityLevel
		biometricsChanged = true
	}

	if input.Allergens != nil {
		user.Allergens = models.JoinTags(input.Allergens)
	}
	if input.OtherAllergens != "" {
		user.OtherAllergens = input.OtherAllergens
	}
	if input.FoodIntolerances != nil {
		user.FoodIntolerances = models.JoinTags(input.FoodIntolerances)
	}
	if input.HealthConditions != nil {
		user.HealthConditions = models.JoinTags(input.HealthConditions)
	}
	if input.OtherHealthConditions != "" {
		user.OtherHealthConditions = input.OtherHealthConditions
	}
	if input.DietaryPreferences != nil {
		user.DietaryPreferences = models.JoinTags(input.DietaryPreferences)
	}
	if input.OtherDietaryPreferences != "" {
		user.OtherDietaryPreferences = input.OtherDietaryPreferences
	}
	if input.EmergencyContact != nil {
		user.EmergencyContact = *input.EmergencyContact
	}

	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}

	if biometricsChanged {
		recomputeDerived(user)
	}

	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	if input.Medications != nil {
		return replaceMedications(user.ID, input.Medications)
	}
	return nil
}

func recomputeDerived(user *models.User) {
	user.BMI = utils.CalculateBMI(user.Height, user.Weight)
	targets := utils.CalculateNutritionalRequirements(
		user.Weight, user.Height, user.Age, user.Gender, user.ActivityLevel,
	)
	user.DailyCalories = targets.Calories
	user.DailyProtein = targets.Protein
	user.DailyCarbs = targets.Carbs
	user.DailyFat = targets.Fat
}

func replaceMedications(userID uint, meds []MedicationInput) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.Medication{}).Error; err != nil {
		return err
	}
	for i, m := range meds {
		if m.Name == "" {
			continue
		}
		med := models.Medication{
			UserID:    userID,
			Position:  i,
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Notes:     m.Notes,
		}
		if err := config.DB.Create(&med).Error; err != nil {
			return err
		}
	}
	return nil
}
