package utils

import (
	"math"
	"strings"
)

// NutritionTargets are the derived daily intake targets.
type NutritionTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// CalculateNutritionalRequirements derives daily targets with Mifflin-St Jeor.
// Any gender other than "male" uses the female constant. Unrecognized
// activity levels fall back to sedentary. Inputs are not validated; the
// caller vets them before asking.
func CalculateNutritionalRequirements(weight, height float64, age int, gender, activityLevel string) NutritionTargets {
	var bmr float64
	if strings.ToLower(gender) == "male" {
		bmr = 10*weight + 6.25*height - 5*float64(age) + 5
	} else {
		bmr = 10*weight + 6.25*height - 5*float64(age) - 161
	}

	var multiplier float64
	switch strings.ToLower(activityLevel) {
	case "sedentary":
		multiplier = 1.2
	case "lightly active":
		multiplier = 1.375
	case "moderately active":
		multiplier = 1.55
	case "very active":
		multiplier = 1.725
	case "extra active":
		multiplier = 1.9
	default:
		multiplier = 1.2
	}

	calories := math.Round(bmr * multiplier)

	// 30/50/20 calorie split, each macro rounded on its own. The grams do not
	// reconcile back to the calorie total exactly; that drift is accepted.
	return NutritionTargets{
		Calories: calories,
		Protein:  math.Round(calories * 0.3 / 4),
		Carbs:    math.Round(calories * 0.5 / 4),
		Fat:      math.Round(calories * 0.2 / 9),
	}
}
