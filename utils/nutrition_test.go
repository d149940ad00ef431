package utils

import "testing"

func TestCalculateNutritionalRequirementsMale(t *testing.T) {
	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; sedentary 1.2 -> 1978.5
	got := CalculateNutritionalRequirements(70, 175, 30, "male", "sedentary")

	if got.Calories != 1979 {
		t.Errorf("calories = %v, want 1979", got.Calories)
	}
	if got.Protein != 148 {
		t.Errorf("protein = %v, want 148", got.Protein)
	}
	if got.Carbs != 247 {
		t.Errorf("carbs = %v, want 247", got.Carbs)
	}
	if got.Fat != 44 {
		t.Errorf("fat = %v, want 44", got.Fat)
	}
}

func TestCalculateNutritionalRequirementsFemale(t *testing.T) {
	// BMR = 10*60 + 6.25*165 - 5*25 - 161 = 1345.25; moderate 1.55 -> 2085.1375
	got := CalculateNutritionalRequirements(60, 165, 25, "female", "moderately active")

	if got.Calories != 2085 {
		t.Errorf("calories = %v, want 2085", got.Calories)
	}
	if got.Protein != 156 {
		t.Errorf("protein = %v, want 156", got.Protein)
	}
	if got.Carbs != 261 {
		t.Errorf("carbs = %v, want 261", got.Carbs)
	}
	if got.Fat != 46 {
		t.Errorf("fat = %v, want 46", got.Fat)
	}
}

// Any gender other than "male" gets the female constant, and unknown
// activity levels fall back to sedentary.
func TestCalculateNutritionalRequirementsDefaults(t *testing.T) {
	female := CalculateNutritionalRequirements(70, 175, 30, "female", "sedentary")
	for _, gender := range []string{"", "unspecified", "nonbinary"} {
		if got := CalculateNutritionalRequirements(70, 175, 30, gender, "sedentary"); got != female {
			t.Errorf("gender %q: got %+v, want female defaults %+v", gender, got, female)
		}
	}

	sedentary := CalculateNutritionalRequirements(70, 175, 30, "male", "sedentary")
	for _, level := range []string{"", "couch potato", "unknown"} {
		if got := CalculateNutritionalRequirements(70, 175, 30, "male", level); got != sedentary {
			t.Errorf("activity %q: got %+v, want sedentary %+v", level, got, sedentary)
		}
	}
}

func TestCalculateNutritionalRequirementsCaseInsensitive(t *testing.T) {
	want := CalculateNutritionalRequirements(70, 175, 30, "male", "very active")
	got := CalculateNutritionalRequirements(70, 175, 30, "MALE", "Very Active")
	if got != want {
		t.Errorf("case-insensitive match failed: got %+v, want %+v", got, want)
	}
}

func TestCalculateNutritionalRequirementsIdempotent(t *testing.T) {
	first := CalculateNutritionalRequirements(82.5, 179, 41, "male", "lightly active")
	second := CalculateNutritionalRequirements(82.5, 179, 41, "male", "lightly active")
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
