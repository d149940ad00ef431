package utils

import (
	"strings"

	"backend/models"
)

// defaultBMI stands in when the profile has no stored BMI yet.
const defaultBMI = 25.0

// ComputeHealthAnalysis derives the health report from a profile snapshot.
// Pure function of its input; always produces a result.
func ComputeHealthAnalysis(profile models.UserProfile) models.HealthAnalysis {
	bmi := profile.BMI
	if bmi <= 0 {
		bmi = defaultBMI
	}

	score := 85.0
	if len(profile.HealthConditions) > 0 {
		score -= float64(len(profile.HealthConditions) * 5)
	}

	// The deduction bands are exclusive: the 5-point band only applies when
	// the 10-point band did not fire. The band edges (18.9/25 here, 18.5/25
	// in the detail sentence below) differ in the product copy as shipped;
	// keep both until product settles on one.
	if bmi < 18.5 || bmi > 30 {
		score -= 10
	} else if bmi < 18.9 || bmi > 25 {
		score -= 5
	}

	conditions := make([]models.HealthCondition, 0, len(profile.HealthConditions))
	for _, c := range profile.HealthConditions {
		conditions = append(conditions, AnalyzeHealthCondition(c))
	}

	recommendations := []models.NutritionRecommendation{
		{
			Title:       "Maintain proper hydration",
			Description: "Drink at least 8 glasses of water daily to support metabolism and organ function.",
		},
		{
			Title:       "Include more whole foods",
			Description: "Focus on fruits, vegetables, lean proteins, and whole grains while minimizing processed foods.",
		},
	}
	if containsCondition(profile.HealthConditions, "Diabetes") {
		recommendations = append(recommendations, models.NutritionRecommendation{
			Title:       "Monitor carbohydrate intake",
			Description: "Keep track of carbs and focus on complex carbohydrates with low glycemic index.",
		})
	}
	if containsCondition(profile.HealthConditions, "Hypertension") {
		recommendations = append(recommendations, models.NutritionRecommendation{
			Title:       "Reduce sodium intake",
			Description: "Limit salt consumption to less than 2,300mg per day and increase potassium-rich foods.",
		})
	}

	var scoreDescription string
	switch {
	case score >= 80:
		scoreDescription = "Your health score is excellent"
	case score >= 60:
		scoreDescription = "Your health score is good"
	default:
		scoreDescription = "Your health score needs attention"
	}

	var detailParts []string
	if len(profile.HealthConditions) > 0 {
		detailParts = append(detailParts, "your health conditions")
	}
	if len(profile.Allergens) > 0 {
		detailParts = append(detailParts, "allergies")
	}
	if bmi < 18.5 || bmi > 25 {
		detailParts = append(detailParts, "BMI")
	}

	scoreDetail := "Based on your overall profile data."
	if len(detailParts) > 0 {
		scoreDetail = "Based on " + strings.Join(detailParts, ", ") + "."
	}

	return models.HealthAnalysis{
		Score:            score,
		ScoreDescription: scoreDescription,
		ScoreDetail:      scoreDetail,
		Conditions:       conditions,
		Recommendations:  recommendations,
	}
}

func containsCondition(conditions []string, name string) bool {
	for _, c := range conditions {
		if c == name {
			return true
		}
	}
	return false
}
