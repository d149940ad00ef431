package models

// HealthAnalysis is fully derived from the profile on each view and is never
// persisted here.
type HealthAnalysis struct {
	Score            float64                   `json:"score"`
	ScoreDescription string                    `json:"scoreDescription"`
	ScoreDetail      string                    `json:"scoreDetail"`
	Conditions       []HealthCondition         `json:"conditions"`
	Recommendations  []NutritionRecommendation `json:"recommendations"`
}

type HealthCondition struct {
	Name            string   `json:"name"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

type NutritionRecommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
