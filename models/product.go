package models

import "strings"

// Macronutrients per serving, grams except calories.
type Macronutrients struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	AddedSugar    float64 `json:"added_sugar"`
}

// Micronutrients in milligrams.
type Micronutrients struct {
	Sodium    float64 `json:"sodium"`
	Potassium float64 `json:"potassium"`
	Calcium   float64 `json:"calcium"`
	Iron      float64 `json:"iron"`
}

// AdditionalMetrics carries the NOVA processing classification (1-4).
type AdditionalMetrics struct {
	NovaGroup int `json:"novaGroup"`
}

type NutritionData struct {
	Macronutrients    Macronutrients    `json:"macronutrients"`
	Micronutrients    Micronutrients    `json:"micronutrients"`
	AdditionalMetrics AdditionalMetrics `json:"additionalMetrics"`
}

// ProductDetails is the normalized record built from an analysis-service
// response. Immutable once constructed; the suitability verdict is derived
// on read, never stored.
type ProductDetails struct {
	Brand         string        `json:"brand"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Ingredients   string        `json:"ingredients"`
	NutritionData NutritionData `json:"nutritionData"`
	Analysis      string        `json:"analysis"`
}

type SuitabilityStatus string

const (
	Suitable       SuitabilityStatus = "Suitable"
	LikelySuitable SuitabilityStatus = "Likely Suitable"
	UseWithCaution SuitabilityStatus = "Use with Caution"
	NotSuitable    SuitabilityStatus = "Not Suitable"
	UnknownStatus  SuitabilityStatus = "Unknown Status"
)

// Color names the presentation tint the app uses for each verdict.
func (s SuitabilityStatus) Color() string {
	switch s {
	case Suitable:
		return "green"
	case LikelySuitable:
		return "yellow"
	case UseWithCaution:
		return "orange"
	case NotSuitable:
		return "red"
	default:
		return "gray"
	}
}

func (s SuitabilityStatus) Icon() string {
	switch s {
	case Suitable:
		return "checkmark.circle.fill"
	case LikelySuitable:
		return "checkmark.circle"
	case UseWithCaution:
		return "exclamationmark.triangle.fill"
	case NotSuitable:
		return "xmark.circle.fill"
	default:
		return "questionmark.circle.fill"
	}
}

// SuitabilityStatus classifies the free-text analysis narrative.
// "not suitable" and "likely suitable" both contain "suitable", so the more
// specific phrases are checked first; the order is a contract.
func (p ProductDetails) SuitabilityStatus() SuitabilityStatus {
	return ClassifySuitability(p.Analysis)
}

func ClassifySuitability(analysis string) SuitabilityStatus {
	text := strings.ToLower(analysis)
	switch {
	case strings.Contains(text, "not suitable"):
		return NotSuitable
	case strings.Contains(text, "likely suitable"):
		return LikelySuitable
	case strings.Contains(text, "suitable"):
		return Suitable
	case strings.Contains(text, "caution"):
		return UseWithCaution
	default:
		return UnknownStatus
	}
}
