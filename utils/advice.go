package utils

import (
	"fmt"
	"strings"

	"backend/models"
)

// HealthConditionAdvice returns the one-line dietary advice for a condition.
// Matching is case-insensitive; anything unknown gets the templated fallback
// so downstream copy stays uniform.
func HealthConditionAdvice(condition string) string {
	switch strings.ToLower(condition) {
	case "diabetes":
		return "Monitor carbohydrate intake and focus on foods with a low glycemic index."
	case "hypertension":
		return "Limit sodium intake to less than 2,300mg per day and increase potassium-rich foods."
	case "heart disease":
		return "Focus on heart-healthy foods like whole grains, lean proteins, and healthy fats."
	case "kidney disease":
		return "Monitor protein, phosphorus, sodium, and potassium intake based on your stage."
	case "irritable bowel syndrome":
		return "Consider a low-FODMAP diet and identify personal trigger foods."
	case "celiac disease":
		return "Strictly avoid all foods containing gluten, including many processed foods."
	case "gerd/acid reflux":
		return "Avoid acidic foods, spicy foods, and eat smaller, more frequent meals."
	default:
		return fmt.Sprintf("Follow dietary recommendations specific to your %s condition.", strings.ToLower(condition))
	}
}

// AnalyzeHealthCondition returns the structured report entry for a condition.
// Four conditions have curated entries keyed by their exact onboarding tag;
// everything else gets the generic moderate record. This table exists apart
// from HealthConditionAdvice on purpose: one feeds report cards, the other
// one-line UI copy.
func AnalyzeHealthCondition(condition string) models.HealthCondition {
	switch condition {
	case "Diabetes":
		return models.HealthCondition{
			Name:        "Type 2 Diabetes",
			Severity:    "Moderate",
			Description: "A chronic condition affecting how your body metabolizes sugar. Regular monitoring of blood glucose levels is essential.",
			Recommendations: []string{
				"Monitor carbohydrate intake carefully",
				"Eat smaller, regular meals throughout the day",
				"Focus on foods with low glycemic index",
				"Limit foods high in added sugars",
			},
		}
	case "Hypertension":
		return models.HealthCondition{
			Name:        "Hypertension",
			Severity:    "Moderate",
			Description: "High blood pressure increases risk of heart disease and stroke. Dietary and lifestyle modifications are crucial.",
			Recommendations: []string{
				"Reduce sodium intake to less than 2,300mg daily",
				"Consume potassium-rich foods like bananas and spinach",
				"Limit alcohol consumption",
				"Incorporate the DASH diet principles",
			},
		}
	case "Lactose Intolerance":
		return models.HealthCondition{
			Name:        "Lactose Intolerance",
			Severity:    "Low",
			Description: "An inability to digest lactose, the sugar in dairy products, causing digestive discomfort.",
			Recommendations: []string{
				"Use lactose-free dairy products",
				"Try plant-based milk alternatives",
				"Consider lactase enzyme supplements before consuming dairy",
				"Check food labels for hidden lactose ingredients",
			},
		}
	case "Celiac Disease":
		return models.HealthCondition{
			Name:        "Celiac Disease",
			Severity:    "High",
			Description: "An autoimmune disorder where ingestion of gluten leads to damage of the small intestine.",
			Recommendations: []string{
				"Strictly avoid all forms of gluten",
				"Focus on naturally gluten-free foods",
				"Be cautious of cross-contamination",
				"Look for certified gluten-free products",
			},
		}
	default:
		return models.HealthCondition{
			Name:        condition,
			Severity:    "Moderate",
			Description: "This condition requires dietary and lifestyle considerations for optimal health management.",
			Recommendations: []string{
				"Consult with healthcare providers for specific advice",
				"Monitor symptoms and track food intake",
				"Stay consistent with prescribed medications",
			},
		}
	}
}
