package utils

import (
	"strings"
	"testing"

	"backend/models"
)

func TestComputeHealthAnalysisScore(t *testing.T) {
	// 85 - 2*5 (conditions) - 10 (bmi > 30) = 65
	analysis := ComputeHealthAnalysis(models.UserProfile{
		BMI:              32,
		HealthConditions: []string{"Diabetes", "Hypertension"},
	})

	if analysis.Score != 65 {
		t.Errorf("score = %v, want 65", analysis.Score)
	}
	if analysis.ScoreDescription != "Your health score is good" {
		t.Errorf("description = %q, want the good tier", analysis.ScoreDescription)
	}
}

func TestComputeHealthAnalysisCleanProfile(t *testing.T) {
	analysis := ComputeHealthAnalysis(models.UserProfile{BMI: 22})

	if analysis.Score != 85 {
		t.Errorf("score = %v, want 85", analysis.Score)
	}
	if analysis.ScoreDescription != "Your health score is excellent" {
		t.Errorf("description = %q, want the excellent tier", analysis.ScoreDescription)
	}
	if analysis.ScoreDetail != "Based on your overall profile data." {
		t.Errorf("detail = %q, want the generic fallback", analysis.ScoreDetail)
	}
}

// The two BMI deductions are exclusive: when the outer band fires the inner
// one must not.
func TestComputeHealthAnalysisBMIBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want float64
	}{
		{17, 75},   // outer band only
		{32, 75},   // outer band only
		{26, 80},   // inner band
		{18.7, 80}, // inner band (below 18.9)
		{22, 85},   // no deduction
		{25, 85},   // inner band is exclusive at 25
		{30, 80},   // outer band excludes 30, so the inner one catches it
	}
	for _, c := range cases {
		got := ComputeHealthAnalysis(models.UserProfile{BMI: c.bmi}).Score
		if got != c.want {
			t.Errorf("bmi %v: score = %v, want %v", c.bmi, got, c.want)
		}
	}
}

func TestComputeHealthAnalysisDefaultBMI(t *testing.T) {
	// No stored BMI: the engine assumes 25, which deducts nothing and does
	// not count as a contributing factor.
	analysis := ComputeHealthAnalysis(models.UserProfile{})
	if analysis.Score != 85 {
		t.Errorf("score = %v, want 85", analysis.Score)
	}
	if strings.Contains(analysis.ScoreDetail, "BMI") {
		t.Errorf("detail %q should not mention BMI for the default value", analysis.ScoreDetail)
	}
}

// The detail sentence uses 18.5/25 bounds while the deduction uses
// 18.5/30; a BMI of 26 contributes to the sentence but only the inner
// deduction, and 18.7 deducts without contributing.
func TestComputeHealthAnalysisDetailThresholdsDiffer(t *testing.T) {
	at26 := ComputeHealthAnalysis(models.UserProfile{BMI: 26})
	if !strings.Contains(at26.ScoreDetail, "BMI") {
		t.Errorf("bmi 26: detail %q should mention BMI", at26.ScoreDetail)
	}

	at187 := ComputeHealthAnalysis(models.UserProfile{BMI: 18.7})
	if at187.Score != 80 {
		t.Errorf("bmi 18.7: score = %v, want 80", at187.Score)
	}
	if strings.Contains(at187.ScoreDetail, "BMI") {
		t.Errorf("bmi 18.7: detail %q should not mention BMI", at187.ScoreDetail)
	}
}

func TestComputeHealthAnalysisDetailSentence(t *testing.T) {
	analysis := ComputeHealthAnalysis(models.UserProfile{
		BMI:              31,
		HealthConditions: []string{"Diabetes"},
		Allergens:        []string{"Peanuts"},
	})
	want := "Based on your health conditions, allergies, BMI."
	if analysis.ScoreDetail != want {
		t.Errorf("detail = %q, want %q", analysis.ScoreDetail, want)
	}
}

func TestComputeHealthAnalysisConditionsPreserveOrder(t *testing.T) {
	analysis := ComputeHealthAnalysis(models.UserProfile{
		BMI:              22,
		HealthConditions: []string{"Hypertension", "Celiac Disease", "Diabetes"},
	})

	wantNames := []string{"Hypertension", "Celiac Disease", "Type 2 Diabetes"}
	if len(analysis.Conditions) != len(wantNames) {
		t.Fatalf("%d condition entries, want %d", len(analysis.Conditions), len(wantNames))
	}
	for i, want := range wantNames {
		if analysis.Conditions[i].Name != want {
			t.Errorf("conditions[%d].Name = %q, want %q", i, analysis.Conditions[i].Name, want)
		}
	}
}

// Base recommendations come first, then diabetes, then hypertension, no
// matter how the profile orders its conditions.
func TestComputeHealthAnalysisRecommendationOrder(t *testing.T) {
	analysis := ComputeHealthAnalysis(models.UserProfile{
		BMI:              22,
		HealthConditions: []string{"Hypertension", "Diabetes"},
	})

	wantTitles := []string{
		"Maintain proper hydration",
		"Include more whole foods",
		"Monitor carbohydrate intake",
		"Reduce sodium intake",
	}
	if len(analysis.Recommendations) != len(wantTitles) {
		t.Fatalf("%d recommendations, want %d", len(analysis.Recommendations), len(wantTitles))
	}
	for i, want := range wantTitles {
		if analysis.Recommendations[i].Title != want {
			t.Errorf("recommendations[%d].Title = %q, want %q", i, analysis.Recommendations[i].Title, want)
		}
	}
}

func TestComputeHealthAnalysisPure(t *testing.T) {
	profile := models.UserProfile{
		BMI:              27.5,
		HealthConditions: []string{"Diabetes"},
		Allergens:        []string{"Shellfish"},
	}
	first := ComputeHealthAnalysis(profile)
	second := ComputeHealthAnalysis(profile)
	if first.Score != second.Score || first.ScoreDetail != second.ScoreDetail {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
