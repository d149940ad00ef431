package utils

import "math"

// CalculateBMI expects height in centimeters and weight in kilograms and
// rounds to one decimal. Height at or below zero is undefined and yields NaN;
// validating inputs is the caller's job.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return math.NaN()
	}
	h := heightCm / 100.0
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10
}

// BMICategory buckets a BMI value. Lower bounds are inclusive, upper bounds
// exclusive: 18.5 is Normal, 25 is Overweight, 30 is Obese.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMIColor uses the same breakpoints as BMICategory; the two must not drift.
func BMIColor(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "blue"
	case bmi < 25.0:
		return "green"
	case bmi < 30.0:
		return "orange"
	default:
		return "red"
	}
}

func BMIDescription(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "You may need to gain some weight. Consider focusing on nutrient-dense foods."
	case bmi < 25.0:
		return "Your weight is in the healthy range. Maintain your current habits."
	case bmi < 30.0:
		return "You may benefit from losing some weight through diet and exercise."
	default:
		return "Your BMI indicates obesity, which increases health risks. Consider consulting a healthcare provider."
	}
}

// Display scale bounds and the marker half-width used by the BMI gauge.
const (
	bmiScaleMin      = 15.0
	bmiNormalStart   = 18.5
	bmiOverweight    = 25.0
	bmiObeseStart    = 30.0
	bmiScaleMax      = 35.0
	bmiMarkerHalfPts = 10.0
)

// BMIScaleOffset maps a BMI onto a gauge of the given width split into four
// equal segments (boundaries 18.5/25/30 on a 15-35 scale), interpolating
// linearly inside each segment. Input is clamped to the scale first.
func BMIScaleOffset(bmi, trackWidth float64) float64 {
	segment := trackWidth / 4

	clamped := math.Max(bmiScaleMin, math.Min(bmi, bmiScaleMax))

	switch {
	case clamped < bmiNormalStart:
		progress := (clamped - bmiScaleMin) / (bmiNormalStart - bmiScaleMin)
		return progress*segment - bmiMarkerHalfPts
	case clamped < bmiOverweight:
		progress := (clamped - bmiNormalStart) / (bmiOverweight - bmiNormalStart)
		return segment + progress*segment - bmiMarkerHalfPts
	case clamped < bmiObeseStart:
		progress := (clamped - bmiOverweight) / (bmiObeseStart - bmiOverweight)
		return 2*segment + progress*segment - bmiMarkerHalfPts
	default:
		progress := (clamped - bmiObeseStart) / (bmiScaleMax - bmiObeseStart)
		return 3*segment + progress*segment - bmiMarkerHalfPts
	}
}
