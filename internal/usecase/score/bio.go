// Package score implements the age estimators: a biological age derived from
// physiologic inputs and a financial age interpolated from a median net-worth
// reference curve.
//
// Both estimators are pure and silently permissive: out-of-range numbers
// saturate at the clamp bounds and unrecognized strings contribute no
// adjustment. Nothing here returns an error.
package score

import (
	"strings"

	"github.com/nvidales/agelens/internal/domain"
)

// Adjusted-age bounds.
const (
	bioAgeMin = 18
	bioAgeMax = 100
	finAgeMin = 18
	finAgeMax = 95
)

// conditionPenalty maps normalized condition tags to added years.
// Tags outside the table contribute nothing.
var conditionPenalty = map[string]float64{
	"hypertension":  3,
	"diabetes":      4,
	"smoker":        5,
	"obesity":       4,
	"heart-disease": 6,
}

// BiologicalAge estimates a health-adjusted age from the profile.
// Lower is favorable. The result is clamped to [18,100].
func BiologicalAge(p domain.PersonProfile) float64 {
	age := p.ChronologicalAge

	age += bmiAdjustment(p.HeightCM, p.WeightKG)
	age += restingHRAdjustment(p.RestingHR)
	age += activityAdjustment(p.Activity)

	for _, c := range p.Conditions {
		age += conditionPenalty[normalize(c)]
	}

	return clamp(age, bioAgeMin, bioAgeMax)
}

// bmiAdjustment applies the U-shaped BMI penalty. The ideal band is
// [18.5,25); band lower bounds are inclusive.
func bmiAdjustment(heightCM, weightKG float64) float64 {
	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)

	switch {
	case bmi < 18.5:
		return 2
	case bmi < 25:
		return -2
	case bmi < 30:
		return 2
	default:
		return 5
	}
}

// restingHRAdjustment rewards a low resting heart rate; 60 and 75 bpm are
// both inside the neutral band.
func restingHRAdjustment(bpm float64) float64 {
	switch {
	case bpm < 60:
		return -3
	case bpm <= 75:
		return 0
	default:
		return 4
	}
}

func activityAdjustment(level domain.ActivityLevel) float64 {
	switch domain.ActivityLevel(normalize(string(level))) {
	case domain.ActivityAthlete:
		return -5
	case domain.ActivityModeratelyActive:
		return -2
	case domain.ActivityMildlyActive:
		return -1
	case domain.ActivitySedentary:
		return 3
	default:
		return 0
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
