// Package metrics derives daily energy metrics from a user profile.
package metrics

import "github.com/AnthonyAlbero/TCC-fittracker/internal/domain"

// Activity levels recognised in a profile. Unknown levels fall back to
// sedentary.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

var activityMultipliers = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Goals adjust the daily calorie target relative to TDEE.
const (
	GoalMaintain       = "maintain"
	GoalLeanBulk       = "lean_bulk"
	GoalAggressiveBulk = "aggressive_bulk"
	GoalCut            = "cut"
	GoalAggressiveCut  = "aggressive_cut"
)

var goalAdjustments = map[string]float64{
	GoalMaintain:       0,
	GoalLeanBulk:       250,
	GoalAggressiveBulk: 500,
	GoalCut:            -300,
	GoalAggressiveCut:  -500,
}

// BMR returns the basal metabolic rate in kcal/day using the Mifflin-St Jeor
// equation.
func BMR(gender domain.Gender, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == domain.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales a BMR by the activity multiplier for level.
func TDEE(bmr float64, level string) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	return bmr * mult
}

// DailyCalorieGoal adjusts a TDEE for the profile goal. Unknown goals mean no
// adjustment.
func DailyCalorieGoal(tdee float64, goal string) float64 {
	return tdee + goalAdjustments[goal]
}

// BMICategory labels a BMI value against the WHO brackets.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// ValidActivityLevel reports whether level is one of the recognised values.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// ValidGoal reports whether goal is one of the recognised values.
func ValidGoal(goal string) bool {
	_, ok := goalAdjustments[goal]
	return ok
}
