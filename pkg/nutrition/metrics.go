// Package nutrition holds the body metric formulas shared by the coach,
// recipe and recommendation features.
package nutrition

import (
	"fitlens-backend/domain"
	"fmt"
	"math"
)

const (
	// ActivityFactor is applied to every profile regardless of activity level.
	ActivityFactor = 1.55

	LoseOffset = -500.0
	GainOffset = 300.0
)

var mealShares = map[domain.MealType]float64{
	domain.MealBreakfast: 0.25,
	domain.MealLunch:     0.35,
	domain.MealSnack:     0.15,
	domain.MealDinner:    0.25,
}

type Metrics struct {
	BMI float64
	// BMR is the Harris-Benedict basal metabolic rate, unrounded.
	BMR float64
	// DailyCalories is the rounded daily target after the goal offset.
	DailyCalories int
}

func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

func BMR(p domain.UserProfile) float64 {
	w, h, a := p.Weight, p.Height, float64(p.Age)
	if p.Gender == domain.GenderMale {
		return 88.362 + 13.397*w + 4.799*h - 5.677*a
	}
	return 447.593 + 9.247*w + 3.098*h - 4.330*a
}

func GoalOffset(g domain.Goal) float64 {
	switch g {
	case domain.GoalLose:
		return LoseOffset
	case domain.GoalGain:
		return GainOffset
	default:
		return 0
	}
}

// dailyEnergy is the unrounded target: BMR times the activity factor plus the
// goal offset.
func dailyEnergy(p domain.UserProfile) float64 {
	return BMR(p)*ActivityFactor + GoalOffset(p.Goal)
}

func Compute(p domain.UserProfile) (Metrics, error) {
	if err := p.Check(); err != nil {
		return Metrics{}, err
	}
	return Metrics{
		BMI:           BMI(p.Weight, p.Height),
		BMR:           BMR(p),
		DailyCalories: int(math.Round(dailyEnergy(p))),
	}, nil
}

// MealCalories splits the daily target across one meal slot.
func MealCalories(p domain.UserProfile, meal domain.MealType) (int, error) {
	if err := p.Check(); err != nil {
		return 0, err
	}
	share, ok := mealShares[meal]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMealType, meal)
	}
	return int(math.Round(dailyEnergy(p) * share)), nil
}

func (m Metrics) RoundedBMR() int {
	return int(math.Round(m.BMR))
}

// BMILabel formats the BMI with one decimal, e.g. "24.2".
func (m Metrics) BMILabel() string {
	return fmt.Sprintf("%.1f", m.BMI)
}
