// Package stats holds the dashboard formulas. Everything here works on
// rows that were already fetched; nothing does I/O.
package stats

import "math"

// ComplianceTargets are the amounts that score 100% for each sub-score.
type ComplianceTargets struct {
	MonthlyWorkouts int
	DailyRoutines   int
	DailyCalories   float64
}

func DefaultComplianceTargets() ComplianceTargets {
	return ComplianceTargets{
		MonthlyWorkouts: 20,
		DailyRoutines:   2,
		DailyCalories:   2500,
	}
}

const (
	workoutWeight    = 30
	supplementWeight = 25
	routineWeight    = 25
	nutritionWeight  = 20
)

type ComplianceInput struct {
	WorkoutsLast30Days     int
	SupplementsComplete    int
	SupplementsTracked     int
	RoutinesCompletedToday int
	CaloriesLoggedToday    float64
}

type ComplianceScore struct {
	Overall    int     `json:"overall"`
	Workout    float64 `json:"workout"`
	Supplement float64 `json:"supplement"`
	Routine    float64 `json:"routine"`
	Nutrition  float64 `json:"nutrition"`
}

func Compliance(in ComplianceInput, targets ComplianceTargets) ComplianceScore {
	workout := ratioScore(float64(in.WorkoutsLast30Days), float64(targets.MonthlyWorkouts))

	var supplement float64
	if in.SupplementsTracked > 0 {
		supplement = clampScore(float64(in.SupplementsComplete) / float64(in.SupplementsTracked) * 100)
	}

	routine := ratioScore(float64(in.RoutinesCompletedToday), float64(targets.DailyRoutines))

	var nutrition float64
	if in.CaloriesLoggedToday > 0 {
		nutrition = ratioScore(in.CaloriesLoggedToday, targets.DailyCalories)
	}

	overall := (workout*workoutWeight +
		supplement*supplementWeight +
		routine*routineWeight +
		nutrition*nutritionWeight) / 100

	return ComplianceScore{
		Overall:    int(math.Round(overall)),
		Workout:    workout,
		Supplement: supplement,
		Routine:    routine,
		Nutrition:  nutrition,
	}
}

// ratioScore is min(value/target, 1) * 100, clamped to [0,100].
func ratioScore(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return clampScore(math.Min(value/target, 1) * 100)
}

func clampScore(s float64) float64 {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
