package dashboard

import (
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/diet"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
)

// Snapshot holds the raw rows the dashboard is computed from.
type Snapshot struct {
	WorkoutTimes    []time.Time
	DoseTimes       []time.Time
	RoutineTimes    []time.Time
	Supplements     []stats.SupplementDoses
	Consumed        stats.Macros
	Target          *stats.Macros
	CurrentWeightKg *float64
}

type Streaks struct {
	Workouts    int `json:"workouts"`
	Supplements int `json:"supplements"`
	Routines    int `json:"routines"`
}

type Nutrition struct {
	Consumed  stats.Macros `json:"consumed"`
	Target    stats.Macros `json:"target"`
	Remaining stats.Macros `json:"remaining"`
}

type Dashboard struct {
	Date                   string                `json:"date"`
	Compliance             stats.ComplianceScore `json:"compliance"`
	Streaks                Streaks               `json:"streaks"`
	Nutrition              Nutrition             `json:"nutrition"`
	CurrentWeightKg        *float64              `json:"currentWeightKg"`
	WorkoutsLast30Days     int                   `json:"workoutsLast30Days"`
	SupplementsComplete    int                   `json:"supplementsComplete"`
	SupplementsTracked     int                   `json:"supplementsTracked"`
	RoutinesCompletedToday int                   `json:"routinesCompletedToday"`
}

type Weekly struct {
	Supplements []stats.SeriesPoint `json:"supplements"`
	Workouts    []stats.SeriesPoint `json:"workouts"`
}

func ComplianceTargets(cfg config.Compliance) stats.ComplianceTargets {
	return stats.ComplianceTargets{
		MonthlyWorkouts: cfg.MonthlyWorkouts,
		DailyRoutines:   cfg.DailyRoutines,
		DailyCalories:   cfg.DailyCalories,
	}
}

// WindowStart is the earliest timestamp a snapshot needs: the 30 day workout
// window and the streak window both fit after it.
func WindowStart(now time.Time) time.Time {
	return stats.StreakWindowStart(now).AddDate(0, 0, -1)
}

func countSince(times []time.Time, since time.Time) int {
	n := 0
	for _, t := range times {
		if !t.Before(since) {
			n++
		}
	}
	return n
}

// Build computes the dashboard for the day containing now.
func Build(s Snapshot, now time.Time, targets stats.ComplianceTargets, defaults config.NutritionDefaults) Dashboard {
	workoutsByDay := stats.CountByDay(s.WorkoutTimes)
	dosesByDay := stats.CountByDay(s.DoseTimes)
	routinesByDay := stats.CountByDay(s.RoutineTimes)

	workouts30 := countSince(s.WorkoutTimes, now.AddDate(0, 0, -30))
	complete := stats.CompleteToday(s.Supplements)
	routinesToday := routinesByDay[stats.DayKey(now)]

	target := diet.TargetOrDefault(s.Target, defaults)

	return Dashboard{
		Date: stats.DayKey(now),
		Compliance: stats.Compliance(stats.ComplianceInput{
			WorkoutsLast30Days:     workouts30,
			SupplementsComplete:    complete,
			SupplementsTracked:     len(s.Supplements),
			RoutinesCompletedToday: routinesToday,
			CaloriesLoggedToday:    s.Consumed.Calories,
		}, targets),
		Streaks: Streaks{
			Workouts:    stats.Streak(workoutsByDay, now),
			Supplements: stats.Streak(dosesByDay, now),
			Routines:    stats.Streak(routinesByDay, now),
		},
		Nutrition: Nutrition{
			Consumed:  s.Consumed,
			Target:    target,
			Remaining: stats.Remaining(target, s.Consumed),
		},
		CurrentWeightKg:        s.CurrentWeightKg,
		WorkoutsLast30Days:     workouts30,
		SupplementsComplete:    complete,
		SupplementsTracked:     len(s.Supplements),
		RoutinesCompletedToday: routinesToday,
	}
}

func BuildWeekly(s Snapshot, now time.Time) Weekly {
	return Weekly{
		Supplements: stats.WeeklySupplementSeries(stats.CountByDay(s.DoseTimes), now, len(s.Supplements)),
		Workouts:    stats.WeeklyWorkoutSeries(stats.CountByDay(s.WorkoutTimes), now),
	}
}
