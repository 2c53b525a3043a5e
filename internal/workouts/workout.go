package workouts

import "time"

const (
	CategoryStrength = "strength"
	CategoryCardio   = "cardio"
)

type Exercise struct {
	ID          int64  `json:"id" db:"id"`
	OwnerUserID *int64 `json:"ownerUserId,omitempty" db:"owner_user_id"`
	Name        string `json:"name" db:"name"`
	Category    string `json:"category" db:"category"`
	MuscleGroup string `json:"muscleGroup" db:"muscle_group"`
	Description string `json:"description" db:"description"`
}

type Plan struct {
	ID          int64          `json:"id" db:"id"`
	UserID      int64          `json:"userId" db:"user_id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	Exercises   []PlanExercise `json:"exercises" db:"-"`
}

type PlanExercise struct {
	ID           int64   `json:"id" db:"id"`
	ExerciseID   int64   `json:"exerciseId" db:"exercise_id"`
	ExerciseName string  `json:"exerciseName" db:"exercise_name"`
	Position     int     `json:"position" db:"position"`
	TargetSets   int     `json:"targetSets" db:"target_sets"`
	TargetReps   int     `json:"targetReps" db:"target_reps"`
	TargetWeight float64 `json:"targetWeight" db:"target_weight"`
}

type Session struct {
	ID              int64         `json:"id" db:"id"`
	UserID          int64         `json:"userId" db:"user_id"`
	PlanID          *int64        `json:"planId" db:"plan_id"`
	Name            string        `json:"name" db:"name"`
	DurationMinutes int           `json:"durationMinutes" db:"duration_minutes"`
	Notes           string        `json:"notes" db:"notes"`
	PerformedAt     time.Time     `json:"performedAt" db:"performed_at"`
	Logs            []ExerciseLog `json:"logs,omitempty" db:"-"`
}

type ExerciseLog struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	ExerciseID      int64     `json:"exerciseId" db:"exercise_id"`
	SessionID       *int64    `json:"sessionId" db:"session_id"`
	WeightKg        float64   `json:"weightKg" db:"weight_kg"`
	Sets            int       `json:"sets" db:"sets"`
	Reps            int       `json:"reps" db:"reps"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
	DistanceKm      float64   `json:"distanceKm" db:"distance_km"`
	LoggedAt        time.Time `json:"loggedAt" db:"logged_at"`
}

type CardioSession struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	Activity        string    `json:"activity" db:"activity"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
	DistanceKm      float64   `json:"distanceKm" db:"distance_km"`
	CaloriesBurned  int       `json:"caloriesBurned" db:"calories_burned"`
	PerformedAt     time.Time `json:"performedAt" db:"performed_at"`
}

type ProgressionResponse struct {
	ExerciseID     int64                    `json:"exerciseId"`
	Points         []ProgressionPointOutput `json:"points"`
	BestWeight     string                   `json:"bestWeight"`
	EstimatedOneRM float64                  `json:"estimatedOneRepMax"`
}

type ProgressionPointOutput struct {
	Date      string  `json:"date"`
	MaxWeight float64 `json:"maxWeight"`
	MaxReps   int     `json:"maxReps"`
	Label     string  `json:"label"`
}
