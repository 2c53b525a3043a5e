package admin

import (
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/auth"
)

// Stats are the aggregate numbers shown to administrators.
type Stats struct {
	Users                int `json:"users"`
	Admins               int `json:"admins"`
	OnboardedUsers       int `json:"onboardedUsers"`
	NewUsersLast7Days    int `json:"newUsersLast7Days"`
	ActiveUsersLast7Days int `json:"activeUsersLast7Days"`
	WorkoutSessions      int `json:"workoutSessions"`
	ExerciseLogs         int `json:"exerciseLogs"`
	CardioSessions       int `json:"cardioSessions"`
	Meals                int `json:"meals"`
	SupplementDoses      int `json:"supplementDoses"`
	RoutineCompletions   int `json:"routineCompletions"`
	Groups               int `json:"groups"`
}

type UserSummary struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	Name         string    `json:"name" db:"name"`
	Role         auth.Role `json:"role" db:"role"`
	Onboarded    bool      `json:"onboarded" db:"onboarded"`
	WorkoutCount int       `json:"workoutCount" db:"workout_count"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type RoleUpdate struct {
	Role auth.Role `json:"role"`
}
