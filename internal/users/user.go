package users

import (
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/auth"
)

type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"`
	Name            string    `json:"name"`
	Role            auth.Role `json:"role"`
	HeightCm        *float64  `json:"heightCm"`
	FitnessGoal     string    `json:"fitnessGoal"`
	ExperienceLevel string    `json:"experienceLevel"`
	IsPublic        bool      `json:"isPublic"`
	Onboarded       bool      `json:"onboarded"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) Identity() auth.Identity {
	return auth.Identity{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

type PublicProfile struct {
	Username        string    `json:"username"`
	Name            string    `json:"name"`
	FitnessGoal     string    `json:"fitnessGoal"`
	ExperienceLevel string    `json:"experienceLevel"`
	WorkoutCount    int       `json:"workoutCount"`
	MemberSince     time.Time `json:"memberSince"`
}

type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
	Name         string
}

// ProfileUpdate holds the fields a user may change; nil fields stay untouched.
type ProfileUpdate struct {
	Name            *string  `json:"name"`
	HeightCm        *float64 `json:"heightCm"`
	FitnessGoal     *string  `json:"fitnessGoal"`
	ExperienceLevel *string  `json:"experienceLevel"`
	IsPublic        *bool    `json:"isPublic"`
}

type Onboarding struct {
	ProfileUpdate
	InitialWeightKg *float64 `json:"initialWeightKg"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
