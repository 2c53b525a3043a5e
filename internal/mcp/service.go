package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/dashboard"
	"github.com/ggrinberger/grindlog-sub000/internal/diet"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/workouts"
)

// DashboardSource computes a user's dashboard.
type DashboardSource interface {
	Get(ctx context.Context, userID int64) (*dashboard.Dashboard, error)
}

// ProgressionRepo provides the raw logs behind an exercise progression.
type ProgressionRepo interface {
	ProgressionEntries(ctx context.Context, userID int64, exerciseID int64) ([]stats.ProgressionEntry, error)
}

// NutritionRepo provides consumed macros and the user's target.
type NutritionRepo interface {
	Consumed(ctx context.Context, userID int64, day time.Time) (stats.Macros, error)
	GetTarget(ctx context.Context, userID int64) (*stats.Macros, error)
}

// userService is what the tool handlers need, already scoped to one user.
type userService interface {
	GetDashboard(ctx context.Context) (*dashboard.Dashboard, error)
	GetProgression(ctx context.Context, exerciseID int64) (*workouts.ProgressionResponse, error)
	GetNutritionSummary(ctx context.Context, day time.Time) (*diet.Summary, error)
}

// UserService serves read-only data for a single user.
type UserService struct {
	userID      int64
	dashboard   DashboardSource
	progression ProgressionRepo
	nutrition   NutritionRepo
	defaults    config.NutritionDefaults
}

func NewUserService(
	userID int64,
	dashboardSource DashboardSource,
	progressionRepo ProgressionRepo,
	nutritionRepo NutritionRepo,
	defaults config.NutritionDefaults,
) *UserService {
	return &UserService{
		userID:      userID,
		dashboard:   dashboardSource,
		progression: progressionRepo,
		nutrition:   nutritionRepo,
		defaults:    defaults,
	}
}

func (s *UserService) GetDashboard(ctx context.Context) (*dashboard.Dashboard, error) {
	return s.dashboard.Get(ctx, s.userID)
}

func (s *UserService) GetProgression(ctx context.Context, exerciseID int64) (*workouts.ProgressionResponse, error) {
	entries, err := s.progression.ProgressionEntries(ctx, s.userID, exerciseID)
	if err != nil {
		return nil, err
	}
	resp := workouts.BuildProgression(exerciseID, entries)
	return &resp, nil
}

func (s *UserService) GetNutritionSummary(ctx context.Context, day time.Time) (*diet.Summary, error) {
	consumed, err := s.nutrition.Consumed(ctx, s.userID, day)
	if err != nil {
		return nil, err
	}
	target, err := s.nutrition.GetTarget(ctx, s.userID)
	if err != nil && !errors.Is(err, diet.ErrTargetNotFound) {
		return nil, err
	}
	resolved := diet.TargetOrDefault(target, s.defaults)
	return &diet.Summary{
		Date:      stats.DayKey(day),
		Consumed:  consumed,
		Target:    resolved,
		Remaining: stats.Remaining(resolved, consumed),
	}, nil
}
