package diet

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/metrics"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=diet_mocks_test.go -package=diet_test

type dietRepo interface {
	ListMeals(ctx context.Context, userID int64, day time.Time) ([]Meal, error)
	CreateMeal(ctx context.Context, userID int64, meal Meal) (*Meal, error)
	DeleteMeal(ctx context.Context, userID int64, mealID int64) error
	Consumed(ctx context.Context, userID int64, day time.Time) (stats.Macros, error)
	GetTarget(ctx context.Context, userID int64) (*stats.Macros, error)
	UpsertTarget(ctx context.Context, userID int64, target stats.Macros) error
}

type Handler struct {
	repo           dietRepo
	defaults       config.NutritionDefaults
	metricsManager *metrics.Manager
	responder      *api.Responder

	NowFunc func() time.Time
}

func NewHandler(
	repo dietRepo,
	defaults config.NutritionDefaults,
	metricsManager *metrics.Manager,
	responder *api.Responder,
) *Handler {
	return &Handler{
		repo:           repo,
		defaults:       defaults,
		metricsManager: metricsManager,
		responder:      responder,
		NowFunc:        time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	rs := h.responder
	r.HandleFunc("/api/diet/meals", rs.HandleUser(h.HandleListMeals)).Methods("GET")
	r.HandleFunc("/api/diet/meals", rs.HandleUser(h.HandleCreateMeal)).Methods("POST")
	r.HandleFunc("/api/diet/meals/{id}", rs.HandleUser(h.HandleDeleteMeal)).Methods("DELETE")
	r.HandleFunc("/api/diet/targets", rs.HandleUser(h.HandleGetTarget)).Methods("GET")
	r.HandleFunc("/api/diet/targets", rs.HandleUser(h.HandleUpdateTarget)).Methods("PUT")
	r.HandleFunc("/api/diet/summary", rs.HandleUser(h.HandleSummary)).Methods("GET")
}

func (h *Handler) HandleListMeals(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	day, err := api.QueryDate(r, "date", h.NowFunc())
	if err != nil {
		return err
	}
	meals, err := h.repo.ListMeals(r.Context(), user.ID, day)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, meals)
}

func validateMacros(m stats.Macros) error {
	if m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0 {
		return api.BadRequest("calories and macros cannot be negative")
	}
	return nil
}

func (h *Handler) HandleCreateMeal(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var meal Meal
	if err := api.DecodeJSON(r, &meal); err != nil {
		return err
	}
	meal.Name = strings.TrimSpace(meal.Name)
	if meal.Name == "" {
		return api.BadRequest("meal name is required")
	}
	meal.MealType = strings.ToLower(strings.TrimSpace(meal.MealType))
	if meal.MealType == "" {
		meal.MealType = "snack"
	}
	if !slices.Contains(MealTypes, meal.MealType) {
		return api.BadRequest("mealType must be one of breakfast, lunch, dinner, snack")
	}
	if err := validateMacros(meal.Macros()); err != nil {
		return err
	}
	if meal.EatenAt.IsZero() {
		meal.EatenAt = h.NowFunc().UTC()
	}

	created, err := h.repo.CreateMeal(r.Context(), user.ID, meal)
	if err != nil {
		return api.Internal(err)
	}
	h.metricsManager.CounterMealsLogged.Inc()
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteMeal(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, ErrMealNotFound) {
			return api.NotFound(err.Error())
		}
		return api.Internal(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// target loads the user's target, falling back to the configured defaults.
func (h *Handler) target(ctx context.Context, userID int64) (stats.Macros, error) {
	target, err := h.repo.GetTarget(ctx, userID)
	if errors.Is(err, ErrTargetNotFound) {
		return DefaultTarget(h.defaults), nil
	}
	if err != nil {
		return stats.Macros{}, err
	}
	return TargetOrDefault(target, h.defaults), nil
}

func (h *Handler) HandleGetTarget(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	target, err := h.target(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, target)
}

func (h *Handler) HandleUpdateTarget(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var target stats.Macros
	if err := api.DecodeJSON(r, &target); err != nil {
		return err
	}
	if err := validateMacros(target); err != nil {
		return err
	}
	if err := h.repo.UpsertTarget(r.Context(), user.ID, target); err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, target)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.summary")
	defer span.End()

	day, err := api.QueryDate(r, "date", h.NowFunc())
	if err != nil {
		return err
	}
	consumed, err := h.repo.Consumed(ctx, user.ID, day)
	if err != nil {
		return api.Internal(err)
	}
	target, err := h.target(ctx, user.ID)
	if err != nil {
		return api.Internal(err)
	}

	return pkg.WriteJSONResponseOK(w, Summary{
		Date:      stats.DayKey(day),
		Consumed:  consumed,
		Target:    target,
		Remaining: stats.Remaining(target, consumed),
	})
}
