package progress

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type progressRepo interface {
	ListMeasurements(ctx context.Context, userID int64, page api.Page) ([]Measurement, error)
	LatestMeasurement(ctx context.Context, userID int64) (*Measurement, error)
	AddMeasurement(ctx context.Context, userID int64, measurement Measurement) (*Measurement, error)
	DeleteMeasurement(ctx context.Context, userID int64, id int64) error
	ListGoals(ctx context.Context, userID int64) ([]Goal, error)
	CreateGoal(ctx context.Context, userID int64, g Goal) (*Goal, error)
	UpdateGoal(ctx context.Context, userID int64, goalID int64, u GoalUpdate) (*Goal, error)
	DeleteGoal(ctx context.Context, userID int64, goalID int64) error
}

type Handler struct {
	repo       progressRepo
	pagination config.Pagination
	responder  *api.Responder

	NowFunc func() time.Time
}

func NewHandler(repo progressRepo, pagination config.Pagination, responder *api.Responder) *Handler {
	return &Handler{
		repo:       repo,
		pagination: pagination,
		responder:  responder,
		NowFunc:    time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	rs := h.responder
	r.HandleFunc("/api/progress/measurements", rs.HandleUser(h.HandleListMeasurements)).Methods("GET")
	r.HandleFunc("/api/progress/measurements", rs.HandleUser(h.HandleAddMeasurement)).Methods("POST")
	r.HandleFunc("/api/progress/measurements/latest", rs.HandleUser(h.HandleLatestMeasurement)).Methods("GET")
	r.HandleFunc("/api/progress/measurements/{id:[0-9]+}", rs.HandleUser(h.HandleDeleteMeasurement)).Methods("DELETE")
	r.HandleFunc("/api/progress/goals", rs.HandleUser(h.HandleListGoals)).Methods("GET")
	r.HandleFunc("/api/progress/goals", rs.HandleUser(h.HandleCreateGoal)).Methods("POST")
	r.HandleFunc("/api/progress/goals/{id:[0-9]+}", rs.HandleUser(h.HandleUpdateGoal)).Methods("PUT")
	r.HandleFunc("/api/progress/goals/{id:[0-9]+}", rs.HandleUser(h.HandleDeleteGoal)).Methods("DELETE")
}

func mapRepoErr(err error) error {
	if errors.Is(err, ErrMeasurementNotFound) || errors.Is(err, ErrGoalNotFound) {
		return api.NewError(http.StatusNotFound, err.Error(), err)
	}
	return api.Internal(err)
}

func (h *Handler) HandleListMeasurements(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	list, err := h.repo.ListMeasurements(r.Context(), user.ID, page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleLatestMeasurement(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	m, err := h.repo.LatestMeasurement(r.Context(), user.ID)
	if err != nil {
		return mapRepoErr(err)
	}
	return pkg.WriteJSONResponseOK(w, m)
}

func (h *Handler) HandleAddMeasurement(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var m Measurement
	if err := api.DecodeJSON(r, &m); err != nil {
		return err
	}
	if m.WeightKg <= 0 {
		return api.BadRequest("weightKg must be positive")
	}
	if m.BodyFatPct != nil && (*m.BodyFatPct < 0 || *m.BodyFatPct > 100) {
		return api.BadRequest("bodyFatPct must be between 0 and 100")
	}
	if m.MeasuredAt.IsZero() {
		m.MeasuredAt = h.NowFunc().UTC()
	}

	created, err := h.repo.AddMeasurement(r.Context(), user.ID, m)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleDeleteMeasurement(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteMeasurement(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	goals, err := h.repo.ListGoals(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, goals)
}

// parseGoalInput validates the input and converts it to an update.
// An empty deadline string clears the deadline.
func parseGoalInput(in GoalInput) (GoalUpdate, error) {
	u := GoalUpdate{
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Achieved:     in.Achieved,
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return GoalUpdate{}, api.BadRequest("goal title cannot be empty")
		}
		u.Title = &title
	}
	if in.Unit != nil {
		unit := strings.TrimSpace(*in.Unit)
		u.Unit = &unit
	}
	if in.Deadline != nil {
		if *in.Deadline == "" {
			u.ClearDeadline = true
		} else {
			deadline, err := time.Parse(api.DateLayout, *in.Deadline)
			if err != nil {
				return GoalUpdate{}, api.BadRequest("invalid deadline, expected YYYY-MM-DD")
			}
			u.Deadline = &deadline
		}
	}
	return u, nil
}

func (h *Handler) HandleCreateGoal(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var in GoalInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}
	if in.Title == nil {
		return api.BadRequest("goal title is required")
	}
	u, err := parseGoalInput(in)
	if err != nil {
		return err
	}

	goal := Goal{
		Title:    *u.Title,
		Deadline: u.Deadline,
	}
	if u.TargetValue != nil {
		goal.TargetValue = *u.TargetValue
	}
	if u.CurrentValue != nil {
		goal.CurrentValue = *u.CurrentValue
	}
	if u.Unit != nil {
		goal.Unit = *u.Unit
	}
	if u.Achieved != nil {
		goal.Achieved = *u.Achieved
	}

	created, err := h.repo.CreateGoal(r.Context(), user.ID, goal)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	var in GoalInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}
	u, err := parseGoalInput(in)
	if err != nil {
		return err
	}

	updated, err := h.repo.UpdateGoal(r.Context(), user.ID, id, u)
	if err != nil {
		return mapRepoErr(err)
	}
	return pkg.WriteJSONResponseOK(w, updated)
}

func (h *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteGoal(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
