package workouts

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/metrics"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	ListExercises(ctx context.Context, userID int64) ([]Exercise, error)
	ListPublicExercises(ctx context.Context) ([]Exercise, error)
	CreateExercise(ctx context.Context, userID int64, exercise Exercise) (*Exercise, error)
	ListPlans(ctx context.Context, userID int64, page api.Page) ([]Plan, error)
	GetPlan(ctx context.Context, userID int64, planID int64) (*Plan, error)
	CreatePlan(ctx context.Context, userID int64, plan Plan) (*Plan, error)
	DeletePlan(ctx context.Context, userID int64, planID int64) error
	ListSessions(ctx context.Context, userID int64, page api.Page) ([]Session, error)
	CreateSession(ctx context.Context, userID int64, session Session) (*Session, error)
	DeleteSession(ctx context.Context, userID int64, sessionID int64) error
	AddExerciseLog(ctx context.Context, userID int64, log ExerciseLog) (*ExerciseLog, error)
	ListExerciseLogs(ctx context.Context, userID int64, exerciseID int64, page api.Page) ([]ExerciseLog, error)
	ProgressionEntries(ctx context.Context, userID int64, exerciseID int64) ([]stats.ProgressionEntry, error)
	ListCardio(ctx context.Context, userID int64, page api.Page) ([]CardioSession, error)
	AddCardio(ctx context.Context, userID int64, cardio CardioSession) (*CardioSession, error)
	DeleteCardio(ctx context.Context, userID int64, cardioID int64) error
}

type Handler struct {
	repo           workoutsRepo
	pagination     config.Pagination
	metricsManager *metrics.Manager
	responder      *api.Responder
}

func NewHandler(
	repo workoutsRepo,
	pagination config.Pagination,
	metricsManager *metrics.Manager,
	responder *api.Responder,
) *Handler {
	return &Handler{
		repo:           repo,
		pagination:     pagination,
		metricsManager: metricsManager,
		responder:      responder,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	rs := h.responder
	r.HandleFunc("/api/exercises/public", rs.Handle(h.HandlePublicExercises)).Methods("GET")

	r.HandleFunc("/api/workouts/exercises", rs.HandleUser(h.HandleListExercises)).Methods("GET")
	r.HandleFunc("/api/workouts/exercises", rs.HandleUser(h.HandleCreateExercise)).Methods("POST")
	r.HandleFunc("/api/workouts/exercises/{id}/logs", rs.HandleUser(h.HandleListExerciseLogs)).Methods("GET")
	r.HandleFunc("/api/workouts/exercises/{id}/logs", rs.HandleUser(h.HandleAddExerciseLog)).Methods("POST")
	r.HandleFunc("/api/workouts/exercises/{id}/progression", rs.HandleUser(h.HandleProgression)).Methods("GET")

	r.HandleFunc("/api/workouts/plans", rs.HandleUser(h.HandleListPlans)).Methods("GET")
	r.HandleFunc("/api/workouts/plans", rs.HandleUser(h.HandleCreatePlan)).Methods("POST")
	r.HandleFunc("/api/workouts/plans/{id}", rs.HandleUser(h.HandleGetPlan)).Methods("GET")
	r.HandleFunc("/api/workouts/plans/{id}", rs.HandleUser(h.HandleDeletePlan)).Methods("DELETE")

	r.HandleFunc("/api/workouts/sessions", rs.HandleUser(h.HandleListSessions)).Methods("GET")
	r.HandleFunc("/api/workouts/sessions", rs.HandleUser(h.HandleCreateSession)).Methods("POST")
	r.HandleFunc("/api/workouts/sessions/{id}", rs.HandleUser(h.HandleDeleteSession)).Methods("DELETE")

	r.HandleFunc("/api/workouts/cardio", rs.HandleUser(h.HandleListCardio)).Methods("GET")
	r.HandleFunc("/api/workouts/cardio", rs.HandleUser(h.HandleAddCardio)).Methods("POST")
	r.HandleFunc("/api/workouts/cardio/{id}", rs.HandleUser(h.HandleDeleteCardio)).Methods("DELETE")
}

// mapRepoErr turns the package sentinels into client errors.
func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrCardioNotFound):
		return api.NewError(http.StatusNotFound, unwrapSentinel(err).Error(), err)
	case pkg.IsForeignKeyViolationError(err):
		return api.NewError(http.StatusBadRequest, "referenced entity does not exist", err)
	default:
		return api.Internal(err)
	}
}

func unwrapSentinel(err error) error {
	for _, s := range []error{ErrExerciseNotFound, ErrPlanNotFound, ErrSessionNotFound, ErrCardioNotFound} {
		if errors.Is(err, s) {
			return s
		}
	}
	return err
}

func (h *Handler) HandlePublicExercises(w http.ResponseWriter, r *http.Request) error {
	exercises, err := h.repo.ListPublicExercises(r.Context())
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, exercises)
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	exercises, err := h.repo.ListExercises(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, exercises)
}

func (h *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var exercise Exercise
	if err := api.DecodeJSON(r, &exercise); err != nil {
		return err
	}
	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		return api.BadRequest("exercise name is required")
	}
	if exercise.Category == "" {
		exercise.Category = CategoryStrength
	}
	if exercise.Category != CategoryStrength && exercise.Category != CategoryCardio {
		return api.BadRequest("category must be strength or cardio")
	}

	created, err := h.repo.CreateExercise(r.Context(), user.ID, exercise)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	plans, err := h.repo.ListPlans(r.Context(), user.ID, page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, plans)
}

func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	plan, err := h.repo.GetPlan(r.Context(), user.ID, id)
	if err != nil {
		return mapRepoErr(err)
	}
	return pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.createPlan")
	defer span.End()

	var plan Plan
	if err := api.DecodeJSON(r, &plan); err != nil {
		return err
	}
	plan.Name = strings.TrimSpace(plan.Name)
	if plan.Name == "" {
		return api.BadRequest("plan name is required")
	}
	if len(plan.Exercises) == 0 {
		return api.BadRequest("a plan needs at least one exercise")
	}
	for _, pe := range plan.Exercises {
		if pe.ExerciseID <= 0 {
			return api.BadRequest("every plan exercise needs an exerciseId")
		}
		if pe.TargetSets < 0 || pe.TargetReps < 0 || pe.TargetWeight < 0 {
			return api.BadRequest("targets cannot be negative")
		}
	}
	span.SetAttributes(attribute.Int("plan.exercises", len(plan.Exercises)))

	created, err := h.repo.CreatePlan(ctx, user.ID, plan)
	if err != nil {
		return mapRepoErr(err)
	}
	log.Debugf("user %d created plan %d", user.ID, created.ID)
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeletePlan(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	sessions, err := h.repo.ListSessions(r.Context(), user.ID, page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, sessions)
}

func validateLog(l ExerciseLog) error {
	if l.ExerciseID <= 0 {
		return api.BadRequest("exerciseId is required")
	}
	if l.WeightKg < 0 || l.Sets < 0 || l.Reps < 0 || l.DurationMinutes < 0 || l.DistanceKm < 0 {
		return api.BadRequest("log values cannot be negative")
	}
	return nil
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.createSession")
	defer span.End()

	var session Session
	if err := api.DecodeJSON(r, &session); err != nil {
		return err
	}
	if session.DurationMinutes < 0 {
		return api.BadRequest("duration cannot be negative")
	}
	for _, l := range session.Logs {
		if err := validateLog(l); err != nil {
			return err
		}
	}

	created, err := h.repo.CreateSession(ctx, user.ID, session)
	if err != nil {
		return mapRepoErr(err)
	}
	h.metricsManager.CounterWorkoutsLogged.Inc()
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteSession(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleListExerciseLogs(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	exerciseID, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	logs, err := h.repo.ListExerciseLogs(r.Context(), user.ID, exerciseID, page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, logs)
}

func (h *Handler) HandleAddExerciseLog(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	exerciseID, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	var l ExerciseLog
	if err := api.DecodeJSON(r, &l); err != nil {
		return err
	}
	l.ExerciseID = exerciseID
	if err := validateLog(l); err != nil {
		return err
	}

	created, err := h.repo.AddExerciseLog(r.Context(), user.ID, l)
	if err != nil {
		return mapRepoErr(err)
	}
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleProgression(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.progression")
	defer span.End()

	exerciseID, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	entries, err := h.repo.ProgressionEntries(ctx, user.ID, exerciseID)
	if err != nil {
		return api.Internal(err)
	}

	return pkg.WriteJSONResponseOK(w, BuildProgression(exerciseID, entries))
}

// BuildProgression turns raw logs into the per-day chart series.
func BuildProgression(exerciseID int64, entries []stats.ProgressionEntry) ProgressionResponse {
	points := stats.Progression(entries)
	resp := ProgressionResponse{
		ExerciseID: exerciseID,
		Points:     make([]ProgressionPointOutput, 0, len(points)),
	}

	var best stats.ProgressionPoint
	for _, p := range points {
		resp.Points = append(resp.Points, ProgressionPointOutput{
			Date:      p.Date,
			MaxWeight: p.MaxWeight,
			MaxReps:   p.MaxReps,
			Label:     stats.FormatWeight(p.MaxWeight) + " kg",
		})
		if p.MaxWeight > best.MaxWeight {
			best = p
		}
	}
	resp.BestWeight = stats.FormatWeight(best.MaxWeight)
	resp.EstimatedOneRM = stats.EstimatedOneRepMax(best.MaxWeight, best.MaxReps)
	return resp
}

func (h *Handler) HandleListCardio(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	sessions, err := h.repo.ListCardio(r.Context(), user.ID, page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, sessions)
}

func (h *Handler) HandleAddCardio(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var cardio CardioSession
	if err := api.DecodeJSON(r, &cardio); err != nil {
		return err
	}
	cardio.Activity = strings.TrimSpace(cardio.Activity)
	if cardio.Activity == "" {
		return api.BadRequest("activity is required")
	}
	if cardio.DurationMinutes < 0 || cardio.DistanceKm < 0 || cardio.CaloriesBurned < 0 {
		return api.BadRequest("cardio values cannot be negative")
	}

	created, err := h.repo.AddCardio(r.Context(), user.ID, cardio)
	if err != nil {
		return api.Internal(err)
	}
	h.metricsManager.CounterWorkoutsLogged.Inc()
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleDeleteCardio(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteCardio(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
