package routines

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/metrics"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	List(ctx context.Context, userID int64) ([]Routine, error)
	Create(ctx context.Context, userID int64, req CreateRequest) (*Routine, error)
	Delete(ctx context.Context, userID int64, routineID int64) error
	Complete(ctx context.Context, userID int64, routineID int64, items []string, at time.Time) (*Completion, error)
	Completions(ctx context.Context, userID int64, day time.Time) ([]Completion, error)
	CompletionTimes(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
}

type Handler struct {
	repo           routinesRepo
	metricsManager *metrics.Manager
	responder      *api.Responder

	NowFunc func() time.Time
}

func NewHandler(repo routinesRepo, metricsManager *metrics.Manager, responder *api.Responder) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		responder:      responder,
		NowFunc:        time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	rs := h.responder
	r.HandleFunc("/api/routines", rs.HandleUser(h.HandleList)).Methods("GET")
	r.HandleFunc("/api/routines", rs.HandleUser(h.HandleCreate)).Methods("POST")
	r.HandleFunc("/api/routines/completions", rs.HandleUser(h.HandleCompletions)).Methods("GET")
	r.HandleFunc("/api/routines/streak", rs.HandleUser(h.HandleStreak)).Methods("GET")
	r.HandleFunc("/api/routines/{id:[0-9]+}", rs.HandleUser(h.HandleDelete)).Methods("DELETE")
	r.HandleFunc("/api/routines/{id:[0-9]+}/complete", rs.HandleUser(h.HandleComplete)).Methods("POST")
}

func cleanItems(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	list, err := h.repo.List(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var req CreateRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return api.BadRequest("routine name is required")
	}
	req.Items = cleanItems(req.Items)
	if len(req.Items) == 0 {
		return api.BadRequest("a routine needs at least one item")
	}

	created, err := h.repo.Create(r.Context(), user.ID, req)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			return api.NotFound(err.Error())
		}
		return api.Internal(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}

	var items []string
	var req CompleteRequest
	if _, err := api.DecodeOptionalJSON(r, &req); err != nil {
		return err
	}
	if req.CompletedItems != nil {
		items = cleanItems(req.CompletedItems)
	}

	completion, err := h.repo.Complete(r.Context(), user.ID, id, items, h.NowFunc().UTC())
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			return api.NotFound(err.Error())
		}
		return api.Internal(err)
	}
	h.metricsManager.CounterRoutineCompletions.Inc()
	log.Debugf("user %d completed routine %d", user.ID, id)
	return pkg.WriteJSONResponse(w, http.StatusCreated, completion)
}

func (h *Handler) HandleCompletions(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	day, err := api.QueryDate(r, "date", h.NowFunc())
	if err != nil {
		return err
	}
	completions, err := h.repo.Completions(r.Context(), user.ID, day)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, completions)
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	now := h.NowFunc()
	times, err := h.repo.CompletionTimes(r.Context(), user.ID, stats.StreakWindowStart(now))
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, Streak{Days: stats.Streak(stats.CountByDay(times), now)})
}
