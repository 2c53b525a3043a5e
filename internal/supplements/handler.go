package supplements

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
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=supplements_mocks_test.go -package=supplements_test

type supplementsRepo interface {
	List(ctx context.Context, userID int64) ([]Supplement, error)
	Create(ctx context.Context, userID int64, s Supplement) (*Supplement, error)
	Delete(ctx context.Context, userID int64, supplementID int64) error
	Track(ctx context.Context, userID int64, supplementID int64) error
	Untrack(ctx context.Context, userID int64, supplementID int64) error
	LogDose(ctx context.Context, userID int64, supplementID int64, takenAt time.Time) (*DoseLog, error)
	TrackedWithDoses(ctx context.Context, userID int64, day time.Time) ([]TrackedSupplement, error)
	TrackedCount(ctx context.Context, userID int64) (int, error)
	DoseTimes(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
}

type Handler struct {
	repo           supplementsRepo
	metricsManager *metrics.Manager
	responder      *api.Responder

	NowFunc func() time.Time
}

func NewHandler(repo supplementsRepo, metricsManager *metrics.Manager, responder *api.Responder) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		responder:      responder,
		NowFunc:        time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	rs := h.responder
	r.HandleFunc("/api/supplements", rs.HandleUser(h.HandleList)).Methods("GET")
	r.HandleFunc("/api/supplements", rs.HandleUser(h.HandleCreate)).Methods("POST")
	r.HandleFunc("/api/supplements/today", rs.HandleUser(h.HandleToday)).Methods("GET")
	r.HandleFunc("/api/supplements/weekly", rs.HandleUser(h.HandleWeekly)).Methods("GET")
	r.HandleFunc("/api/supplements/streak", rs.HandleUser(h.HandleStreak)).Methods("GET")
	r.HandleFunc("/api/supplements/{id:[0-9]+}", rs.HandleUser(h.HandleDelete)).Methods("DELETE")
	r.HandleFunc("/api/supplements/{id:[0-9]+}/track", rs.HandleUser(h.HandleTrack)).Methods("POST")
	r.HandleFunc("/api/supplements/{id:[0-9]+}/track", rs.HandleUser(h.HandleUntrack)).Methods("DELETE")
	r.HandleFunc("/api/supplements/{id:[0-9]+}/logs", rs.HandleUser(h.HandleLogDose)).Methods("POST")
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, ErrSupplementNotFound), errors.Is(err, ErrNotTracked):
		return api.NewError(http.StatusNotFound, err.Error(), err)
	default:
		return api.Internal(err)
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	list, err := h.repo.List(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var s Supplement
	if err := api.DecodeJSON(r, &s); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return api.BadRequest("supplement name is required")
	}
	s.Dosage = strings.TrimSpace(s.Dosage)
	s.Frequency = strings.TrimSpace(s.Frequency)

	created, err := h.repo.Create(r.Context(), user.ID, s)
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
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleTrack(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Track(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleUntrack(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Untrack(r.Context(), user.ID, id); err != nil {
		return mapRepoErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type logDoseRequest struct {
	TakenAt *time.Time `json:"takenAt"`
}

func (h *Handler) HandleLogDose(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}

	takenAt := h.NowFunc().UTC()
	// the body is optional; an empty one logs a dose taken now
	var req logDoseRequest
	if _, err := api.DecodeOptionalJSON(r, &req); err != nil {
		return err
	}
	if req.TakenAt != nil {
		takenAt = req.TakenAt.UTC()
	}

	dose, err := h.repo.LogDose(r.Context(), user.ID, id, takenAt)
	if err != nil {
		return mapRepoErr(err)
	}
	h.metricsManager.CounterSupplementDoses.Inc()
	return pkg.WriteJSONResponse(w, http.StatusCreated, dose)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.supplements.today")
	defer span.End()

	now := h.NowFunc()
	tracked, err := h.repo.TrackedWithDoses(ctx, user.ID, now)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, BuildToday(now, tracked))
}

func (h *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.supplements.weekly")
	defer span.End()

	now := h.NowFunc()
	doses, err := h.repo.DoseTimes(ctx, user.ID, stats.SeriesWindowStart(now))
	if err != nil {
		return api.Internal(err)
	}
	tracked, err := h.repo.TrackedCount(ctx, user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, stats.WeeklySupplementSeries(stats.CountByDay(doses), now, tracked))
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	now := h.NowFunc()
	doses, err := h.repo.DoseTimes(r.Context(), user.ID, stats.StreakWindowStart(now))
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, Streak{Days: stats.Streak(stats.CountByDay(doses), now)})
}
