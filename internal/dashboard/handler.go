package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard_test

type snapshotLoader interface {
	Snapshot(ctx context.Context, userID int64, now time.Time) (*Snapshot, error)
}

type Handler struct {
	repo      snapshotLoader
	targets   stats.ComplianceTargets
	defaults  config.NutritionDefaults
	responder *api.Responder

	NowFunc func() time.Time
}

func NewHandler(
	repo snapshotLoader,
	compliance config.Compliance,
	defaults config.NutritionDefaults,
	responder *api.Responder,
) *Handler {
	return &Handler{
		repo:      repo,
		targets:   ComplianceTargets(compliance),
		defaults:  defaults,
		responder: responder,
		NowFunc:   time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/dashboard", h.responder.HandleUser(h.HandleDashboard)).Methods("GET")
	r.HandleFunc("/api/dashboard/weekly", h.responder.HandleUser(h.HandleWeekly)).Methods("GET")
}

// Get loads and computes the dashboard for userID. Also used by the MCP tools.
func (h *Handler) Get(ctx context.Context, userID int64) (*Dashboard, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.get")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", userID))

	now := h.NowFunc()
	snapshot, err := h.repo.Snapshot(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	d := Build(*snapshot, now, h.targets, h.defaults)
	span.SetAttributes(attribute.Int("compliance.overall", d.Compliance.Overall))
	return &d, nil
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	d, err := h.Get(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, d)
}

func (h *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	now := h.NowFunc()
	snapshot, err := h.repo.Snapshot(r.Context(), user.ID, now)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, BuildWeekly(*snapshot, now))
}
