package health

import (
	"context"
	"net/http"
	"time"

	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const pingTimeout = 2 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db      dbPinger
	rdb     redis.Cmdable
	NowFunc func() time.Time
}

func NewHandler(db dbPinger, rdb redis.Cmdable) *Handler {
	return &Handler{
		db:      db,
		rdb:     rdb,
		NowFunc: time.Now,
	}
}

type Status struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.HandleHealth).Methods("GET")
	r.HandleFunc("/health/ready", h.HandleReady).Methods("GET")
}

// HandleHealth only reports that the process is serving.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := pkg.WriteJSONResponseOK(w, Status{
		Status:    "ok",
		Timestamp: h.NowFunc().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Errorf("write health response: %s", err)
	}
}

// HandleReady pings postgres and redis; any failure turns the response into a 503.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	checks := map[string]string{"postgres": "ok", "redis": "ok"}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		log.Warnf("readiness: postgres ping: %s", err)
		checks["postgres"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		log.Warnf("readiness: redis ping: %s", err)
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "unavailable"
	}
	if err := pkg.WriteJSONResponse(w, status, Status{
		Status:    overall,
		Timestamp: h.NowFunc().UTC().Format(time.RFC3339),
		Checks:    checks,
	}); err != nil {
		log.Errorf("write readiness response: %s", err)
	}
}
