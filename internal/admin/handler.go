package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=admin_mocks_test.go -package=admin_test

type adminRepo interface {
	Stats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context, page api.Page) ([]UserSummary, error)
	SetRole(ctx context.Context, userID int64, role auth.Role) error
}

type Handler struct {
	repo       adminRepo
	pagination config.Pagination
	responder  *api.Responder
}

func NewHandler(repo adminRepo, pagination config.Pagination, responder *api.Responder) *Handler {
	return &Handler{
		repo:       repo,
		pagination: pagination,
		responder:  responder,
	}
}

// SetupRoutes registers the admin routes on adminRouter, which must already be
// mounted at /api/admin behind the admin gate.
func (h *Handler) SetupRoutes(adminRouter *mux.Router) {
	rs := h.responder
	adminRouter.HandleFunc("/stats", rs.HandleUser(h.HandleStats)).Methods("GET")
	adminRouter.HandleFunc("/users", rs.HandleUser(h.HandleListUsers)).Methods("GET")
	adminRouter.HandleFunc("/users/{id:[0-9]+}/role", rs.HandleUser(h.HandleSetRole)).Methods("PUT")
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	s, err := h.repo.Stats(r.Context())
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, s)
}

func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	list, err := h.repo.ListUsers(r.Context(), page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleSetRole(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	var req RoleUpdate
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	if !req.Role.Valid() {
		return api.BadRequest("role must be user or admin")
	}
	if id == user.ID && req.Role != auth.RoleAdmin {
		return api.BadRequest("admins cannot demote themselves")
	}

	if err := h.repo.SetRole(r.Context(), id, req.Role); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return api.NotFound(err.Error())
		}
		return api.Internal(err)
	}
	log.Infof("admin %d set role of user %d to %s", user.ID, id, req.Role)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
