package groups

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=groups_mocks_test.go -package=groups_test

type groupsRepo interface {
	Create(ctx context.Context, ownerID int64, req CreateGroupRequest) (*Group, error)
	ListPublic(ctx context.Context, page api.Page) ([]Group, error)
	ListMine(ctx context.Context, userID int64) ([]Group, error)
	Get(ctx context.Context, groupID int64) (*Group, error)
	MemberRole(ctx context.Context, groupID int64, userID int64) (string, error)
	Join(ctx context.Context, groupID int64, userID int64) error
	Leave(ctx context.Context, groupID int64, userID int64) error
	Members(ctx context.Context, groupID int64) ([]Member, error)
	Posts(ctx context.Context, groupID int64, page api.Page) ([]Post, error)
	CreatePost(ctx context.Context, groupID int64, userID int64, req CreatePostRequest) (*Post, error)
}

type Handler struct {
	repo       groupsRepo
	pagination config.Pagination
	responder  *api.Responder
}

func NewHandler(repo groupsRepo, pagination config.Pagination, responder *api.Responder) *Handler {
	return &Handler{
		repo:       repo,
		pagination: pagination,
		responder:  responder,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	rs := h.responder
	r.HandleFunc("/api/groups/public", rs.Handle(h.HandleListPublic)).Methods("GET")
	r.HandleFunc("/api/groups", rs.HandleUser(h.HandleCreate)).Methods("POST")
	r.HandleFunc("/api/groups/mine", rs.HandleUser(h.HandleListMine)).Methods("GET")
	r.HandleFunc("/api/groups/{id:[0-9]+}", rs.HandleUser(h.HandleGet)).Methods("GET")
	r.HandleFunc("/api/groups/{id:[0-9]+}/join", rs.HandleUser(h.HandleJoin)).Methods("POST")
	r.HandleFunc("/api/groups/{id:[0-9]+}/leave", rs.HandleUser(h.HandleLeave)).Methods("POST")
	r.HandleFunc("/api/groups/{id:[0-9]+}/members", rs.HandleUser(h.HandleMembers)).Methods("GET")
	r.HandleFunc("/api/groups/{id:[0-9]+}/posts", rs.HandleUser(h.HandleListPosts)).Methods("GET")
	r.HandleFunc("/api/groups/{id:[0-9]+}/posts", rs.HandleUser(h.HandleCreatePost)).Methods("POST")
}

// requireMember returns 403 unless the user belongs to the group.
func (h *Handler) requireMember(ctx context.Context, groupID, userID int64) error {
	_, err := h.repo.MemberRole(ctx, groupID, userID)
	switch {
	case errors.Is(err, ErrNotMember):
		return api.Forbidden(ErrNotMember.Error())
	case err != nil:
		return api.Internal(err)
	}
	return nil
}

func (h *Handler) HandleListPublic(w http.ResponseWriter, r *http.Request) error {
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	list, err := h.repo.ListPublic(r.Context(), page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	list, err := h.repo.ListMine(r.Context(), user.ID)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	var req CreateGroupRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return api.BadRequest("group name is required")
	}
	req.Description = strings.TrimSpace(req.Description)

	created, err := h.repo.Create(r.Context(), user.ID, req)
	switch {
	case errors.Is(err, ErrGroupNameTaken):
		return api.Conflict(err.Error())
	case err != nil:
		return api.Internal(err)
	}
	log.Debugf("user %d created group %d", user.ID, created.ID)
	return pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) loadGroup(ctx context.Context, r *http.Request) (*Group, error) {
	id, err := api.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	group, err := h.repo.Get(ctx, id)
	switch {
	case errors.Is(err, ErrGroupNotFound):
		return nil, api.NotFound(err.Error())
	case err != nil:
		return nil, api.Internal(err)
	}
	return group, nil
}

// HandleGet shows public groups to anyone and private groups to members only.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	group, err := h.loadGroup(r.Context(), r)
	if err != nil {
		return err
	}
	if !group.IsPublic {
		if err := h.requireMember(r.Context(), group.ID, user.ID); err != nil {
			return err
		}
	}
	return pkg.WriteJSONResponseOK(w, group)
}

func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	group, err := h.loadGroup(r.Context(), r)
	if err != nil {
		return err
	}
	if !group.IsPublic {
		return api.Forbidden("group is private")
	}
	if err := h.repo.Join(r.Context(), group.ID, user.ID); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return api.NotFound(ErrGroupNotFound.Error())
		}
		return api.Internal(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleLeave(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	role, err := h.repo.MemberRole(r.Context(), id, user.ID)
	switch {
	case errors.Is(err, ErrNotMember):
		return api.NotFound(err.Error())
	case err != nil:
		return api.Internal(err)
	case role == RoleOwner:
		return api.BadRequest("the owner cannot leave the group")
	}
	if err := h.repo.Leave(r.Context(), id, user.ID); err != nil {
		if errors.Is(err, ErrNotMember) {
			return api.NotFound(err.Error())
		}
		return api.Internal(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	if err := h.requireMember(r.Context(), id, user.ID); err != nil {
		return err
	}
	members, err := h.repo.Members(r.Context(), id)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, members)
}

func (h *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	page, err := api.QueryPage(r, h.pagination)
	if err != nil {
		return err
	}
	if err := h.requireMember(r.Context(), id, user.ID); err != nil {
		return err
	}
	posts, err := h.repo.Posts(r.Context(), id, page)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, posts)
}

func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request, user auth.Identity) error {
	id, err := api.PathID(r, "id")
	if err != nil {
		return err
	}
	var req CreatePostRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return api.BadRequest("post content is required")
	}
	if req.Kind == "" {
		req.Kind = "note"
	}
	if !slices.Contains(PostKinds, req.Kind) {
		return api.BadRequest("kind must be one of workout, meal, goal, note")
	}
	if err := h.requireMember(r.Context(), id, user.ID); err != nil {
		return err
	}

	post, err := h.repo.CreatePost(r.Context(), id, user.ID, req)
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponse(w, http.StatusCreated, post)
}
