package users

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/metrics"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

const MinPasswordLength = 6

type usersRepo interface {
	Create(ctx context.Context, newUser NewUser) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetPublicProfile(ctx context.Context, username string) (*PublicProfile, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*User, error)
	Onboard(ctx context.Context, id int64, onboarding Onboarding) (*User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

type tokenIssuer interface {
	Issue(identity auth.Identity) (string, error)
}

type Handler struct {
	repo           usersRepo
	tokens         tokenIssuer
	metricsManager *metrics.Manager
	responder      *api.Responder
}

func NewHandler(
	repo usersRepo,
	tokens tokenIssuer,
	metricsManager *metrics.Manager,
	responder *api.Responder,
) *Handler {
	return &Handler{
		repo:           repo,
		tokens:         tokens,
		metricsManager: metricsManager,
		responder:      responder,
	}
}

// SetupAuthRoutes registers register/login on authRouter, which is expected to be rate limited.
func (h *Handler) SetupAuthRoutes(authRouter *mux.Router) {
	authRouter.HandleFunc("/register", h.responder.Handle(h.HandleRegister)).Methods("POST")
	authRouter.HandleFunc("/login", h.responder.Handle(h.HandleLogin)).Methods("POST")
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/auth/me", h.responder.HandleUser(h.HandleMe)).Methods("GET")
	r.HandleFunc("/api/users/profile", h.responder.HandleUser(h.HandleMe)).Methods("GET")
	r.HandleFunc("/api/users/profile", h.responder.HandleUser(h.HandleUpdateProfile)).Methods("PUT")
	r.HandleFunc("/api/users/onboarding", h.responder.HandleUser(h.HandleOnboarding)).Methods("PUT")
	r.HandleFunc("/api/users/password", h.responder.HandleUser(h.HandleChangePassword)).Methods("PUT")
	r.HandleFunc("/api/users/{username}/public", h.responder.Handle(h.HandlePublicProfile)).Methods("GET")
}

func validateRegistration(req *RegisterRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)

	if req.Email == "" || req.Username == "" || req.Password == "" || req.Name == "" {
		return api.BadRequest("email, username, password and name are required")
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return api.BadRequest("invalid email")
	}
	if len(req.Password) < MinPasswordLength {
		return api.BadRequestf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := validateRegistration(&req); err != nil {
		return err
	}

	hash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return api.Internal(err)
	}

	user, err := h.repo.Create(ctx, NewUser{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
	})
	switch {
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrUsernameTaken):
		return api.Conflict(err.Error())
	case err != nil:
		return api.Internal(err)
	}

	token, err := h.tokens.Issue(user.Identity())
	if err != nil {
		return api.Internal(err)
	}

	h.metricsManager.CounterRegistrations.Inc()
	log.Debugf("new user registered: %d", user.ID)
	return pkg.WriteJSONResponse(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return api.BadRequest("email and password are required")
	}

	user, err := h.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, ErrUserNotFound) {
		h.metricsManager.CounterLogins.WithLabelValues("failed").Inc()
		return api.Unauthorized("invalid credentials")
	}
	if err != nil {
		return api.Internal(err)
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		h.metricsManager.CounterLogins.WithLabelValues("failed").Inc()
		return api.Unauthorized("invalid credentials")
	}

	token, err := h.tokens.Issue(user.Identity())
	if err != nil {
		return api.Internal(err)
	}

	h.metricsManager.CounterLogins.WithLabelValues("ok").Inc()
	return pkg.WriteJSONResponseOK(w, AuthResponse{Token: token, User: user})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	user, err := h.repo.GetByID(r.Context(), caller.ID)
	if errors.Is(err, ErrUserNotFound) {
		return api.NotFound("user not found")
	}
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, user)
}

func validateProfileUpdate(update ProfileUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return api.BadRequest("name cannot be empty")
	}
	if update.HeightCm != nil && (*update.HeightCm <= 0 || *update.HeightCm > 300) {
		return api.BadRequest("height must be between 0 and 300 cm")
	}
	return nil
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var update ProfileUpdate
	if err := api.DecodeJSON(r, &update); err != nil {
		return err
	}
	if err := validateProfileUpdate(update); err != nil {
		return err
	}

	user, err := h.repo.UpdateProfile(r.Context(), caller.ID, update)
	if errors.Is(err, ErrUserNotFound) {
		return api.NotFound("user not found")
	}
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, user)
}

func (h *Handler) HandleOnboarding(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var onboarding Onboarding
	if err := api.DecodeJSON(r, &onboarding); err != nil {
		return err
	}
	if err := validateProfileUpdate(onboarding.ProfileUpdate); err != nil {
		return err
	}
	if onboarding.InitialWeightKg != nil && *onboarding.InitialWeightKg <= 0 {
		return api.BadRequest("initial weight must be positive")
	}

	user, err := h.repo.Onboard(r.Context(), caller.ID, onboarding)
	if errors.Is(err, ErrUserNotFound) {
		return api.NotFound("user not found")
	}
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, user)
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var req ChangePasswordRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		return err
	}
	if len(req.NewPassword) < MinPasswordLength {
		return api.BadRequestf("password must be at least %d characters", MinPasswordLength)
	}

	user, err := h.repo.GetByID(r.Context(), caller.ID)
	if errors.Is(err, ErrUserNotFound) {
		return api.NotFound("user not found")
	}
	if err != nil {
		return api.Internal(err)
	}
	if !pkg.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return api.Unauthorized("current password is wrong")
	}

	hash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return api.Internal(err)
	}
	if err := h.repo.UpdatePasswordHash(r.Context(), caller.ID, hash); err != nil {
		return api.Internal(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) HandlePublicProfile(w http.ResponseWriter, r *http.Request) error {
	username := mux.Vars(r)["username"]
	profile, err := h.repo.GetPublicProfile(r.Context(), username)
	if errors.Is(err, ErrUserNotFound) {
		return api.NotFound("profile not found")
	}
	if err != nil {
		return api.Internal(err)
	}
	return pkg.WriteJSONResponseOK(w, profile)
}
