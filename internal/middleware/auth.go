package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const protectedPrefix = "/api/"

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

type AuthMiddlewareHandler struct {
	checker        tokenVerifier
	responder      *api.Responder
	publicPaths    map[string]bool
	publicPatterns []*regexp.Regexp
}

func NewAuthMiddlewareHandler(checker tokenVerifier, responder *api.Responder) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker:   checker,
		responder: responder,
		publicPaths: map[string]bool{
			"/health":               true,
			"/api/auth/register":    true,
			"/api/auth/login":       true,
			"/api/groups/public":    true,
			"/api/exercises/public": true,
		},
		publicPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^/api/users/[^/]+/public$`),
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsPublic(path string) bool {
	if !strings.HasPrefix(path, protectedPrefix) {
		return true
	}
	if h.publicPaths[path] {
		return true
	}
	for _, p := range h.publicPatterns {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}

// AuthCheck verifies the bearer token of every non-public request and attaches
// the caller's identity to the request context.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || h.pathIsPublic(r.URL.Path) {
				span.SetStatus(codes.Ok, "public")
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.ExtractBearer(r.Header.Get("Authorization"))
			if err != nil {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				span.SetStatus(codes.Error, "missing-auth-token")
				h.responder.WriteError(w, r, api.Unauthorized("authentication required"))
				return
			}

			identity, err := h.checker.Verify(token)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "invalid-token")
				h.responder.WriteError(w, r, api.Unauthorized("invalid or expired token"))
				return
			}

			span.SetAttributes(attribute.Int64("user.id", identity.ID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// AdminOnly rejects callers without the admin role. It must run after AuthCheck.
func AdminOnly(responder *api.Responder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				responder.WriteError(w, r, api.Unauthorized("authentication required"))
				return
			}
			if !identity.IsAdmin() {
				log.Warnf("non-admin user %d tried to reach %s", identity.ID, r.URL.Path)
				responder.WriteError(w, r, api.Forbidden("admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
