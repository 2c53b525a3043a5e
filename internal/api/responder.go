package api

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	log "github.com/sirupsen/logrus"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// UserHandlerFunc receives the authenticated caller explicitly.
type UserHandlerFunc func(w http.ResponseWriter, r *http.Request, user auth.Identity) error

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Stack   string `json:"stack,omitempty"`
}

type envelope struct {
	Error errorBody `json:"error"`
}

// Responder is the single place where handler errors become HTTP responses.
type Responder struct {
	includeStack bool
}

func NewResponder(includeStack bool) *Responder {
	return &Responder{includeStack: includeStack}
}

func (rs *Responder) Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			rs.WriteError(w, r, err)
		}
	}
}

func (rs *Responder) HandleUser(h UserHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			rs.WriteError(w, r, Unauthorized("authentication required"))
			return
		}
		if err := h(w, r, user); err != nil {
			rs.WriteError(w, r, err)
		}
	}
}

func (rs *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := AsError(err)

	fields := log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": apiErr.Status,
	}
	if apiErr.Status >= http.StatusInternalServerError {
		log.WithFields(fields).Errorf("request failed: %s", err)
	} else {
		log.WithFields(fields).Debugf("request rejected: %s", err)
	}

	body := errorBody{
		Message: apiErr.Message,
		Status:  apiErr.Status,
	}
	if rs.includeStack {
		body.Stack = fmt.Sprintf("%+v", err)
	}

	if writeErr := pkg.WriteJSONResponse(w, apiErr.Status, envelope{Error: body}); writeErr != nil {
		log.Errorf("write error response: %s", writeErr)
	}
}

// AsError maps any error to an *Error; unknown errors become 500s.
func AsError(err error) *Error {
	var apiErr *Error
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}
