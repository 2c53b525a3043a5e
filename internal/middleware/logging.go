package middleware

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LogRequest tags every request with an id, logs it once served and then drains
// whatever the handler left unread in the body so the connection can be reused.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(resp, r)

			fields := log.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     resp.statusCode,
				"duration":   time.Since(start).String(),
				"user_agent": r.Header.Get("User-Agent"),
			}
			if unread := drainAndClose(r.Body); unread > 0 {
				fields["unread_body_bytes"] = unread
			}
			log.WithFields(fields).Debug("request served")
		})
	}
}

func drainAndClose(body io.ReadCloser) int64 {
	if body == nil {
		return 0
	}
	n, _ := io.Copy(io.Discard, body)
	_ = body.Close()
	return n
}
