package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/metrics"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per client IP within the given router name.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
	responder *api.Responder,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP, err := pkg.ReadUserIP(r)
			if err != nil {
				clientIP = "unknown"
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				routerName+"|"+clientIP,
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				responder.WriteError(w, r, api.Internal(fmt.Errorf("rate limiter: %w", err)))
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			log.Warnf("rate limited request to %s from %s", r.URL.Path, clientIP)
			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			responder.WriteError(w, r, api.NewError(
				http.StatusTooManyRequests,
				fmt.Sprintf("retry after %.0f seconds", res.RetryAfter.Seconds()),
				nil,
			))
		})
	}
}
