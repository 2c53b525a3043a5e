package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/ggrinberger/grindlog-sub000/internal/admin"
	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/dashboard"
	"github.com/ggrinberger/grindlog-sub000/internal/db"
	"github.com/ggrinberger/grindlog-sub000/internal/diet"
	"github.com/ggrinberger/grindlog-sub000/internal/groups"
	"github.com/ggrinberger/grindlog-sub000/internal/health"
	"github.com/ggrinberger/grindlog-sub000/internal/middleware"
	"github.com/ggrinberger/grindlog-sub000/internal/progress"
	"github.com/ggrinberger/grindlog-sub000/internal/routines"
	"github.com/ggrinberger/grindlog-sub000/internal/supplements"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/metrics"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/internal/users"
	"github.com/ggrinberger/grindlog-sub000/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	tokens      *auth.TokenService
	responder   *api.Responder

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	JWTSecret               string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	tokens, err := auth.NewTokenService(params.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("new token service: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("grindlog", "api", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "grindlog-api", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		tokens:      tokens,
		responder:   api.NewResponder(!cfg.IsProduction()),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() http.Handler {
	r := mux.NewRouter()
	rs := s.responder

	health.NewHandler(s.dbPool, s.redisClient).SetupRoutes(r)

	usersHandler := users.NewHandler(users.NewRepo(s.dbPool), s.tokens, s.metricsManager, rs)
	usersHandler.SetupRoutes(r)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"auth",
		s.config.AuthRateLimitAllowedPerMin,
		s.metricsManager,
		rs,
	))
	usersHandler.SetupAuthRoutes(authRouter)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middleware.AdminOnly(rs))
	admin.NewHandler(admin.NewRepo(s.dbPool), s.config.Pagination, rs).SetupRoutes(adminRouter)

	workouts.NewHandler(workouts.NewRepo(s.dbPool), s.config.Pagination, s.metricsManager, rs).SetupRoutes(r)
	diet.NewHandler(diet.NewRepo(s.dbPool), s.config.NutritionDefaults, s.metricsManager, rs).SetupRoutes(r)
	supplements.NewHandler(supplements.NewRepo(s.dbPool), s.metricsManager, rs).SetupRoutes(r)
	routines.NewHandler(routines.NewRepo(s.dbPool), s.metricsManager, rs).SetupRoutes(r)
	progress.NewHandler(progress.NewRepo(s.dbPool), s.config.Pagination, rs).SetupRoutes(r)
	groups.NewHandler(groups.NewRepo(s.dbPool), s.config.Pagination, rs).SetupRoutes(r)
	dashboard.NewHandler(
		dashboard.NewRepo(s.dbPool),
		s.config.Compliance,
		s.config.NutritionDefaults,
		rs,
	).SetupRoutes(r)

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokens, rs)

	// mux skips r.Use for unmatched routes; unknown /api paths still need a token
	r.NotFoundHandler = authMiddleware.AuthCheck()(
		http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			rs.WriteError(w, req, api.NotFound("route not found"))
		}),
	)

	r.Use(otelmux.Middleware("main-router"))
	r.Use(middleware.PanicRecovery(s.metricsManager, rs))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(authMiddleware.AuthCheck())

	// preflight requests never match a route, so CORS wraps the router itself
	return middleware.Cors(s.config.AllowedOrigins)(r)
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop accepting requests before the pool and redis go away under them
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
