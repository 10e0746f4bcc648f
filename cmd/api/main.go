package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pressbox/internal/common/pagination"
	appconfig "pressbox/internal/config"
	pgRepo "pressbox/internal/infra/adapter/persistence/postgres"
	"pressbox/internal/infra/db"
	"pressbox/internal/observability/logging"
	"pressbox/internal/observability/tracing"
	"pressbox/internal/repository"
	"pressbox/internal/resilience/circuitbreaker"

	articleUC "pressbox/internal/usecase/article"
	userUC "pressbox/internal/usecase/user"

	hhttp "pressbox/internal/handler/http"
	harticle "pressbox/internal/handler/http/article"
	hauth "pressbox/internal/handler/http/auth"
	"pressbox/internal/handler/http/middleware"
	"pressbox/internal/handler/http/requestid"
	huser "pressbox/internal/handler/http/user"
	authservice "pressbox/internal/service/auth"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := appconfig.Load()
	if err != nil {
		logger.Error("configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg.DatabaseURL)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler, userRepo, articleRepo := setupServer(logger, database, cfg, version)

	stopMetrics := startBusinessMetrics(logger, userRepo, articleRepo)
	defer stopMetrics()

	runServer(logger, handler, cfg, version)
}

// initDatabase opens the connection pool and applies the schema.
func initDatabase(logger *slog.Logger, dsn string) *sql.DB {
	database, err := db.Open(dsn)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, and routes, and returns the
// fully decorated handler plus the repositories the metrics updater polls.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *appconfig.Config, version string) (http.Handler, repository.UserRepository, repository.ArticleRepository) {
	// Queries run through the circuit breaker; the health probes ping the
	// raw pool directly.
	guarded := circuitbreaker.NewDBCircuitBreaker(database)
	userRepo := pgRepo.NewUserRepo(guarded)
	articleRepo := pgRepo.NewArticleRepo(guarded)

	tokens := authservice.NewService(userRepo, cfg.SecretKey)
	gate := &hauth.Gate{Tokens: tokens}
	userSvc := &userUC.Service{Repo: userRepo}
	articleSvc := &articleUC.Service{
		Repo:  articleRepo,
		Pages: pagination.Config{PageSize: cfg.ArticlesPerPage},
	}

	mux := http.NewServeMux()
	hauth.Register(mux, userSvc, gate)
	harticle.Register(mux, articleSvc, gate)
	huser.Register(mux, userSvc, articleSvc)

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	// Outermost first: CORS answers preflights before anything else runs,
	// request IDs and traces exist before logging, and the body limit
	// guards every decoder.
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(cfg.BodyLimit)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)
	handler = middleware.CORS(corsCfg)(handler)

	return handler, userRepo, articleRepo
}

// startBusinessMetrics refreshes the articles_total and users_total gauges
// from the store once a minute. Returns a stop function.
func startBusinessMetrics(logger *slog.Logger, users repository.UserRepository, articles repository.ArticleRepository) func() {
	ctx, cancel := context.WithCancel(context.Background())

	refresh := func() {
		if n, err := articles.CountArticles(ctx); err == nil {
			hhttp.UpdateArticlesTotal(n)
		} else if !errors.Is(err, context.Canceled) {
			logger.Warn("article count refresh failed", slog.Any("error", err))
		}
		if n, err := users.CountUsers(ctx); err == nil {
			hhttp.UpdateUsersTotal(n)
		} else if !errors.Is(err, context.Canceled) {
			logger.Warn("user count refresh failed", slog.Any("error", err))
		}
	}

	go func() {
		refresh()
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()

	return cancel
}

// runServer starts the HTTP server and blocks until a termination signal,
// then drains in-flight requests within the configured shutdown timeout.
func runServer(logger *slog.Logger, handler http.Handler, cfg *appconfig.Config, version string) {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version),
			slog.Int("articles_per_page", cfg.ArticlesPerPage))
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped")
	}
}
