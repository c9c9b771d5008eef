package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/cache"
	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/database"
	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/search"
	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/upstream"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/handlers"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/middleware"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/routes"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/ratelimit"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/providers"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/auth"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/directoryapi"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/postgres"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/recaptcha"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/redis"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/typesense"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/observability"
	"github.com/aplusacademy/tutor-directory/backend/internal/scheduler"
	"github.com/aplusacademy/tutor-directory/backend/pkg/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized successfully")

	// Initialize Redis client. The directory works without it, just
	// without the shared listing cache.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis client")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Typesense client")
	} else {
		log.Info().Msg("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	} else {
		// In-process fallback keeps the listing cache and rate-limit state
		// working on a single node when Redis is down.
		cacheProvider = cache.NewMemoryAdapter()
		log.Warn().Msg("Using in-memory cache (Redis unavailable)")
	}

	// Initialize adapters
	apiClient := directoryapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	baseTutorAdapter := upstream.NewTutorCatalogAdapter(apiClient)
	cachedTutorAdapter := upstream.NewCachedTutorCatalogAdapter(
		baseTutorAdapter, cacheProvider, cfg.Directory.CacheTTL, metrics)
	overrideAdapter := database.NewTutorOverrideAdapter(pgClient)
	var tutorRepo repositories.TutorRepository = upstream.NewOverlayTutorCatalogAdapter(
		cachedTutorAdapter, overrideAdapter)
	log.Info().Msg("Tutor catalog wrapped with listing cache and override layer")

	jobAdapter := upstream.NewJobBoardAdapter(apiClient)
	locationAdapter := upstream.NewLocationCatalogAdapter(apiClient, cacheProvider)
	registrarAdapter := upstream.NewRegistrarAdapter(apiClient)

	leadAdapter := database.NewLeadAdapter(pgClient)
	registrationAdapter := database.NewRegistrationAdapter(pgClient)

	var searchRepo repositories.TutorSearchRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to init Typesense schema")
		}
		searchRepo = adapter
	}

	var verifier recaptcha.Verifier
	if cfg.Recaptcha.Enabled && cfg.Recaptcha.Secret != "" {
		verifier = recaptcha.NewClient(cfg.Recaptcha.Secret)
	} else {
		verifier = recaptcha.Disabled{}
		log.Warn().Msg("reCAPTCHA verification disabled")
	}

	limiter := ratelimit.New(ratelimit.HireLimit, ratelimit.HireWindow, cacheProvider)

	// Initialize services
	tutorService := services.NewTutorService(tutorRepo, searchRepo)
	jobService := services.NewJobService(jobAdapter)
	locationService := services.NewLocationService(locationAdapter)
	registrationService := services.NewRegistrationService(registrarAdapter, registrationAdapter, verifier)
	hireService := services.NewHireService(tutorRepo, leadAdapter, limiter, verifier)

	// Daily refresh keeps the listing cache ahead of its freshness window
	// and the search index aligned with the refreshed batch.
	sched := scheduler.New(cachedTutorAdapter, tutorService, cfg.Directory.RefreshCron)
	if err := sched.Start(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to start refresh scheduler")
	} else {
		defer sched.Stop()
	}

	// Initialize handlers
	tutorHandler := handlers.NewTutorHandler(tutorService)
	jobHandler := handlers.NewJobHandler(jobService)
	locationHandler := handlers.NewLocationHandler(locationService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	hireHandler := handlers.NewHireHandler(hireService)

	var adminHandler *handlers.AdminHandler
	var adminAuth func(http.Handler) http.Handler
	if cfg.Admin.Enabled() {
		tokenService := auth.NewTokenService(cfg.Admin.Secret, cfg.Admin.TokenTTL)
		adminService := services.NewAdminService(
			services.AdminCredentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
			tokenService, tutorRepo, overrideAdapter)
		adminHandler = handlers.NewAdminHandler(adminService)
		adminAuth = middleware.AdminAuthMiddleware(adminService)
		log.Info().Msg("Admin API enabled")
	} else {
		log.Warn().Msg("Admin API disabled (credentials not configured)")
	}

	cacheMiddleware := middleware.NewCacheMiddleware(cacheProvider)
	log.Info().Msg("Cache middleware initialized successfully")

	// Set up router
	router := routes.NewRouter(
		tutorHandler,
		jobHandler,
		locationHandler,
		registrationHandler,
		hireHandler,
		adminHandler,
		adminAuth,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
