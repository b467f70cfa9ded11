package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthpremium/internal/adapters/artifacts"
	"github.com/zatekoja/healthpremium/internal/adapters/cache"
	"github.com/zatekoja/healthpremium/internal/api/handlers"
	"github.com/zatekoja/healthpremium/internal/api/middleware"
	"github.com/zatekoja/healthpremium/internal/api/routes"
	"github.com/zatekoja/healthpremium/internal/application/services"
	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/internal/infrastructure/clients/redis"
	"github.com/zatekoja/healthpremium/internal/infrastructure/observability"
	"github.com/zatekoja/healthpremium/pkg/config"
	"github.com/zatekoja/healthpremium/pkg/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env, cfg.LogLevel)

	log.Info().
		Str("service", cfg.OTEL.ServiceName).
		Str("version", cfg.OTEL.ServiceVersion).
		Str("env", cfg.Env).
		Int("age_threshold", cfg.Premium.AgeThreshold).
		Msg("Starting premium estimator API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
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

	// Model bundles are loaded once; the server never starts without both.
	bundles, err := artifacts.LoadBundleSet(artifacts.PathsFromConfig(&cfg.Artifacts))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load model artifacts")
	}
	for _, schemaErr := range bundles.CheckSchema(entities.FeatureColumns[:]) {
		log.Warn().Err(schemaErr).Msg("Model bundle does not accept the encoder's feature schema; estimates for it will fail")
	}
	log.Info().Str("dir", cfg.Artifacts.Dir).Msg("Model artifacts loaded")

	premiumService := services.NewPremiumService(
		bundles,
		services.NewFeatureEncoder(services.NewRiskScorer()),
		services.NewModelSelector(cfg.Premium.AgeThreshold),
		cfg.Premium.Currency,
	)
	premiumService.SetMetrics(metrics)

	// Optional response cache for the static form endpoints
	var cacheMiddleware *middleware.CacheMiddleware
	if cfg.Cache.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis, retry.DefaultConfig())
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable; serving without response cache")
		} else {
			defer redisClient.Close()
			ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
			cacheMiddleware = middleware.NewCacheMiddleware(cache.NewRedisAdapter(redisClient), ttl, metrics)
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Dur("ttl", ttl).Msg("Cache middleware initialized")
		}
	}

	router := routes.NewRouter(
		handlers.NewPremiumHandler(premiumService),
		cacheMiddleware,
		cfg.Server.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
