package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"mortgage-planner/config"
	httpLayer "mortgage-planner/http"
	"mortgage-planner/logging"
	"mortgage-planner/repository"
	"mortgage-planner/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	cache := newCache(cfg, logger)

	mortgageService := service.NewMortgageService(cache, logger)
	savingsService := service.NewSavingsService(cache, logger)
	chartService := service.NewChartService(mortgageService, savingsService)
	compareService := service.NewCompareService(cache, logger)
	tipService := service.NewTipService(compareService, cfg.LLM, logger)
	scenarioService := service.NewScenarioService(mortgageService, cfg.ScenarioWorkers, cfg.MaxScenarios)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Mortgage: httpLayer.NewMortgageHandler(mortgageService, scenarioService, logger),
		Savings:  httpLayer.NewSavingsHandler(savingsService, logger),
		Chart:    httpLayer.NewChartHandler(chartService, compareService, tipService, logger),
		Cache:    cache,
		Limiter:  rateLimiter,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", "addr", cfg.HTTPAddr, "cache", cache.Name(), "llm", cfg.LLM.Enabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", "error", err)
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("error closing cache", "error", err)
		}
	}

	logger.Info("server exited")
}

// newCache picks Redis when an address is configured and falls back to the
// in-memory cache when Redis is absent or unreachable at startup.
func newCache(cfg config.Config, logger *slog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheTTL)
	}

	cache := repository.NewRedisCache(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.CacheTTL, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		cache.Close()
		return repository.NewMemoryCache(cfg.CacheTTL)
	}
	return cache
}
