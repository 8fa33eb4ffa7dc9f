package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mortgage-planner/repository"
)

const requestTimeout = 15 * time.Second

type Handlers struct {
	Mortgage *MortgageHandler
	Savings  *SavingsHandler
	Chart    *ChartHandler
	Cache    repository.CacheRepository
	Limiter  *RateLimiter
	Logger   *slog.Logger
}

func NewRouter(h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health(h.Cache, h.Logger))

		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(h.Limiter))
			r.Use(middleware.AllowContentType("application/json"))

			r.Post("/mortgage/calculate", h.Mortgage.Calculate)
			r.Post("/mortgage/schedule", h.Mortgage.Schedule)
			r.Post("/mortgage/scenarios", h.Mortgage.Scenarios)

			r.Post("/savings/calculate", h.Savings.Calculate)
			r.Post("/savings/projection", h.Savings.Projection)

			r.Post("/chart/calculate", h.Chart.Chart)
			r.Post("/chart/compare", h.Chart.Compare)

			r.Post("/ai/tips", h.Chart.Tip)
		})
	})

	return r
}

func health(cache repository.CacheRepository, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := cache.Ping(ctx); err != nil {
			logger.Error("cache ping failed", "cache", cache.Name(), "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"cache":  cache.Name(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"cache":  cache.Name(),
		})
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
