package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mortgage-planner/config"
	"mortgage-planner/domain"
	"mortgage-planner/logging"
	"mortgage-planner/repository"
	"mortgage-planner/service"
)

type unreachableCache struct {
	*repository.MemoryCache
}

func (unreachableCache) Ping(context.Context) error {
	return errors.New("dial tcp 10.0.0.5:6379: connect: connection refused")
}

func newTestRouter(t *testing.T, limit int) http.Handler {
	t.Helper()

	cache := repository.NewMemoryCache(time.Minute)
	t.Cleanup(func() { cache.Close() })
	return newTestRouterWithCache(t, limit, cache)
}

func newTestRouterWithCache(t *testing.T, limit int, cache repository.CacheRepository) http.Handler {
	t.Helper()

	logger := logging.Discard()

	mortgage := service.NewMortgageService(cache, logger)
	savings := service.NewSavingsService(cache, logger)
	compare := service.NewCompareService(cache, logger)

	limiter := NewRateLimiter(limit, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(Handlers{
		Mortgage: NewMortgageHandler(mortgage, service.NewScenarioService(mortgage, 2, 5), logger),
		Savings:  NewSavingsHandler(savings, logger),
		Chart: NewChartHandler(
			service.NewChartService(mortgage, savings),
			compare,
			service.NewTipService(compare, config.LLMConfig{}, logger),
			logger,
		),
		Cache:   cache,
		Limiter: limiter,
		Logger:  logger,
	})
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCalculateMortgage_OK(t *testing.T) {
	router := newTestRouter(t, 100)

	w := post(t, router, "/api/mortgage/calculate", `{
		"principal": 300000,
		"annualRatePercent": 5.0,
		"years": 30
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.MortgageResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.MonthlyPayment < 1610.45 || result.MonthlyPayment > 1610.47 {
		t.Errorf("expected 1610.46, got %.4f", result.MonthlyPayment)
	}
}

func TestCalculateMortgage_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/mortgage/calculate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateMortgage_BadRequest(t *testing.T) {
	router := newTestRouter(t, 100)

	w := post(t, router, "/api/mortgage/calculate", `{invalid-json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateMortgage_ValidationError(t *testing.T) {
	router := newTestRouter(t, 100)

	w := post(t, router, "/api/mortgage/calculate", `{
		"principal": 1000,
		"annualRatePercent": 5,
		"years": 10,
		"offsetAmount": 500,
		"offsetRatePercent": 4
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Field != "offsetRatePercent" {
		t.Errorf("expected offsetRatePercent, got %+v", resp)
	}
}

func TestCalculateMortgage_UnsupportedMediaType(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/api/mortgage/calculate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestEndpoints_OK(t *testing.T) {
	router := newTestRouter(t, 100)

	mortgage := `{"principal": 400000, "annualRatePercent": 6, "years": 25, "offsetAmount": 50000, "offsetMode": "reduceTerm", "offsetRatePercent": 6}`
	savings := `{"initialAmount": 50000, "monthlyContribution": 250, "annualInterestRatePercent": 4, "years": 20}`
	compareMortgage := `{"principal": 400000, "annualRatePercent": 6, "years": 25, "offsetMode": "reduceAmount", "offsetRatePercent": 6}`

	cases := map[string]string{
		"/api/mortgage/calculate": mortgage,
		"/api/mortgage/schedule":  mortgage,
		"/api/mortgage/scenarios": `{"scenarios": [` + mortgage + `, ` + mortgage + `]}`,
		"/api/savings/calculate":  savings,
		"/api/savings/projection": savings,
		"/api/chart/calculate":    `{"mortgage": ` + mortgage + `, "savings": ` + savings + `}`,
		"/api/chart/compare":      `{"mortgage": ` + compareMortgage + `, "savings": ` + savings + `, "offsetAmount": 50000}`,
		"/api/ai/tips":            `{"mortgage": ` + compareMortgage + `, "savings": ` + savings + `, "offsetAmount": 50000}`,
	}

	for path, body := range cases {
		t.Run(path, func(t *testing.T) {
			w := post(t, router, path, body)
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}
		})
	}
}

func TestCompare_ZeroOffsetResponse(t *testing.T) {
	router := newTestRouter(t, 100)

	w := post(t, router, "/api/chart/compare", `{
		"mortgage": {"principal": 400000, "annualRatePercent": 6, "years": 25, "offsetMode": "reduceAmount", "offsetRatePercent": 6},
		"savings": {"initialAmount": 0, "monthlyContribution": 250, "annualInterestRatePercent": 4, "taxRatePercent": 15, "periodicity": "monthly", "years": 20},
		"offsetAmount": 0
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var report domain.ComparisonReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Years) != 26 || report.Years[0] != 0 {
		t.Fatalf("unexpected year axis: %v", report.Years)
	}
	for i, v := range report.OffsetBenefit {
		if v != 0 {
			t.Errorf("index %d: expected 0, got %v", i, v)
		}
	}
}

func TestScenarios_TooMany(t *testing.T) {
	router := newTestRouter(t, 100)

	one := `{"principal": 1000, "annualRatePercent": 5, "years": 1}`
	w := post(t, router, "/api/mortgage/scenarios", `{"scenarios": [`+one+`,`+one+`,`+one+`,`+one+`,`+one+`,`+one+`]}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["cache"] != "memory" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, 2)
	body := `{"principal": 1000, "annualRatePercent": 5, "years": 1}`

	for i := 0; i < 2; i++ {
		if w := post(t, router, "/api/mortgage/calculate", body); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := post(t, router, "/api/mortgage/calculate", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header")
	}
}

func TestHealth_CacheUnavailable(t *testing.T) {
	cache := repository.NewMemoryCache(time.Minute)
	t.Cleanup(func() { cache.Close() })
	router := newTestRouterWithCache(t, 100, unreachableCache{cache})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("expected ping error to stay out of the response, got %s", w.Body.String())
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 || body["status"] != "unavailable" || body["cache"] != "memory" {
		t.Errorf("unexpected health body: %v", body)
	}
}
