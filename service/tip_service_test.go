package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mortgage-planner/config"
	"mortgage-planner/domain"
	"mortgage-planner/logging"
)

func newTipService(cfg config.LLMConfig) *TipService {
	return NewTipService(NewCompareService(newFakeCache(), logging.Discard()), cfg, logging.Discard())
}

func TestTipService_DisabledUsesFallback(t *testing.T) {
	svc := newTipService(config.LLMConfig{Enabled: false})

	tip, err := svc.Tip(context.Background(), compareRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tip.Source != TipSourceFallback {
		t.Errorf("expected fallback source, got %q", tip.Source)
	}
	if !strings.Contains(tip.Tip, "offset account") {
		t.Errorf("unexpected fallback text: %q", tip.Tip)
	}
}

func TestTipService_CallsModel(t *testing.T) {
	var got chatRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Keep the offset for 12 years.  "}}]}`))
	}))
	defer server.Close()

	svc := newTipService(config.LLMConfig{
		URL:     server.URL,
		Model:   "test-model",
		APIKey:  "secret",
		Enabled: true,
		Timeout: 5 * time.Second,
	})

	tip, err := svc.Tip(context.Background(), compareRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tip.Source != TipSourceLLM || tip.Tip != "Keep the offset for 12 years." {
		t.Errorf("unexpected tip: %+v", tip)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 {
		t.Errorf("unexpected chat request: %+v", got)
	}
	if !strings.Contains(got.Messages[1].Content, "crossoverYear:") {
		t.Errorf("expected numeric summary in prompt, got %q", got.Messages[1].Content)
	}
	if auth != "Bearer secret" {
		t.Errorf("expected bearer token, got %q", auth)
	}
}

func TestTipService_ModelErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := newTipService(config.LLMConfig{URL: server.URL, Enabled: true, Timeout: 5 * time.Second})

	tip, err := svc.Tip(context.Background(), compareRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip.Source != TipSourceFallback {
		t.Errorf("expected fallback, got %+v", tip)
	}
}

func TestTipService_InvalidRequest(t *testing.T) {
	svc := newTipService(config.LLMConfig{})

	req := compareRequest(0)
	req.Mortgage.Years = 0

	if _, err := svc.Tip(context.Background(), req); err == nil {
		t.Errorf("expected validation error")
	}
}

func TestFallbackTip(t *testing.T) {
	svc := newTipService(config.LLMConfig{})

	cases := []struct {
		sum  domain.ComparisonSummary
		want string
	}{
		{domain.ComparisonSummary{CrossoverYear: -1}, "come out even"},
		{domain.ComparisonSummary{CrossoverYear: -1, MaxOffsetAdvantage: 42000, MaxOffsetAdvantageYear: 6}, "42,000 in year 6"},
		{domain.ComparisonSummary{CrossoverYear: 1, MaxSavingsAdvantage: 1500, MaxSavingsAdvantageYear: 3}, "from the first year"},
		{domain.ComparisonSummary{CrossoverYear: 7, MaxOffsetAdvantage: 12345.6, MaxOffsetAdvantageYear: 4}, "first 6 years, then switch to savings from year 7"},
	}

	for _, tc := range cases {
		if got := svc.fallbackTip(tc.sum); !strings.Contains(got, tc.want) {
			t.Errorf("expected %q in %q", tc.want, got)
		}
	}
}
