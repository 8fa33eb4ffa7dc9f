package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mortgage-planner/config"
	"mortgage-planner/domain"
)

const (
	TipSourceLLM      = "llm"
	TipSourceFallback = "fallback"

	tipMaxTokens = 200
)

const tipSystemPrompt = `You are a financial advisor. Give SHORT advice (under 300 characters) on whether to keep money in an offset account or a savings account.
crossoverYear is the first year savings pulls ahead; -1 means the offset account always wins.
Positive difference means the offset account is ahead, negative means savings is ahead.
Write 2-3 short sentences. No currency symbols, no bullet points, no markdown.`

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// TipService asks an external language model to phrase advice from the
// comparison numbers. It never fails because the model is unavailable.
type TipService struct {
	compare    *CompareService
	cfg        config.LLMConfig
	httpClient *http.Client
	logger     *slog.Logger
}

func NewTipService(compare *CompareService, cfg config.LLMConfig, logger *slog.Logger) *TipService {
	return &TipService{
		compare:    compare,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (s *TipService) Tip(ctx context.Context, req CompareRequest) (domain.Tip, error) {
	report, err := s.compare.Compare(ctx, req)
	if err != nil {
		return domain.Tip{}, err
	}

	if !s.cfg.Enabled {
		return domain.Tip{Tip: s.fallbackTip(report.Summary), Source: TipSourceFallback}, nil
	}

	text, err := s.callLLM(ctx, s.tipPrompt(report))
	if err != nil {
		s.logger.Warn("tip model unavailable, using fallback", "error", err)
		return domain.Tip{Tip: s.fallbackTip(report.Summary), Source: TipSourceFallback}, nil
	}
	return domain.Tip{Tip: text, Source: TipSourceLLM}, nil
}

func (s *TipService) tipPrompt(report domain.ComparisonReport) string {
	sum := report.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "crossoverYear: %d\n", sum.CrossoverYear)
	fmt.Fprintf(&b, "maxOffsetAdvantage: %.0f at year %d\n", sum.MaxOffsetAdvantage, sum.MaxOffsetAdvantageYear)
	fmt.Fprintf(&b, "maxSavingsAdvantage: %.0f at year %d\n", sum.MaxSavingsAdvantage, sum.MaxSavingsAdvantageYear)
	fmt.Fprintf(&b, "benefitAtYear1: %.0f\n", sum.BenefitAtYear1)
	fmt.Fprintf(&b, "benefitAtYear3: %.0f\n", sum.BenefitAtYear3)
	fmt.Fprintf(&b, "benefitAtYear5: %.0f\n", sum.BenefitAtYear5)
	fmt.Fprintf(&b, "benefitAtYear10: %.0f\n", sum.BenefitAtYear10)
	fmt.Fprintf(&b, "difference by year:")
	for i, d := range report.Difference {
		if report.Years[i] == 0 {
			continue
		}
		fmt.Fprintf(&b, " %d=%.0f", report.Years[i], d)
	}
	return b.String()
}

func (s *TipService) callLLM(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: tipSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: tipMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("chat API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices in chat response")
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty chat response")
	}
	return text, nil
}

func (s *TipService) fallbackTip(sum domain.ComparisonSummary) string {
	p := message.NewPrinter(language.English)

	switch {
	case sum.CrossoverYear == -1 && sum.MaxOffsetAdvantage == 0:
		return "The offset account and savings account come out even over this horizon."
	case sum.CrossoverYear == -1:
		return p.Sprintf("Keep the money in the offset account for the whole horizon. Its advantage peaks at %.0f in year %d.",
			sum.MaxOffsetAdvantage, sum.MaxOffsetAdvantageYear)
	case sum.CrossoverYear == 1:
		return p.Sprintf("The savings account is ahead from the first year. Its advantage peaks at %.0f in year %d.",
			sum.MaxSavingsAdvantage, sum.MaxSavingsAdvantageYear)
	default:
		return p.Sprintf("Keep the money in the offset account for the first %d years, then switch to savings from year %d. The offset advantage peaks at %.0f in year %d.",
			sum.CrossoverYear-1, sum.CrossoverYear, sum.MaxOffsetAdvantage, sum.MaxOffsetAdvantageYear)
	}
}
