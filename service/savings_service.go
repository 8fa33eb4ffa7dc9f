package service

import (
	"context"
	"log/slog"

	"mortgage-planner/domain"
	"mortgage-planner/engine"
	"mortgage-planner/repository"
)

type SavingsService struct {
	cache  repository.CacheRepository
	logger *slog.Logger
}

func NewSavingsService(cache repository.CacheRepository, logger *slog.Logger) *SavingsService {
	return &SavingsService{cache: cache, logger: logger}
}

func (s *SavingsService) Calculate(ctx context.Context, req SavingsRequest) (domain.SavingsResult, error) {
	p, err := req.Resolve()
	if err != nil {
		return domain.SavingsResult{}, err
	}
	return cached(ctx, s.cache, s.logger, "savings", p, func() (domain.SavingsResult, error) {
		return engine.CalculateSavings(p)
	})
}

// Projection returns the closed-form summary and the simulated yearly balances.
func (s *SavingsService) Projection(ctx context.Context, req SavingsRequest) (domain.SavingsProjection, error) {
	p, err := req.Resolve()
	if err != nil {
		return domain.SavingsProjection{}, err
	}
	return cached(ctx, s.cache, s.logger, "projection", p, func() (domain.SavingsProjection, error) {
		summary, err := engine.CalculateSavings(p)
		if err != nil {
			return domain.SavingsProjection{}, err
		}
		return domain.SavingsProjection{
			Summary: summary,
			Yearly:  engine.YearlyBalances(p),
		}, nil
	})
}
