package service

import (
	"context"
	"log/slog"

	"mortgage-planner/domain"
	"mortgage-planner/engine"
	"mortgage-planner/repository"
)

type MortgageService struct {
	cache  repository.CacheRepository
	logger *slog.Logger
}

func NewMortgageService(cache repository.CacheRepository, logger *slog.Logger) *MortgageService {
	return &MortgageService{cache: cache, logger: logger}
}

// Calculate returns the payment summary for a loan.
func (s *MortgageService) Calculate(ctx context.Context, req MortgageRequest) (domain.MortgageResult, error) {
	p, err := req.Resolve()
	if err != nil {
		return domain.MortgageResult{}, err
	}
	return cached(ctx, s.cache, s.logger, "mortgage", p, func() (domain.MortgageResult, error) {
		return engine.CalculateMortgage(p)
	})
}

// Schedule returns the summary together with the yearly and monthly schedules.
func (s *MortgageService) Schedule(ctx context.Context, req MortgageRequest) (domain.AmortizationSchedule, error) {
	p, err := req.Resolve()
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}
	return cached(ctx, s.cache, s.logger, "schedule", p, func() (domain.AmortizationSchedule, error) {
		summary, err := engine.CalculateMortgage(p)
		if err != nil {
			return domain.AmortizationSchedule{}, err
		}
		return domain.AmortizationSchedule{
			Summary: summary,
			Yearly:  engine.YearlyAmortization(p),
			Monthly: engine.MonthlyAmortization(p),
		}, nil
	})
}
