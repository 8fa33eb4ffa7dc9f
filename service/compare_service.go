package service

import (
	"context"
	"log/slog"

	"mortgage-planner/domain"
	"mortgage-planner/engine"
	"mortgage-planner/repository"
)

type CompareService struct {
	cache  repository.CacheRepository
	logger *slog.Logger
}

func NewCompareService(cache repository.CacheRepository, logger *slog.Logger) *CompareService {
	return &CompareService{cache: cache, logger: logger}
}

type compareKey struct {
	Loan    domain.LoanParameters    `json:"loan"`
	Savings domain.SavingsParameters `json:"savings"`
}

// Compare returns the offset-versus-savings benefit curves and their summary.
func (s *CompareService) Compare(ctx context.Context, req CompareRequest) (domain.ComparisonReport, error) {
	loan, savings, err := req.Resolve()
	if err != nil {
		return domain.ComparisonReport{}, err
	}

	return cached(ctx, s.cache, s.logger, "compare", compareKey{loan, savings}, func() (domain.ComparisonReport, error) {
		series := engine.Compare(
			engine.OffsetBenefit(loan),
			engine.YearlyBalances(savings),
			savings,
			loan.Years,
		)
		return domain.ComparisonReport{
			ComparisonSeries: series,
			Summary:          engine.Summarize(series),
		}, nil
	})
}
