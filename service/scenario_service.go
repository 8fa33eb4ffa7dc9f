package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"mortgage-planner/domain"
)

// ScenarioService evaluates many loan scenarios on a bounded worker pool.
type ScenarioService struct {
	mortgage *MortgageService
	workers  int
	max      int
}

func NewScenarioService(mortgage *MortgageService, workers, max int) *ScenarioService {
	return &ScenarioService{mortgage: mortgage, workers: workers, max: max}
}

// CalculateMany returns one outcome per request in input order. Invalid
// scenarios are reported in their outcome and do not stop the batch.
func (s *ScenarioService) CalculateMany(ctx context.Context, reqs []MortgageRequest) ([]domain.ScenarioOutcome, error) {
	if len(reqs) == 0 {
		return nil, domain.Invalid("scenarios", "at least one scenario is required")
	}
	if len(reqs) > s.max {
		return nil, domain.Invalid("scenarios", "at most %d scenarios per request", s.max)
	}

	out := make([]domain.ScenarioOutcome, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := s.mortgage.Calculate(gctx, req)
			var verr *domain.ValidationError
			switch {
			case err == nil:
				out[i] = domain.ScenarioOutcome{Index: i, Result: &result}
			case errors.As(err, &verr):
				out[i] = domain.ScenarioOutcome{Index: i, Error: verr.Message, Field: verr.Field}
			default:
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
