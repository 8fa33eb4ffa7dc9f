package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mortgage-planner/domain"
	"mortgage-planner/engine"
)

type ChartService struct {
	mortgage *MortgageService
	savings  *SavingsService
}

func NewChartService(mortgage *MortgageService, savings *SavingsService) *ChartService {
	return &ChartService{mortgage: mortgage, savings: savings}
}

// Chart assembles the combined mortgage and savings chart. Both requests are
// validated before any calculation starts.
func (s *ChartService) Chart(ctx context.Context, req ChartRequest) (domain.ChartResult, error) {
	loan, err := req.Mortgage.Resolve()
	if err != nil {
		return domain.ChartResult{}, err
	}
	savings, err := req.Savings.Resolve()
	if err != nil {
		return domain.ChartResult{}, err
	}

	var (
		summary       domain.MortgageResult
		projection    domain.SavingsProjection
		offsetYears   []domain.YearlyAmortization
		standardYears []domain.YearlyAmortization
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.mortgage.Calculate(gctx, req.Mortgage)
		if err != nil {
			return fmt.Errorf("mortgage summary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		projection, err = s.savings.Projection(gctx, req.Savings)
		if err != nil {
			return fmt.Errorf("savings projection: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		standard := loan
		standard.OffsetAmount = 0
		offsetYears = engine.YearlyAmortization(loan)
		standardYears = engine.YearlyAmortization(standard)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ChartResult{}, err
	}

	return domain.ChartResult{
		Mortgage:      summary,
		Savings:       projection.Summary,
		MortgageYears: offsetYears,
		SavingsYears:  projection.Yearly,
		Chart:         chartSeries(loan, savings, standardYears, offsetYears, projection.Yearly),
	}, nil
}

// chartSeries aligns the schedules on years 1..max(loan.Years, savings.Years).
// Loan balances drop to zero past the loan horizon; the savings balance holds
// its last value past its own horizon.
func chartSeries(
	loan domain.LoanParameters,
	savings domain.SavingsParameters,
	standardYears, offsetYears []domain.YearlyAmortization,
	balances []domain.YearlySavingsBalance,
) domain.ChartSeries {
	years := max(loan.Years, savings.Years)

	c := domain.ChartSeries{
		Years:           make([]int, 0, years),
		StandardBalance: make([]float64, 0, years),
		OffsetBalance:   make([]float64, 0, years),
		SavingsBalance:  make([]float64, 0, years),
		YearlyPrincipal: make([]float64, 0, years),
		YearlyInterest:  make([]float64, 0, years),
	}

	standard := loan.Principal
	offset := loan.Principal - loan.OffsetAmount

	for year := 1; year <= years; year++ {
		c.Years = append(c.Years, year)

		var principal, interest float64
		if year <= len(offsetYears) {
			principal = offsetYears[year-1].PrincipalPaid
			interest = offsetYears[year-1].InterestPaid
			offset = max(offset-principal, 0)
		} else {
			offset = 0
		}
		if year <= len(standardYears) {
			standard = max(standard-standardYears[year-1].PrincipalPaid, 0)
		} else {
			standard = 0
		}

		c.YearlyPrincipal = append(c.YearlyPrincipal, principal)
		c.YearlyInterest = append(c.YearlyInterest, interest)
		c.StandardBalance = append(c.StandardBalance, standard)
		c.OffsetBalance = append(c.OffsetBalance, offset)

		var balance float64
		switch {
		case year <= len(balances):
			balance = balances[year-1].Balance
		case len(balances) > 0:
			balance = balances[len(balances)-1].Balance
		default:
			balance = savings.InitialAmount + savings.MonthlyContribution*12*float64(year)
		}
		c.SavingsBalance = append(c.SavingsBalance, balance)
	}
	return c
}
