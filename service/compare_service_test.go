package service

import (
	"context"
	"errors"
	"testing"

	"mortgage-planner/domain"
	"mortgage-planner/logging"
)

func compareRequest(offset float64) CompareRequest {
	return CompareRequest{
		Mortgage: MortgageRequest{
			Principal:         500000,
			AnnualRatePercent: 5.5,
			Years:             30,
			OffsetMode:        "reduceAmount",
			OffsetRatePercent: ptr(5.5),
		},
		Savings: SavingsRequest{
			InitialAmount:             offset,
			AnnualInterestRatePercent: 4.5,
			Years:                     30,
		},
		OffsetAmount: offset,
	}
}

func TestCompareService_ZeroOffset(t *testing.T) {
	svc := NewCompareService(newFakeCache(), logging.Discard())

	report, err := svc.Compare(context.Background(), compareRequest(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Years) != 31 {
		t.Fatalf("expected 31 entries, got %d", len(report.Years))
	}
	for i, v := range report.OffsetBenefit {
		if v != 0.0 {
			t.Errorf("index %d: expected exactly 0, got %v", i, v)
		}
	}
}

func TestCompareService_Crossover(t *testing.T) {
	svc := NewCompareService(newFakeCache(), logging.Discard())

	report, err := svc.Compare(context.Background(), compareRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := report.Summary
	if sum.BenefitAtYear1 <= 0 || sum.BenefitAtYear10 <= 0 {
		t.Errorf("expected offset ahead early on, got year1=%.2f year10=%.2f", sum.BenefitAtYear1, sum.BenefitAtYear10)
	}
	if sum.CrossoverYear <= 10 {
		t.Errorf("expected compounding savings to overtake after year 10, got %d", sum.CrossoverYear)
	}
	if report.Difference[sum.CrossoverYear] >= 0 || report.Difference[sum.CrossoverYear-1] < 0 {
		t.Errorf("crossover year %d does not mark the sign change", sum.CrossoverYear)
	}
	if sum.MaxOffsetAdvantage <= 0 || sum.MaxSavingsAdvantage <= 0 {
		t.Errorf("expected both advantages to be positive, got %+v", sum)
	}
	if sum.BenefitAtYear10 != report.Difference[10] {
		t.Errorf("expected benefitAtYear10 to equal the year 10 difference")
	}
}

func TestCompareService_OffsetOverridesMortgageOffset(t *testing.T) {
	svc := NewCompareService(newFakeCache(), logging.Discard())

	req := compareRequest(0)
	req.Mortgage.OffsetAmount = ptr(50000)

	report, err := svc.Compare(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OffsetBenefit[30] != 0 {
		t.Errorf("expected top-level offset of 0 to win, got %.2f", report.OffsetBenefit[30])
	}
}

func TestCompareService_Validation(t *testing.T) {
	svc := NewCompareService(newFakeCache(), logging.Discard())

	negative := compareRequest(0)
	negative.OffsetAmount = -1

	lowRate := compareRequest(1000)
	lowRate.Mortgage.OffsetRatePercent = ptr(1)

	for field, req := range map[string]CompareRequest{
		"offsetAmount":      negative,
		"offsetRatePercent": lowRate,
	} {
		_, err := svc.Compare(context.Background(), req)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Field != field {
			t.Errorf("expected %s validation error, got %v", field, err)
		}
	}
}
