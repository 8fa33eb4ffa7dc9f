package domain

import (
	"fmt"
	"strings"
)

type OffsetMode string

const (
	ReduceAmount OffsetMode = "reduceAmount"
	ReduceTerm   OffsetMode = "reduceTerm"
)

// ParseOffsetMode accepts the wire names in any letter case.
// An empty string resolves to ReduceAmount.
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reduceamount":
		return ReduceAmount, nil
	case "reduceterm":
		return ReduceTerm, nil
	}
	return "", fmt.Errorf("unknown offset mode %q", s)
}

type LoanParameters struct {
	Principal         float64    `json:"principal"`
	AnnualRatePercent float64    `json:"annualRatePercent"`
	Years             int        `json:"years"`
	OffsetAmount      float64    `json:"offsetAmount"`
	OffsetMode        OffsetMode `json:"offsetMode"`
	OffsetRatePercent float64    `json:"offsetRatePercent"`
}

type MortgageResult struct {
	MonthlyPayment            float64 `json:"monthlyPayment"`
	TotalPaid                 float64 `json:"totalPaid"`
	TotalInterest             float64 `json:"totalInterest"`
	EffectivePrincipal        float64 `json:"effectivePrincipal"`
	EffectiveYears            int     `json:"effectiveYears"`
	TotalOffsetInterestEarned float64 `json:"totalOffsetInterestEarned"`
}

type YearlyAmortization struct {
	Year          int     `json:"year"`
	PrincipalPaid float64 `json:"principalPaid"`
	InterestPaid  float64 `json:"interestPaid"`
}

type MonthlyAmortization struct {
	Month            int     `json:"month"`
	PrincipalPaid    float64 `json:"principalPaid"`
	InterestPaid     float64 `json:"interestPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// AmortizationSchedule bundles the summary with both schedule granularities.
type AmortizationSchedule struct {
	Summary MortgageResult        `json:"summary"`
	Yearly  []YearlyAmortization  `json:"yearly"`
	Monthly []MonthlyAmortization `json:"monthly"`
}

type YearlyOffsetBenefit struct {
	Year                  int     `json:"year"`
	InterestWithoutOffset float64 `json:"interestWithoutOffset"`
	InterestWithOffset    float64 `json:"interestWithOffset"`
	YearlySavings         float64 `json:"yearlySavings"`
	CumulativeSavings     float64 `json:"cumulativeSavings"`
}
