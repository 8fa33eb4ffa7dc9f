package domain

import (
	"fmt"
	"strings"
)

type Periodicity string

const (
	Monthly Periodicity = "monthly"
	Yearly  Periodicity = "yearly"
)

// ParsePeriodicity accepts the wire names in any letter case.
// An empty string resolves to Monthly.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	}
	return "", fmt.Errorf("unknown periodicity %q", s)
}

type SavingsParameters struct {
	InitialAmount             float64     `json:"initialAmount"`
	MonthlyContribution       float64     `json:"monthlyContribution"`
	AnnualInterestRatePercent float64     `json:"annualInterestRatePercent"`
	TaxRatePercent            float64     `json:"taxRatePercent"`
	Periodicity               Periodicity `json:"periodicity"`
	Years                     int         `json:"years"`
}

type SavingsResult struct {
	InitialAmount       float64 `json:"initialAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TotalContributions  float64 `json:"totalContributions"`
	TotalInterestEarned float64 `json:"totalInterestEarned"`
	TotalTaxPaid        float64 `json:"totalTaxPaid"`
	TotalSaved          float64 `json:"totalSaved"`
	EffectiveYears      int     `json:"effectiveYears"`
}

type YearlySavingsBalance struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

type SavingsProjection struct {
	Summary SavingsResult          `json:"summary"`
	Yearly  []YearlySavingsBalance `json:"yearly"`
}
