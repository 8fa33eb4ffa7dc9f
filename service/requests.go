package service

import (
	"mortgage-planner/domain"
	"mortgage-planner/engine"
)

// MortgageRequest is the wire shape of a loan calculation. Optional fields are
// pointers so an omitted value can be told apart from an explicit zero.
type MortgageRequest struct {
	Principal         float64  `json:"principal"`
	AnnualRatePercent float64  `json:"annualRatePercent"`
	Years             int      `json:"years"`
	OffsetAmount      *float64 `json:"offsetAmount,omitempty"`
	OffsetMode        string   `json:"offsetMode,omitempty"`
	OffsetRatePercent *float64 `json:"offsetRatePercent,omitempty"`
}

// Resolve applies defaults, enforces the service bounds and validates the
// resulting loan parameters.
func (r MortgageRequest) Resolve() (domain.LoanParameters, error) {
	mode, err := domain.ParseOffsetMode(r.OffsetMode)
	if err != nil {
		return domain.LoanParameters{}, domain.Invalid("offsetMode", "must be reduceAmount or reduceTerm")
	}

	p := domain.LoanParameters{
		Principal:         r.Principal,
		AnnualRatePercent: r.AnnualRatePercent,
		Years:             r.Years,
		OffsetAmount:      valueOr(r.OffsetAmount, 0),
		OffsetMode:        mode,
		OffsetRatePercent: valueOr(r.OffsetRatePercent, 0),
	}

	switch {
	case p.Principal > MaxPrincipal:
		return domain.LoanParameters{}, domain.Invalid("principal", "cannot exceed %.0f", MaxPrincipal)
	case p.AnnualRatePercent > MaxRatePercent:
		return domain.LoanParameters{}, domain.Invalid("annualRatePercent", "cannot exceed %.0f%%", MaxRatePercent)
	case p.Years < MinYears || p.Years > MaxYears:
		return domain.LoanParameters{}, domain.Invalid("years", "must be between %d and %d", MinYears, MaxYears)
	case p.OffsetAmount > MaxOffsetAmount:
		return domain.LoanParameters{}, domain.Invalid("offsetAmount", "cannot exceed %.0f", MaxOffsetAmount)
	case p.OffsetRatePercent > MaxRatePercent:
		return domain.LoanParameters{}, domain.Invalid("offsetRatePercent", "cannot exceed %.0f%%", MaxRatePercent)
	}

	return p, engine.ValidateLoan(p)
}

type SavingsRequest struct {
	InitialAmount             float64  `json:"initialAmount"`
	MonthlyContribution       float64  `json:"monthlyContribution"`
	AnnualInterestRatePercent float64  `json:"annualInterestRatePercent"`
	TaxRatePercent            *float64 `json:"taxRatePercent,omitempty"`
	Periodicity               string   `json:"periodicity,omitempty"`
	Years                     int      `json:"years"`
}

// Resolve applies defaults, enforces the service bounds and validates the
// resulting savings parameters.
func (r SavingsRequest) Resolve() (domain.SavingsParameters, error) {
	periodicity, err := domain.ParsePeriodicity(r.Periodicity)
	if err != nil {
		return domain.SavingsParameters{}, domain.Invalid("periodicity", "must be monthly or yearly")
	}

	p := domain.SavingsParameters{
		InitialAmount:             r.InitialAmount,
		MonthlyContribution:       r.MonthlyContribution,
		AnnualInterestRatePercent: r.AnnualInterestRatePercent,
		TaxRatePercent:            valueOr(r.TaxRatePercent, DefaultTaxRatePercent),
		Periodicity:               periodicity,
		Years:                     r.Years,
	}

	switch {
	case p.InitialAmount > MaxInitialAmount:
		return domain.SavingsParameters{}, domain.Invalid("initialAmount", "cannot exceed %.0f", MaxInitialAmount)
	case p.MonthlyContribution > MaxMonthlyContribution:
		return domain.SavingsParameters{}, domain.Invalid("monthlyContribution", "cannot exceed %.0f", MaxMonthlyContribution)
	case p.AnnualInterestRatePercent > MaxRatePercent:
		return domain.SavingsParameters{}, domain.Invalid("annualInterestRatePercent", "cannot exceed %.0f%%", MaxRatePercent)
	case p.TaxRatePercent > MaxTaxRatePercent:
		return domain.SavingsParameters{}, domain.Invalid("taxRatePercent", "cannot exceed %.0f%%", MaxTaxRatePercent)
	case p.Years < MinYears || p.Years > MaxYears:
		return domain.SavingsParameters{}, domain.Invalid("years", "must be between %d and %d", MinYears, MaxYears)
	}

	return p, engine.ValidateSavings(p)
}

type ChartRequest struct {
	Mortgage MortgageRequest `json:"mortgage"`
	Savings  SavingsRequest  `json:"savings"`
}

// CompareRequest pits an offset balance against the same money in savings.
// OffsetAmount replaces any offset given inside Mortgage.
type CompareRequest struct {
	Mortgage     MortgageRequest `json:"mortgage"`
	Savings      SavingsRequest  `json:"savings"`
	OffsetAmount float64         `json:"offsetAmount"`
}

func (r CompareRequest) Resolve() (domain.LoanParameters, domain.SavingsParameters, error) {
	if r.OffsetAmount < 0 {
		return domain.LoanParameters{}, domain.SavingsParameters{}, domain.Invalid("offsetAmount", "cannot be negative")
	}

	m := r.Mortgage
	m.OffsetAmount = &r.OffsetAmount
	loan, err := m.Resolve()
	if err != nil {
		return domain.LoanParameters{}, domain.SavingsParameters{}, err
	}

	savings, err := r.Savings.Resolve()
	if err != nil {
		return domain.LoanParameters{}, domain.SavingsParameters{}, err
	}
	return loan, savings, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
