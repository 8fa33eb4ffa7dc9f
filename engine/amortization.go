package engine

import (
	"math"

	"mortgage-planner/domain"
)

// earnedTolerance absorbs floating noise when comparing interest totals.
const earnedTolerance = 1e-6

// ValidateLoan checks loan parameters and returns the first violated rule.
func ValidateLoan(p domain.LoanParameters) error {
	if p.Principal <= 0 {
		return domain.Invalid("principal", "must be greater than 0")
	}
	if p.AnnualRatePercent < 0 {
		return domain.Invalid("annualRatePercent", "cannot be negative")
	}
	if p.Years <= 0 {
		return domain.Invalid("years", "must be greater than 0")
	}
	if p.OffsetAmount < 0 {
		return domain.Invalid("offsetAmount", "cannot be negative")
	}
	if p.OffsetAmount > p.Principal {
		return domain.Invalid("offsetAmount", "cannot exceed principal")
	}
	if p.OffsetRatePercent < 0 {
		return domain.Invalid("offsetRatePercent", "cannot be negative")
	}
	if p.OffsetAmount > 0 && p.OffsetRatePercent < p.AnnualRatePercent {
		return domain.Invalid("offsetRatePercent", "must be greater than or equal to annual rate")
	}
	switch p.OffsetMode {
	case domain.ReduceAmount, domain.ReduceTerm:
	default:
		return domain.Invalid("offsetMode", "unknown mode %q", p.OffsetMode)
	}
	return nil
}

// CalculateMortgage returns the payment and totals for a loan, taking the
// offset balance and mode into account.
func CalculateMortgage(p domain.LoanParameters) (domain.MortgageResult, error) {
	if err := ValidateLoan(p); err != nil {
		return domain.MortgageResult{}, err
	}

	t := deriveTerms(p)

	totalInterestOriginal := t.basePayment*float64(t.basePeriods) - p.Principal

	totalPaid := t.payment * float64(t.periods)
	totalInterest := totalPaid - t.effectivePrincipal

	earned := totalInterestOriginal - totalInterest
	if earned < 0 {
		if earned < -earnedTolerance*math.Max(1, totalInterestOriginal) {
			return domain.MortgageResult{}, domain.Invalid(
				"offsetAmount",
				"offset of %.2f is too small to shorten the term by a full payment",
				p.OffsetAmount,
			)
		}
		earned = 0
	}

	return domain.MortgageResult{
		MonthlyPayment:            t.payment,
		TotalPaid:                 totalPaid,
		TotalInterest:             totalInterest,
		EffectivePrincipal:        t.effectivePrincipal,
		EffectiveYears:            int(math.Ceil(float64(t.periods) / 12)),
		TotalOffsetInterestEarned: earned,
	}, nil
}

// YearlyAmortization aggregates the monthly simulation into one bucket per
// loan year. Years after payoff are present with zero amounts. Degenerate
// inputs yield an empty schedule.
func YearlyAmortization(p domain.LoanParameters) []domain.YearlyAmortization {
	if p.Principal <= 0 || p.Years <= 0 {
		return []domain.YearlyAmortization{}
	}

	t := deriveTerms(p)
	months := amortize(t.effectivePrincipal, t.payment, t.monthlyRate, p.Years*12)

	out := make([]domain.YearlyAmortization, p.Years)
	for i := range out {
		out[i].Year = i + 1
	}
	for i, m := range months {
		y := &out[i/12]
		y.PrincipalPaid += m.principal
		y.InterestPaid += m.interest
	}
	return out
}

// MonthlyAmortization returns the month-by-month schedule over the derived
// term, ending once the balance reaches zero.
func MonthlyAmortization(p domain.LoanParameters) []domain.MonthlyAmortization {
	if p.Principal <= 0 || p.Years <= 0 {
		return []domain.MonthlyAmortization{}
	}

	t := deriveTerms(p)
	months := amortize(t.effectivePrincipal, t.payment, t.monthlyRate, t.periods)

	out := make([]domain.MonthlyAmortization, len(months))
	for i, m := range months {
		out[i] = domain.MonthlyAmortization{
			Month:            i + 1,
			PrincipalPaid:    m.principal,
			InterestPaid:     m.interest,
			RemainingBalance: m.balance,
		}
	}
	return out
}
