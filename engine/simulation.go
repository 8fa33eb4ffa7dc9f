package engine

import (
	"math"

	"mortgage-planner/domain"
)

// BalanceTolerance is the residual below which a balance is treated as paid off.
const BalanceTolerance = 0.01

type period struct {
	principal float64
	interest  float64
	balance   float64
}

// amortize applies a level payment to principal for at most periods months and
// returns one entry per month until the balance reaches zero. The last payment
// is clamped to the remaining balance.
func amortize(principal, payment, monthlyRate float64, periods int) []period {
	out := make([]period, 0, max(periods, 0))
	balance := principal

	for month := 1; month <= periods; month++ {
		if balance <= 0 {
			break
		}

		interest := balance * monthlyRate
		paid := payment - interest
		if paid > balance {
			paid = balance
		}

		balance -= paid
		if balance < BalanceTolerance {
			balance = 0
		}

		out = append(out, period{principal: paid, interest: interest, balance: balance})
	}

	return out
}

func monthlyRateOf(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// annuityPayment is the level payment that retires principal in n months.
func annuityPayment(principal, monthlyRate float64, n int) float64 {
	if monthlyRate == 0 {
		return principal / float64(n)
	}
	// growth is (1+m)^n - 1, kept accurate when m is tiny.
	growth := math.Expm1(float64(n) * math.Log1p(monthlyRate))
	return principal * monthlyRate * (growth + 1) / growth
}

// loanTerms is the payment/term pair chosen for a loan after applying the offset mode.
type loanTerms struct {
	monthlyRate        float64
	basePayment        float64
	basePeriods        int
	effectivePrincipal float64
	payment            float64
	periods            int
}

func deriveTerms(p domain.LoanParameters) loanTerms {
	n := p.Years * 12
	rate := monthlyRateOf(p.AnnualRatePercent)
	effective := p.Principal - p.OffsetAmount

	t := loanTerms{
		monthlyRate:        rate,
		basePayment:        annuityPayment(p.Principal, rate, n),
		basePeriods:        n,
		effectivePrincipal: effective,
		payment:            annuityPayment(effective, rate, n),
		periods:            n,
	}

	if p.OffsetMode == domain.ReduceTerm && p.OffsetAmount > 0 {
		t.payment = t.basePayment
		t.periods = termFor(effective, t.basePayment, rate, n)
	}

	return t
}

// termFor solves for the number of payments of size payment that retire
// principal. When the payment does not cover the first month's interest the
// term stays at fallback.
func termFor(principal, payment, monthlyRate float64, fallback int) int {
	if monthlyRate == 0 {
		return int(math.Ceil(principal / payment))
	}
	if payment <= principal*monthlyRate {
		return fallback
	}
	return int(math.Ceil(-math.Log1p(-principal*monthlyRate/payment) / math.Log1p(monthlyRate)))
}
