package engine

import "mortgage-planner/domain"

// OffsetBenefit runs the loan with and without the offset balance side by side
// for the full term and reports the interest saved each year. Without an
// offset balance there is no benefit and the result is empty.
func OffsetBenefit(p domain.LoanParameters) []domain.YearlyOffsetBenefit {
	if p.Principal <= 0 || p.Years <= 0 || p.OffsetAmount <= 0 {
		return []domain.YearlyOffsetBenefit{}
	}

	t := deriveTerms(p)
	months := p.Years * 12

	without := amortize(p.Principal, t.basePayment, t.monthlyRate, months)
	with := amortize(t.effectivePrincipal, t.payment, t.monthlyRate, months)

	out := make([]domain.YearlyOffsetBenefit, p.Years)
	cumulative := 0.0
	for i := range out {
		lo, hi := i*12, (i+1)*12
		b := domain.YearlyOffsetBenefit{
			Year:                  i + 1,
			InterestWithoutOffset: sumInterest(without, lo, hi),
			InterestWithOffset:    sumInterest(with, lo, hi),
		}
		b.YearlySavings = b.InterestWithoutOffset - b.InterestWithOffset
		cumulative += b.YearlySavings
		b.CumulativeSavings = cumulative
		out[i] = b
	}
	return out
}

func sumInterest(periods []period, lo, hi int) float64 {
	hi = min(hi, len(periods))
	total := 0.0
	for i := lo; i < hi; i++ {
		total += periods[i].interest
	}
	return total
}
