package engine

import (
	"math"

	"mortgage-planner/domain"
)

// ValidateSavings checks savings parameters and returns the first violated rule.
func ValidateSavings(p domain.SavingsParameters) error {
	if p.InitialAmount < 0 {
		return domain.Invalid("initialAmount", "cannot be negative")
	}
	if p.MonthlyContribution < 0 {
		return domain.Invalid("monthlyContribution", "cannot be negative")
	}
	if p.AnnualInterestRatePercent < 0 {
		return domain.Invalid("annualInterestRatePercent", "cannot be negative")
	}
	if p.TaxRatePercent < 0 {
		return domain.Invalid("taxRatePercent", "cannot be negative")
	}
	if p.Years <= 0 {
		return domain.Invalid("years", "must be greater than 0")
	}
	switch p.Periodicity {
	case domain.Monthly, domain.Yearly:
	default:
		return domain.Invalid("periodicity", "unknown periodicity %q", p.Periodicity)
	}
	return nil
}

// CalculateSavings projects a lump sum plus a regular contribution using the
// closed-form future value. Tax reduces the periodic rate before compounding;
// the tax figure itself is taken from the untaxed growth.
func CalculateSavings(p domain.SavingsParameters) (domain.SavingsResult, error) {
	if err := ValidateSavings(p); err != nil {
		return domain.SavingsResult{}, err
	}

	periods, rate, deposit := periodTerms(p)

	contributions := deposit * float64(periods)
	afterTaxRate := rate * (1 - p.TaxRatePercent/100)

	var totalSaved, grossInterest float64
	if p.AnnualInterestRatePercent == 0 || afterTaxRate == 0 {
		totalSaved = p.InitialAmount + contributions
	} else {
		totalSaved = futureValue(p.InitialAmount, deposit, afterTaxRate, periods)
		gross := futureValue(p.InitialAmount, deposit, rate, periods)
		grossInterest = gross - p.InitialAmount - contributions
	}

	tax := grossInterest * p.TaxRatePercent / 100

	return domain.SavingsResult{
		InitialAmount:       p.InitialAmount,
		MonthlyContribution: p.MonthlyContribution,
		TotalContributions:  contributions,
		TotalInterestEarned: grossInterest - tax,
		TotalTaxPaid:        tax,
		TotalSaved:          totalSaved,
		EffectiveYears:      p.Years,
	}, nil
}

// periodTerms returns the number of compounding periods, the nominal rate per
// period and the deposit made each period. Yearly compounding banks twelve
// monthly contributions at once.
func periodTerms(p domain.SavingsParameters) (int, float64, float64) {
	if p.Periodicity == domain.Yearly {
		return p.Years, p.AnnualInterestRatePercent / 100, p.MonthlyContribution * 12
	}
	return p.Years * 12, p.AnnualInterestRatePercent / 100 / 12, p.MonthlyContribution
}

func futureValue(initial, contribution, rate float64, periods int) float64 {
	factor := math.Pow(1+rate, float64(periods))
	fv := initial * factor
	if contribution > 0 {
		fv += contribution * (factor - 1) / rate
	}
	return fv
}

// YearlyBalances simulates compounding period by period and records the
// balance at the end of each year. Yearly periodicity credits twelve monthly
// contributions at year end.
func YearlyBalances(p domain.SavingsParameters) []domain.YearlySavingsBalance {
	if p.Years <= 0 {
		return []domain.YearlySavingsBalance{}
	}

	periods, rate, deposit := periodTerms(p)
	perYear := periods / p.Years
	rate *= 1 - p.TaxRatePercent/100

	balance := p.InitialAmount
	out := make([]domain.YearlySavingsBalance, 0, p.Years)
	for year := 1; year <= p.Years; year++ {
		for i := 0; i < perYear; i++ {
			balance += balance*rate + deposit
		}
		out = append(out, domain.YearlySavingsBalance{Year: year, Balance: balance})
	}
	return out
}
