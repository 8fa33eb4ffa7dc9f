package engine

import "mortgage-planner/domain"

// Compare lines up the cumulative offset benefit against the net growth of the
// savings account on a shared year axis 0..max(mortgageYears, savings.Years).
//
// Savings benefit is balance minus the initial amount and every contribution
// made so far. Past its horizon the offset curve is zero and the savings curve
// keeps its last balance while contributions continue to accrue.
func Compare(
	benefits []domain.YearlyOffsetBenefit,
	balances []domain.YearlySavingsBalance,
	savings domain.SavingsParameters,
	mortgageYears int,
) domain.ComparisonSeries {
	years := max(mortgageYears, savings.Years, 0)

	s := domain.ComparisonSeries{
		Years:          make([]int, years+1),
		OffsetBenefit:  make([]float64, years+1),
		SavingsBenefit: make([]float64, years+1),
		Difference:     make([]float64, years+1),
	}

	for year := 1; year <= years; year++ {
		s.Years[year] = year

		if year <= len(benefits) {
			s.OffsetBenefit[year] = benefits[year-1].CumulativeSavings
		}

		contributed := savings.MonthlyContribution * 12 * float64(year)
		var balance float64
		switch {
		case year <= len(balances):
			balance = balances[year-1].Balance
		case len(balances) > 0:
			balance = balances[len(balances)-1].Balance
		default:
			balance = savings.InitialAmount + contributed
		}
		s.SavingsBenefit[year] = balance - savings.InitialAmount - contributed
	}

	for i := range s.Difference {
		s.Difference[i] = s.OffsetBenefit[i] - s.SavingsBenefit[i]
	}
	return s
}

// Summarize derives the crossover year and the extremes of the difference
// curve. CrossoverYear is -1 when the offset account never falls behind.
func Summarize(s domain.ComparisonSeries) domain.ComparisonSummary {
	sum := domain.ComparisonSummary{CrossoverYear: -1}

	for i, d := range s.Difference {
		year := s.Years[i]
		if year == 0 {
			continue
		}
		if d < 0 && sum.CrossoverYear == -1 {
			sum.CrossoverYear = year
		}
		if d > sum.MaxOffsetAdvantage {
			sum.MaxOffsetAdvantage = d
			sum.MaxOffsetAdvantageYear = year
		}
		if -d > sum.MaxSavingsAdvantage {
			sum.MaxSavingsAdvantage = -d
			sum.MaxSavingsAdvantageYear = year
		}
	}

	sum.BenefitAtYear1 = differenceAt(s, 1)
	sum.BenefitAtYear3 = differenceAt(s, 3)
	sum.BenefitAtYear5 = differenceAt(s, 5)
	sum.BenefitAtYear10 = differenceAt(s, 10)
	return sum
}

func differenceAt(s domain.ComparisonSeries, year int) float64 {
	if year < 0 || year >= len(s.Difference) {
		return 0
	}
	return s.Difference[year]
}
