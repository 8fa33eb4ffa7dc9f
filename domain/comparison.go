package domain

// ComparisonSeries holds parallel per-year curves. Index 0 is the year 0
// baseline where both benefits are zero.
type ComparisonSeries struct {
	Years          []int     `json:"years"`
	OffsetBenefit  []float64 `json:"offsetBenefit"`
	SavingsBenefit []float64 `json:"savingsBenefit"`
	Difference     []float64 `json:"difference"`
}

// ComparisonSummary is derived from the difference curve.
// A positive difference favours the offset account.
type ComparisonSummary struct {
	CrossoverYear           int     `json:"crossoverYear"`
	MaxOffsetAdvantage      float64 `json:"maxOffsetAdvantage"`
	MaxOffsetAdvantageYear  int     `json:"maxOffsetAdvantageYear"`
	MaxSavingsAdvantage     float64 `json:"maxSavingsAdvantage"`
	MaxSavingsAdvantageYear int     `json:"maxSavingsAdvantageYear"`
	BenefitAtYear1          float64 `json:"benefitAtYear1"`
	BenefitAtYear3          float64 `json:"benefitAtYear3"`
	BenefitAtYear5          float64 `json:"benefitAtYear5"`
	BenefitAtYear10         float64 `json:"benefitAtYear10"`
}

type ComparisonReport struct {
	ComparisonSeries
	Summary ComparisonSummary `json:"summary"`
}

// ChartSeries is the combined per-year chart data, aligned on Years.
type ChartSeries struct {
	Years           []int     `json:"years"`
	StandardBalance []float64 `json:"standardBalance"`
	OffsetBalance   []float64 `json:"offsetBalance"`
	SavingsBalance  []float64 `json:"savingsBalance"`
	YearlyPrincipal []float64 `json:"yearlyPrincipal"`
	YearlyInterest  []float64 `json:"yearlyInterest"`
}

type ChartResult struct {
	Mortgage      MortgageResult         `json:"mortgage"`
	Savings       SavingsResult          `json:"savings"`
	MortgageYears []YearlyAmortization   `json:"mortgageYearly"`
	SavingsYears  []YearlySavingsBalance `json:"savingsYearly"`
	Chart         ChartSeries            `json:"chartData"`
}

type Tip struct {
	Tip    string `json:"tip"`
	Source string `json:"source"`
}
