package service

const (
	MaxPrincipal           = 100_000_000.0
	MaxInitialAmount       = 100_000_000.0
	MaxOffsetAmount        = 100_000_000.0
	MaxMonthlyContribution = 1_000_000.0
	MaxRatePercent         = 20.0
	MaxTaxRatePercent      = 100.0
	MinYears               = 1
	MaxYears               = 50

	DefaultTaxRatePercent = 15.0
)
