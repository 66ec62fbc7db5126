package service

const (
	ToolIdealWeight     = "ideal-weight"
	ToolSimpleInterest  = "simple-interest"
	ToolCaseConverter   = "case-converter"
	ToolInflation       = "inflation"
	ToolBreakEven       = "break-even"
	ToolAlcoholCalories = "alcohol-calories"
	ToolCipher          = "text-cipher"
	ToolCurrency        = "crypto-converter"
)

const (
	CmPerInch         = 2.54
	KgToLbs           = 2.20462
	MinIdealWeightKg  = 40.0
	IdealWeightSpread = 0.10 // ± around the average
	IdealWeightBaseIn = 60.0 // formulas are linear above 5 ft
	MaxHeightCm       = 300.0

	// MaxAmount bounds money inputs that have no tighter limit of their own.
	MaxAmount = 1_000_000_000_000_000.0
	MaxUnits  = 1_000_000_000_000.0

	MaxPrincipal    = 1_000_000_000_000.0
	MaxInterestRate = 1000.0 // % per year
	MaxTimeYears    = 100.0
	MonthsPerYear   = 12.0

	MaxInflationRate  = 1000.0
	MinInflationRate  = -99.99
	MaxInflationYears = 500.0
	DefaultCountry    = "US"

	EthanolDensity         = 0.789 // g/ml
	CaloriesPerGramEthanol = 7.0
	MlPerOz                = 29.5735
	MlPerCl                = 10.0
	MaxServingMl           = 5000.0
	MaxDrinkCount          = 100
	MaxCaloriesPerServing  = 10_000.0

	MaxTextLength = 100_000 // runes

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)
