package service

import (
	"math"
	"sort"
	"strings"

	"calculator-api/domain"
)

// Default annual inflation rates by country, used when no rate is given.
var countryInflation = map[string]domain.CountryInflation{
	"US": {Code: "US", Name: "United States", Currency: "USD", RatePercent: 3.2},
	"GB": {Code: "GB", Name: "United Kingdom", Currency: "GBP", RatePercent: 4.0},
	"CA": {Code: "CA", Name: "Canada", Currency: "CAD", RatePercent: 2.9},
	"AU": {Code: "AU", Name: "Australia", Currency: "AUD", RatePercent: 3.4},
	"DE": {Code: "DE", Name: "Germany", Currency: "EUR", RatePercent: 2.5},
	"FR": {Code: "FR", Name: "France", Currency: "EUR", RatePercent: 2.3},
	"JP": {Code: "JP", Name: "Japan", Currency: "JPY", RatePercent: 2.8},
	"IN": {Code: "IN", Name: "India", Currency: "INR", RatePercent: 5.1},
	"BR": {Code: "BR", Name: "Brazil", Currency: "BRL", RatePercent: 4.5},
	"ZA": {Code: "ZA", Name: "South Africa", Currency: "ZAR", RatePercent: 5.3},
}

// Countries lists the inflation presets ordered by code.
func Countries() []domain.CountryInflation {
	out := make([]domain.CountryInflation, 0, len(countryInflation))
	for _, c := range countryInflation {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// CalculateInflation compounds amount by (1+rate)^years. The future mode
// multiplies, past and purchasing-power divide; a negative year span (an end
// year before the start year) swaps the two.
func CalculateInflation(input domain.InflationInput) (domain.InflationResult, error) {
	ratePercent, err := inflationRate(input)
	if err != nil {
		return domain.InflationResult{}, err
	}

	years := input.Years
	if input.StartYear != 0 || input.EndYear != 0 {
		if input.StartYear == 0 || input.EndYear == 0 {
			return domain.InflationResult{}, invalid("both start and end year are required")
		}
		years = float64(input.EndYear - input.StartYear)
	}

	if !isFinite(input.Amount, years) || input.Amount <= 0 || input.Amount > MaxAmount {
		return domain.InflationResult{}, invalid("amount must be between 0 and %.0f", MaxAmount)
	}
	if years == 0 || math.Abs(years) > MaxInflationYears {
		return domain.InflationResult{}, invalid("years must be non-zero and at most %.0f", MaxInflationYears)
	}

	var divide bool
	switch input.Mode {
	case "", domain.InflationFuture:
	case domain.InflationPast, domain.InflationPurchasingPower:
		divide = true
	default:
		return domain.InflationResult{}, invalid("unknown mode %q", input.Mode)
	}
	if years < 0 {
		divide = !divide
	}

	growth := math.Pow(1+ratePercent/100, math.Abs(years))
	final := input.Amount * growth
	if divide {
		final = input.Amount / growth
	}
	if err := requireFinite("inflation result", growth, final); err != nil {
		return domain.InflationResult{}, err
	}
	if final == 0 {
		return domain.InflationResult{}, notComputableZero()
	}

	var loss float64
	if divide {
		loss = math.Abs((final/input.Amount)*100 - 100)
	} else {
		loss = math.Abs((input.Amount/final)*100 - 100)
	}

	result := domain.InflationResult{
		Amount:                 roundTo2Decimals(input.Amount),
		FinalAmount:            roundTo2Decimals(final),
		RatePercent:            ratePercent,
		Years:                  years,
		TotalInflationPct:      roundTo2Decimals((growth - 1) * 100),
		PurchasingPowerLossPct: roundTo2Decimals(loss),
	}
	if err := requireFinite("inflation result", result.FinalAmount, result.TotalInflationPct, result.PurchasingPowerLossPct); err != nil {
		return domain.InflationResult{}, err
	}
	return result, nil
}

func inflationRate(input domain.InflationInput) (float64, error) {
	if input.RatePercent != nil {
		rate := *input.RatePercent
		if !isFinite(rate) || rate < MinInflationRate || rate > MaxInflationRate {
			return 0, invalid("rate must be between %.2f%% and %.0f%%", MinInflationRate, MaxInflationRate)
		}
		return rate, nil
	}

	code := strings.ToUpper(strings.TrimSpace(input.Country))
	if code == "" {
		code = DefaultCountry
	}
	country, ok := countryInflation[code]
	if !ok {
		return 0, invalid("unknown country %q", input.Country)
	}
	return country.RatePercent, nil
}
