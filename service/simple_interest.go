package service

import (
	"math"

	"calculator-api/domain"
)

// CalculateSimpleInterest computes interest = principal × rate × years with no
// compounding, plus a per-year breakdown of ceil(years) entries.
//
// In the breakdown, the first year's InterestEarned is the cumulative interest
// to that point (a partial year when time < 1); later years report the flat
// annual interest, and any year past the end of the term reports 0 even though
// its cumulative figure still grows to the final total.
func CalculateSimpleInterest(input domain.SimpleInterestInput) (domain.SimpleInterestResult, error) {
	years := input.Time
	switch input.TimeUnit {
	case "", domain.TimeYears:
	case domain.TimeMonths:
		years = input.Time / MonthsPerYear
	default:
		return domain.SimpleInterestResult{}, invalid("unknown time unit %q", input.TimeUnit)
	}

	if !isFinite(input.Principal, input.RatePercent, years) {
		return domain.SimpleInterestResult{}, invalid("inputs must be numbers")
	}
	if input.Principal <= 0 || input.Principal > MaxPrincipal {
		return domain.SimpleInterestResult{}, invalid("principal must be between 0 and %.0f", MaxPrincipal)
	}
	if input.RatePercent <= 0 || input.RatePercent > MaxInterestRate {
		return domain.SimpleInterestResult{}, invalid("rate must be between 0 and %.0f%%", MaxInterestRate)
	}
	if years <= 0 || years > MaxTimeYears {
		return domain.SimpleInterestResult{}, invalid("time must be between 0 and %.0f years", MaxTimeYears)
	}

	rate := input.RatePercent / 100
	annual := input.Principal * rate
	interest := annual * years

	n := int(math.Ceil(years))
	breakdown := make([]domain.YearlyInterest, 0, n)
	for year := 1; year <= n; year++ {
		cumulative := annual * math.Min(float64(year), years)
		earned := annual
		if year == 1 {
			earned = cumulative
		} else if float64(year) > years {
			earned = 0
		}
		breakdown = append(breakdown, domain.YearlyInterest{
			Year:               year,
			InterestEarned:     roundTo2Decimals(earned),
			TotalAmount:        roundTo2Decimals(input.Principal + cumulative),
			CumulativeInterest: roundTo2Decimals(cumulative),
		})
	}

	return domain.SimpleInterestResult{
		Principal:       roundTo2Decimals(input.Principal),
		Interest:        roundTo2Decimals(interest),
		Total:           roundTo2Decimals(input.Principal + interest),
		MonthlyInterest: roundTo2Decimals(annual / MonthsPerYear),
		TimeInYears:     years,
		YearlyBreakdown: breakdown,
	}, nil
}
