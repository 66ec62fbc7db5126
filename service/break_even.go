package service

import (
	"fmt"
	"math"

	"calculator-api/domain"
)

// CalculateBreakEven finds the volume at which revenue covers fixed costs.
// A contribution margin <= 0 has no break-even point and yields ErrNotComputable.
func CalculateBreakEven(input domain.BreakEvenInput) (domain.BreakEvenResult, error) {
	if !isFinite(input.FixedCosts, input.VariableCostPerUnit, input.SellingPricePerUnit, input.TargetUnits) {
		return domain.BreakEvenResult{}, invalid("inputs must be numbers")
	}
	if input.FixedCosts < 0 || input.FixedCosts > MaxAmount {
		return domain.BreakEvenResult{}, invalid("fixed costs must be between 0 and %.0f", MaxAmount)
	}
	if input.VariableCostPerUnit < 0 || input.VariableCostPerUnit > MaxAmount {
		return domain.BreakEvenResult{}, invalid("variable cost must be between 0 and %.0f", MaxAmount)
	}
	if input.SellingPricePerUnit <= 0 || input.SellingPricePerUnit > MaxAmount {
		return domain.BreakEvenResult{}, invalid("selling price must be between 0 and %.0f", MaxAmount)
	}
	if input.TargetUnits < 0 || input.TargetUnits > MaxUnits {
		return domain.BreakEvenResult{}, invalid("target units must be between 0 and %.0f", MaxUnits)
	}

	margin := input.SellingPricePerUnit - input.VariableCostPerUnit
	if margin <= 0 {
		return domain.BreakEvenResult{}, fmt.Errorf("%w: selling price %.2f does not exceed variable cost %.2f",
			ErrNotComputable, input.SellingPricePerUnit, input.VariableCostPerUnit)
	}

	units := input.FixedCosts / margin
	revenue := units * input.SellingPricePerUnit
	profit := input.TargetUnits*margin - input.FixedCosts
	safety := math.Max(0, input.TargetUnits-units)
	safetyPct := 0.0
	if input.TargetUnits > 0 {
		safetyPct = safety / input.TargetUnits * 100
	}
	result := domain.BreakEvenResult{
		BreakEvenUnits:        roundTo2Decimals(units),
		BreakEvenRevenue:      roundTo2Decimals(revenue),
		ContributionMargin:    roundTo2Decimals(margin),
		ContributionMarginPct: roundTo2Decimals(margin / input.SellingPricePerUnit * 100),
		ProfitAtTarget:        roundTo2Decimals(profit),
		MarginOfSafety:        roundTo2Decimals(safety),
		MarginOfSafetyPct:     roundTo2Decimals(safetyPct),
	}
	if err := requireFinite("break-even result", result.BreakEvenUnits, result.BreakEvenRevenue,
		result.ProfitAtTarget, result.MarginOfSafety); err != nil {
		return domain.BreakEvenResult{}, err
	}
	return result, nil
}
