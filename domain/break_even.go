package domain

type BreakEvenInput struct {
	FixedCosts          float64 `json:"fixed_costs"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit"`
	SellingPricePerUnit float64 `json:"selling_price_per_unit"`
	TargetUnits         float64 `json:"target_units"`
}

type BreakEvenResult struct {
	BreakEvenUnits        float64 `json:"break_even_units"`
	BreakEvenRevenue      float64 `json:"break_even_revenue"`
	ContributionMargin    float64 `json:"contribution_margin"`
	ContributionMarginPct float64 `json:"contribution_margin_pct"`
	ProfitAtTarget        float64 `json:"profit_at_target"`
	MarginOfSafety        float64 `json:"margin_of_safety"`
	MarginOfSafetyPct     float64 `json:"margin_of_safety_pct"`
}
