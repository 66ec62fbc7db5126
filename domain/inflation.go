package domain

type InflationMode string

const (
	InflationFuture          InflationMode = "future"
	InflationPast            InflationMode = "past"
	InflationPurchasingPower InflationMode = "purchasing-power"
)

// InflationInput takes either Years or a StartYear/EndYear pair. A nil
// RatePercent means the country's default rate.
type InflationInput struct {
	Amount      float64       `json:"amount"`
	RatePercent *float64      `json:"rate_percent,omitempty"`
	Years       float64       `json:"years"`
	StartYear   int           `json:"start_year,omitempty"`
	EndYear     int           `json:"end_year,omitempty"`
	Country     string        `json:"country,omitempty"`
	Mode        InflationMode `json:"mode"`
}

type InflationResult struct {
	Amount                 float64 `json:"amount"`
	FinalAmount            float64 `json:"final_amount"`
	RatePercent            float64 `json:"rate_percent"`
	Years                  float64 `json:"years"`
	TotalInflationPct      float64 `json:"total_inflation_pct"`
	PurchasingPowerLossPct float64 `json:"purchasing_power_loss_pct"`
}

type CountryInflation struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Currency    string  `json:"currency"`
	RatePercent float64 `json:"rate_percent"`
}
