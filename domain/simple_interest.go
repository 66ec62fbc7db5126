package domain

type TimeUnit string

const (
	TimeYears  TimeUnit = "years"
	TimeMonths TimeUnit = "months"
)

type SimpleInterestInput struct {
	Principal   float64  `json:"principal"`
	RatePercent float64  `json:"rate_percent"`
	Time        float64  `json:"time"`
	TimeUnit    TimeUnit `json:"time_unit"`
}

type YearlyInterest struct {
	Year               int     `json:"year"`
	InterestEarned     float64 `json:"interest_earned"`
	TotalAmount        float64 `json:"total_amount"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

type SimpleInterestResult struct {
	Principal       float64          `json:"principal"`
	Interest        float64          `json:"interest"`
	Total           float64          `json:"total"`
	MonthlyInterest float64          `json:"monthly_interest"`
	TimeInYears     float64          `json:"time_in_years"`
	YearlyBreakdown []YearlyInterest `json:"yearly_breakdown"`
}
