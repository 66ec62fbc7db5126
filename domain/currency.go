package domain

import "time"

type CurrencyConversionInput struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type CurrencyConversionResult struct {
	Amount    float64   `json:"amount"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      string    `json:"rate"`
	Converted string    `json:"converted"`
	Source    string    `json:"source"` // "static" or "remote"
	AsOf      time.Time `json:"as_of"`
}

// RateTable maps an upper-case symbol to its USD price.
type RateTable struct {
	Prices map[string]float64 `json:"prices"`
	Source string             `json:"source"`
	AsOf   time.Time          `json:"as_of"`
}
