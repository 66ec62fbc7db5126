package domain

import (
	"encoding/json"
	"time"
)

// Calculation is one recorded, successful calculator run.
type Calculation struct {
	ID        string          `json:"id"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type CalculationFilter struct {
	Tool  string
	Limit int
}
