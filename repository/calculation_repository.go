package repository

import (
	"context"

	"calculator-api/domain"
)

// CalculationRepository stores the history of successful calculations.
type CalculationRepository interface {
	Save(ctx context.Context, calc domain.Calculation) error
	// List returns calculations newest first.
	List(ctx context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error)
	Close() error
}
