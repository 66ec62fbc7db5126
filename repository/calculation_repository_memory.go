package repository

import (
	"context"
	"sync"

	"calculator-api/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository.
type CalculationRepositoryMemory struct {
	mu       sync.RWMutex
	data     []domain.Calculation
	capacity int
}

// NewCalculationRepositoryMemory creates a new in-memory repository that keeps
// at most capacity entries, dropping the oldest first. A capacity <= 0 means unbounded.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data:     []domain.Calculation{},
		capacity: capacity,
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(_ context.Context, calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, calc)
	if r.capacity > 0 && len(r.data) > r.capacity {
		r.data = r.data[len(r.data)-r.capacity:]
	}
	return nil
}

func (r *CalculationRepositoryMemory) List(_ context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Calculation{}
	for i := len(r.data) - 1; i >= 0; i-- {
		if filter.Tool != "" && r.data[i].Tool != filter.Tool {
			continue
		}
		out = append(out, r.data[i])
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *CalculationRepositoryMemory) Close() error { return nil }
