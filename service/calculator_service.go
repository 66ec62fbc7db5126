package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"calculator-api/domain"
	"calculator-api/repository"
)

// CalculatorService runs the calculators and records every successful result.
type CalculatorService struct {
	repo  repository.CalculationRepository
	rates RateSource
	now   func() time.Time
}

// NewCalculatorService creates a CalculatorService. repo may be nil to disable history.
func NewCalculatorService(repo repository.CalculationRepository, rates RateSource) *CalculatorService {
	return &CalculatorService{repo: repo, rates: rates, now: time.Now}
}

func (s *CalculatorService) IdealWeight(ctx context.Context, input domain.IdealWeightInput) (domain.IdealWeightResult, error) {
	return run(ctx, s, ToolIdealWeight, input, CalculateIdealWeight)
}

func (s *CalculatorService) SimpleInterest(ctx context.Context, input domain.SimpleInterestInput) (domain.SimpleInterestResult, error) {
	return run(ctx, s, ToolSimpleInterest, input, CalculateSimpleInterest)
}

func (s *CalculatorService) ConvertCase(ctx context.Context, input domain.CaseConversionInput) (domain.CaseConversionResult, error) {
	return run(ctx, s, ToolCaseConverter, input, ConvertCase)
}

func (s *CalculatorService) Inflation(ctx context.Context, input domain.InflationInput) (domain.InflationResult, error) {
	return run(ctx, s, ToolInflation, input, CalculateInflation)
}

func (s *CalculatorService) BreakEven(ctx context.Context, input domain.BreakEvenInput) (domain.BreakEvenResult, error) {
	return run(ctx, s, ToolBreakEven, input, CalculateBreakEven)
}

func (s *CalculatorService) AlcoholCalories(ctx context.Context, input domain.AlcoholCalorieInput) (domain.AlcoholCalorieResult, error) {
	return run(ctx, s, ToolAlcoholCalories, input, CalculateAlcoholCalories)
}

func (s *CalculatorService) Cipher(ctx context.Context, input domain.CipherInput) (domain.CipherResult, error) {
	return run(ctx, s, ToolCipher, input, ApplyCipher)
}

func (s *CalculatorService) Currency(ctx context.Context, input domain.CurrencyConversionInput) (domain.CurrencyConversionResult, error) {
	table := s.rates.Rates(ctx)
	return run(ctx, s, ToolCurrency, input, func(in domain.CurrencyConversionInput) (domain.CurrencyConversionResult, error) {
		return ConvertCurrency(in, table)
	})
}

// run applies calc and saves the result. A failed save is logged, never returned.
func run[I, R any](ctx context.Context, s *CalculatorService, tool string, input I, calc func(I) (R, error)) (R, error) {
	result, err := calc(input)
	if err != nil {
		return result, err
	}
	s.record(ctx, tool, input, result)
	return result, nil
}

func (s *CalculatorService) record(ctx context.Context, tool string, input, result any) {
	if s.repo == nil {
		return
	}

	in, err := json.Marshal(input)
	if err != nil {
		slog.Warn("failed to encode calculation input", "tool", tool, "error", err)
		return
	}
	out, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode calculation result", "tool", tool, "error", err)
		return
	}

	calc := domain.Calculation{
		ID:        uuid.NewString(),
		Tool:      tool,
		Input:     in,
		Result:    out,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, calc); err != nil {
		slog.Warn("failed to save calculation", "tool", tool, "error", err)
	}
}

// History lists recorded calculations, newest first. limit is clamped to
// [1, MaxHistoryLimit] with DefaultHistoryLimit for zero.
func (s *CalculatorService) History(ctx context.Context, tool string, limit int) ([]domain.Calculation, error) {
	if s.repo == nil {
		return []domain.Calculation{}, nil
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.List(ctx, domain.CalculationFilter{Tool: tool, Limit: limit})
}
