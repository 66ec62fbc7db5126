package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"calculator-api/domain"
)

var fiatSymbols = map[string]bool{"USD": true, "EUR": true, "GBP": true, "JPY": true, "INR": true}

// RateSource supplies the USD price table used for conversions.
type RateSource interface {
	Rates(ctx context.Context) domain.RateTable
}

// ConvertCurrency converts amount between two symbols of table using decimal
// arithmetic. Fiat targets are rounded to 2 places, crypto targets to 8.
func ConvertCurrency(input domain.CurrencyConversionInput, table domain.RateTable) (domain.CurrencyConversionResult, error) {
	if !isFinite(input.Amount) || input.Amount <= 0 {
		return domain.CurrencyConversionResult{}, invalid("amount must be positive")
	}

	from := strings.ToUpper(strings.TrimSpace(input.From))
	to := strings.ToUpper(strings.TrimSpace(input.To))
	fromPrice, ok := table.Prices[from]
	if !ok || fromPrice <= 0 {
		return domain.CurrencyConversionResult{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, input.From)
	}
	toPrice, ok := table.Prices[to]
	if !ok || toPrice <= 0 {
		return domain.CurrencyConversionResult{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, input.To)
	}

	rate := decimal.NewFromFloat(fromPrice).Div(decimal.NewFromFloat(toPrice))
	converted := decimal.NewFromFloat(input.Amount).Mul(rate)

	places := int32(8)
	if fiatSymbols[to] {
		places = 2
	}

	return domain.CurrencyConversionResult{
		Amount:    input.Amount,
		From:      from,
		To:        to,
		Rate:      rate.Round(8).String(),
		Converted: converted.Round(places).StringFixed(places),
		Source:    table.Source,
		AsOf:      table.AsOf,
	}, nil
}

// Symbols lists the symbols of table in alphabetical order.
func Symbols(table domain.RateTable) []string {
	out := make([]string, 0, len(table.Prices))
	for s := range table.Prices {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
