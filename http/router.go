package http

import (
	"log/slog"
	"net/http"
)

// NewRouter wires every endpoint. Calculation routes share one rate limiter.
func NewRouter(
	calculators *CalculatorHandler,
	catalog *CatalogHandler,
	limiter *RateLimiter,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	limited := func(path string, h http.HandlerFunc) {
		mux.Handle(path, RateLimitMiddleware(limiter, h))
	}
	limited("/calc/ideal-weight", calculators.IdealWeight)
	limited("/calc/simple-interest", calculators.SimpleInterest)
	limited("/calc/case-convert", calculators.ConvertCase)
	limited("/calc/inflation", calculators.Inflation)
	limited("/calc/break-even", calculators.BreakEven)
	limited("/calc/alcohol-calories", calculators.AlcoholCalories)
	limited("/calc/cipher", calculators.Cipher)
	limited("/calc/currency", calculators.Currency)

	mux.HandleFunc("GET /tools", catalog.Tools)
	mux.HandleFunc("GET /presets", catalog.Presets)
	mux.HandleFunc("GET /history", catalog.History)
	mux.HandleFunc("GET /health", Health)
	mux.HandleFunc("GET /{file}", catalog.Sitemap)

	return LoggingMiddleware(logger, mux)
}
