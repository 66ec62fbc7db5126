package http

import (
	"context"
	"net/http"

	"calculator-api/service"
)

type CalculatorHandler struct {
	service *service.CalculatorService
}

func NewCalculatorHandler(service *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// calculate decodes I from the body, runs fn and writes its result.
func calculate[I, R any](w http.ResponseWriter, r *http.Request, fn func(context.Context, I) (R, error)) {
	var input I
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := fn(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalculatorHandler) IdealWeight(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.IdealWeight)
}

func (h *CalculatorHandler) SimpleInterest(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.SimpleInterest)
}

func (h *CalculatorHandler) ConvertCase(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.ConvertCase)
}

func (h *CalculatorHandler) Inflation(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Inflation)
}

func (h *CalculatorHandler) BreakEven(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.BreakEven)
}

func (h *CalculatorHandler) AlcoholCalories(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.AlcoholCalories)
}

func (h *CalculatorHandler) Cipher(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Cipher)
}

func (h *CalculatorHandler) Currency(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Currency)
}
