package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"calculator-api/service"
)

// maxBodyBytes bounds request bodies; cipher and case inputs are the largest.
const maxBodyBytes = 1 << 20

// writeJSON encodes into a buffer first so a failed encode can still send a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("error writing response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// writeError maps calculation errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusBadRequest, "invalid_input"
	switch {
	case errors.Is(err, service.ErrNotComputable):
		status, kind = http.StatusUnprocessableEntity, "not_computable"
	case errors.Is(err, service.ErrMalformedEncoding):
		kind = "malformed_encoding"
	case errors.Is(err, service.ErrUnknownCurrency):
		kind = "unknown_currency"
	case errors.Is(err, service.ErrUnknownCategory):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrInvalidInput):
	default:
		slog.Error("unexpected error", "error", err)
		status, kind = http.StatusInternalServerError, "internal"
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

// decodeJSON enforces POST with a JSON body and decodes it into v. It writes
// the error response itself and reports whether the caller should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		slog.Debug("error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
