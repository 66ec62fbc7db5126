package service

import "errors"

// Sentinel errors for calculations. Use errors.Is to classify them.
var (
	// ErrInvalidInput marks missing, non-positive or out-of-range input.
	// The calculation produced no result.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotComputable marks input that is well-formed but has no finite
	// answer, such as a zero contribution margin.
	ErrNotComputable = errors.New("not computable")

	// ErrMalformedEncoding marks encoded text that could not be decoded.
	ErrMalformedEncoding = errors.New("malformed encoding")

	ErrUnknownCurrency = errors.New("unknown currency")
	ErrUnknownCategory = errors.New("unknown sitemap category")
)
