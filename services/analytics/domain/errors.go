package domain

import "errors"

// Sentinel errors for the analytics domain. Use errors.Is() to check these.
var (
	// ErrInsufficientData indicates too few distinct order days to fit a trend
	// (minimum 5 required).
	ErrInsufficientData = errors.New("insufficient data: minimum 5 days of sales required")

	// ErrNotTrained indicates Predict was called before a successful Train.
	ErrNotTrained = errors.New("forecast model not trained")
)
