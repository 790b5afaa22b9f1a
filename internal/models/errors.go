package models

import "errors"

// Custom errors
var (
	ErrInsufficientData = errors.New("insufficient comparable sales data")
	ErrZeroWeightSet    = errors.New("comparable set produced zero total weight")
	ErrInvalidRecord    = errors.New("invalid comparable record")
)
