package datasource

import (
	"context"
	"errors"

	"github.com/yourusername/price-scout/internal/models"
)

// CompSource defines the interface for fetching comparable sales from a provider
type CompSource interface {
	// FetchComps retrieves raw comparable sales matching the item query
	FetchComps(ctx context.Context, query string) ([]models.RawComp, error)

	// Name returns the name of the comp source
	Name() string

	// IsEnabled returns whether this comp source is currently enabled
	IsEnabled() bool
}

// SourceError represents errors from comp source operations
type SourceError struct {
	Source  string // Comp source name
	Code    string // Error code (e.g., "invalid_data")
	Message string // Error message
	Err     error  // Underlying error
}

func (e SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeNotFound    = "not_found"
	ErrCodeInvalidData = "invalid_data"
	ErrCodeDisabled    = "source_disabled"
	ErrCodeUnknown     = "unknown"
)

// Error constructors
var (
	ErrSourceDisabled = errors.New("comp source is disabled")
	ErrInvalidData    = errors.New("invalid comp data format")
)

// NewSourceError creates a new comp source error
func NewSourceError(source, code, message string, err error) SourceError {
	return SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
