package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidRequest indicates the caller supplied malformed input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCatalogUnavailable indicates the catalog could not be retrieved.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrMalformedCatalog indicates the catalog source could not be decoded.
	ErrMalformedCatalog = errors.New("malformed catalog")
)

// CatalogError wraps a failure from a specific catalog provider.
type CatalogError struct {
	Provider  string
	Err       error
	Retryable bool
}

// NewCatalogError creates a non-retryable CatalogError.
func NewCatalogError(provider string, err error) *CatalogError {
	return &CatalogError{Provider: provider, Err: err}
}

// NewRetryableCatalogError creates a CatalogError worth retrying (e.g., a network blip).
func NewRetryableCatalogError(provider string, err error) *CatalogError {
	return &CatalogError{Provider: provider, Err: err, Retryable: true}
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Provider, e.Err)
}

// Unwrap exposes both the underlying error and ErrCatalogUnavailable to errors.Is.
func (e *CatalogError) Unwrap() []error {
	return []error{ErrCatalogUnavailable, e.Err}
}

// IsRetryable reports whether err is a CatalogError marked retryable.
func IsRetryable(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Retryable
	}
	return false
}
