package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogError(t *testing.T) {
	tests := []struct {
		name          string
		err           *CatalogError
		underlying    error
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "error message includes provider and underlying error",
			err:           NewCatalogError("file", errors.New("permission denied")),
			wantContains:  []string{"catalog file", "permission denied"},
			wantRetryable: false,
		},
		{
			name:          "retryable error",
			err:           NewRetryableCatalogError("redis", errors.New("connection reset")),
			wantContains:  []string{"catalog redis", "connection reset"},
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.wantContains {
				assert.Contains(t, tt.err.Error(), want)
			}

			assert.Equal(t, tt.wantRetryable, tt.err.Retryable)
			assert.Equal(t, tt.wantRetryable, IsRetryable(tt.err))
			assert.True(t, errors.Is(tt.err, ErrCatalogUnavailable), "every catalog error means the catalog is unavailable")
			assert.True(t, errors.Is(tt.err, tt.err.Err))
		})
	}
}

func TestCatalogError_WrapsContextErrors(t *testing.T) {
	err := NewRetryableCatalogError("file", context.DeadlineExceeded)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.NotErrorIs(t, err, context.Canceled)
}

func TestCatalogError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NewRetryableCatalogError("file", ErrMalformedCatalog))

	var ce *CatalogError
	assert.ErrorAs(t, wrapped, &ce)
	assert.Equal(t, "file", ce.Provider)
	assert.True(t, IsRetryable(wrapped))
	assert.ErrorIs(t, wrapped, ErrMalformedCatalog)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "sentinel", err: ErrCatalogUnavailable, want: false},
		{name: "non-retryable catalog error", err: NewCatalogError("file", errors.New("x")), want: false},
		{name: "retryable catalog error", err: NewRetryableCatalogError("file", errors.New("x")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidRequest, ErrCatalogUnavailable, ErrMalformedCatalog}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
