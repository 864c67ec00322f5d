package apierrors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("item %d: quantity must be positive", 2)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "item 2: quantity must be positive", vErr.Message)
}

func TestCatalogUnavailableError_Unwrap(t *testing.T) {
	err := fmt.Errorf("pricing: %w", NewCatalogUnavailableError(sql.ErrConnDone))

	var cErr *CatalogUnavailableError
	require.True(t, errors.As(err, &cErr))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "catalog unavailable")
}
