package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wb_valuation/pkg/core/calc"
)

func TestMarginOfSafety(t *testing.T) {
	// Priced at 75 against an intrinsic 100: a 25% margin
	got, err := MarginOfSafety(100.0, 75.0)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)

	// Priced above intrinsic value: negative margin
	got, err = MarginOfSafety(100.0, 120.0)
	require.NoError(t, err)
	assert.Equal(t, -20.0, got)

	_, err = MarginOfSafety(0.0, 75.0)
	assert.ErrorIs(t, err, calc.ErrUndefined)
}
