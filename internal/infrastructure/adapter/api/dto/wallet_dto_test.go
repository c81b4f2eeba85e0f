package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
)

func TestAmountToCents(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    float64
			expected int64
		}{
			{10000, 1000000},
			{10000.5, 1000050},
			{10000.55, 1000055},
			{99999999.99, 9999999999},
		}

		for _, tc := range testCases {
			cents, err := AmountToCents(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, cents)
		}
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := AmountToCents(-10000)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}
