package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleMethods(t *testing.T) {
	t.Run("wallet covering the total enables playcoins only", func(t *testing.T) {
		opts := EligibleMethods(10000, 25000)
		assert.True(t, opts.Razorpay)
		assert.True(t, opts.PlayCoins)
		assert.False(t, opts.Both)
	})

	t.Run("short wallet enables the mixed method only", func(t *testing.T) {
		opts := EligibleMethods(10000, 9900)
		assert.True(t, opts.Razorpay)
		assert.False(t, opts.PlayCoins)
		assert.True(t, opts.Both)
	})

	t.Run("exact equality counts as covered", func(t *testing.T) {
		opts := EligibleMethods(10000, 10000)
		assert.True(t, opts.PlayCoins)
		assert.False(t, opts.Both)
	})

	t.Run("allows checks the selected method", func(t *testing.T) {
		opts := EligibleMethods(10000, 9900)
		assert.True(t, opts.Allows(MethodRazorpay))
		assert.True(t, opts.Allows(MethodBoth))
		assert.False(t, opts.Allows(MethodPlayCoins))
		assert.False(t, opts.Allows(""))
	})
}

func TestPayable(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		wallet  int64
		method  PaymentMethod
		payable int64
	}{
		{"gateway pays everything", 50000, 20000, MethodRazorpay, 50000},
		{"wallet settles in full", 50000, 60000, MethodPlayCoins, 0},
		{"mixed pays the remainder", 50000, 20000, MethodBoth, 30000},
		{"mixed clamps at zero", 50000, 60000, MethodBoth, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Payable(tt.total, tt.wallet, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.payable, got)
		})
	}

	t.Run("unset method is rejected before any network call", func(t *testing.T) {
		_, err := Payable(100, 100, "")
		assert.ErrorIs(t, err, ErrNoPaymentMethod)
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		_, err := Payable(100, 100, PaymentMethod("cheque"))
		assert.ErrorIs(t, err, ErrMethodNotEligible)
	})
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.False(t, s.Selected())
	assert.Equal(t, 0, s.Count())

	s = s.Increment()
	assert.Equal(t, 0, s.Count(), "incrementing while deselected is a no-op")

	s = s.Toggle()
	assert.True(t, s.Selected())

	s = s.Increment().Increment().Decrement()
	assert.Equal(t, 1, s.Count())

	s = s.Decrement().Decrement()
	assert.Equal(t, 0, s.Count(), "count never goes below zero")

	s = s.Increment().Increment().Toggle()
	assert.False(t, s.Selected())
	assert.Equal(t, 0, s.Count(), "deselecting zeroes the count")
}
