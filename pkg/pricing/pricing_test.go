package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		fee   float64
		want  float64
	}{
		{
			name: "two lines plus flat fee",
			items: []LineItem{
				{Price: 350, Quantity: 2},
				{Price: 150, Quantity: 1},
			},
			fee:  50,
			want: 900,
		},
		{
			name:  "empty cart still pays the fee",
			items: nil,
			fee:   50,
			want:  50,
		},
		{
			name: "free delivery",
			items: []LineItem{
				{Price: 120, Quantity: 3},
			},
			fee:  0,
			want: 360,
		},
		{
			name: "fractional prices do not drift",
			items: []LineItem{
				{Price: 0.1, Quantity: 3},
				{Price: 0.2, Quantity: 3},
			},
			fee:  0.1,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.items, tt.fee))
		})
	}
}

func TestDeliveryFee(t *testing.T) {
	zone := 30.0

	assert.Equal(t, 0.0, DeliveryFee(true, &zone, 50), "weekly checkout is always free delivery")
	assert.Equal(t, 30.0, DeliveryFee(false, &zone, 50), "location fee wins over the flat fee")
	assert.Equal(t, 50.0, DeliveryFee(false, nil, 50), "flat fee is the fallback")
}

func TestDecrementStock(t *testing.T) {
	// Two sequential orders of 2 against a stock of 3: the second must be
	// rejected, not driven negative.
	left, err := DecrementStock(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	left, err = DecrementStock(left, 2)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 1, left, "stock is untouched on rejection")

	left, err = DecrementStock(left, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, left)

	// Zero and negative requests are no-ops.
	left, err = DecrementStock(left, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
}
