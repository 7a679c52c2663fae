package status

import (
	"testing"

	"tiffinbox/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOrderTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr error
	}{
		{"pending to confirmed", models.OrderStatusPending, models.OrderStatusConfirmed, nil},
		{"pending to cancelled", models.OrderStatusPending, models.OrderStatusCancelled, nil},
		{"confirmed to processing", models.OrderStatusConfirmed, models.OrderStatusProcessing, nil},
		{"confirmed to cancelled", models.OrderStatusConfirmed, models.OrderStatusCancelled, nil},
		{"processing to out for delivery", models.OrderStatusProcessing, models.OrderStatusOutForDelivery, nil},
		{"out for delivery to delivered", models.OrderStatusOutForDelivery, models.OrderStatusDelivered, nil},
		{"pending cannot jump to delivered", models.OrderStatusPending, models.OrderStatusDelivered, ErrInvalidTransition},
		{"processing cannot be cancelled", models.OrderStatusProcessing, models.OrderStatusCancelled, ErrInvalidTransition},
		{"delivered is terminal", models.OrderStatusDelivered, models.OrderStatusPending, ErrInvalidTransition},
		{"cancelled is terminal", models.OrderStatusCancelled, models.OrderStatusConfirmed, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyOrder(Tracks{Order: tt.from}, tt.to)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, got.Order, "failed transition must not mutate the track")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Order)
		})
	}
}

func TestKitchenTrackGatedOnConfirmation(t *testing.T) {
	pending := Tracks{
		Order:   models.OrderStatusPending,
		Kitchen: models.KitchenStatusNotStarted,
	}

	_, err := ApplyKitchen(pending, models.KitchenStatusPending)
	assert.ErrorIs(t, err, ErrOrderNotConfirmed)

	confirmed := pending
	confirmed.Order = models.OrderStatusConfirmed

	got, err := ApplyKitchen(confirmed, models.KitchenStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.KitchenStatusPending, got.Kitchen)
}

func TestKitchenTrackIsStrictlySequential(t *testing.T) {
	tr := Tracks{Order: models.OrderStatusConfirmed, Kitchen: models.KitchenStatusNotStarted}

	// Skipping the queue is not allowed.
	_, err := ApplyKitchen(tr, models.KitchenStatusCooking)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Walking the whole track forward is.
	var errStep error
	for _, next := range []models.KitchenStatus{
		models.KitchenStatusPending,
		models.KitchenStatusCooking,
		models.KitchenStatusReady,
		models.KitchenStatusCompleted,
	} {
		tr, errStep = ApplyKitchen(tr, next)
		require.NoError(t, errStep)
	}
	assert.Equal(t, models.KitchenStatusCompleted, tr.Kitchen)

	// Completed is terminal.
	_, err = ApplyKitchen(tr, models.KitchenStatusCooking)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRiderTrack(t *testing.T) {
	tr := Tracks{Order: models.OrderStatusPending, Rider: models.RiderStatusNotAssigned}

	// No assignment before the order is confirmed.
	_, err := ApplyRider(tr, models.RiderStatusAssigned)
	assert.ErrorIs(t, err, ErrOrderNotConfirmed)

	tr.Order = models.OrderStatusProcessing

	tr, err = ApplyRider(tr, models.RiderStatusAssigned)
	require.NoError(t, err)

	// Unassignment is the one backwards move.
	back, err := ApplyRider(tr, models.RiderStatusNotAssigned)
	require.NoError(t, err)
	assert.Equal(t, models.RiderStatusNotAssigned, back.Rider)

	var errStep error
	for _, next := range []models.RiderStatus{
		models.RiderStatusPickedUp,
		models.RiderStatusDelivering,
		models.RiderStatusDelivered,
	} {
		tr, errStep = ApplyRider(tr, next)
		require.NoError(t, errStep)
	}
	assert.Equal(t, models.RiderStatusDelivered, tr.Rider)

	_, err = ApplyRider(tr, models.RiderStatusDelivering)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		order   models.OrderStatus
		kitchen models.KitchenStatus
		want    string
	}{
		{models.OrderStatusPending, models.KitchenStatusNotStarted, "Not started"},
		{models.OrderStatusConfirmed, models.KitchenStatusNotStarted, "Order confirmed"},
		{models.OrderStatusConfirmed, models.KitchenStatusCooking, "Being prepared"},
		{models.OrderStatusProcessing, models.KitchenStatusReady, "Ready for pickup"},
		{models.OrderStatusProcessing, models.KitchenStatusCompleted, "Handed to delivery"},
		{models.OrderStatusOutForDelivery, models.KitchenStatusCompleted, "Out for delivery"},
		{models.OrderStatusDelivered, models.KitchenStatusCompleted, "Delivered"},
		{models.OrderStatusCancelled, models.KitchenStatusCooking, "Cancelled"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayLabel(tt.order, tt.kitchen),
			"order=%s kitchen=%s", tt.order, tt.kitchen)
	}
}
