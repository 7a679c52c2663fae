// Package status validates and applies transitions for the three independent
// status tracks an order carries: the customer-facing order status, the
// kitchen preparation status, and the rider delivery status. Transitions are
// checked against explicit tables; illegal moves are rejected at this boundary
// instead of trusting the caller.
package status

import (
	"errors"
	"fmt"

	"tiffinbox/pkg/models"
)

var (
	// ErrInvalidTransition is returned when the requested move is not in the
	// transition table for its track.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOrderNotConfirmed is returned when a kitchen or rider transition is
	// attempted before the order status has reached confirmed.
	ErrOrderNotConfirmed = errors.New("order not confirmed yet")
)

// Tracks is the status triple carried by an order. WeeklyOrder carries the
// same triple, so both order kinds go through this engine.
type Tracks struct {
	Order   models.OrderStatus
	Kitchen models.KitchenStatus
	Rider   models.RiderStatus
}

var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:        {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed:      {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing:     {models.OrderStatusOutForDelivery},
	models.OrderStatusOutForDelivery: {models.OrderStatusDelivered},
	models.OrderStatusDelivered:      {},
	models.OrderStatusCancelled:      {},
}

var kitchenTransitions = map[models.KitchenStatus][]models.KitchenStatus{
	models.KitchenStatusNotStarted: {models.KitchenStatusPending},
	models.KitchenStatusPending:    {models.KitchenStatusCooking},
	models.KitchenStatusCooking:    {models.KitchenStatusReady},
	models.KitchenStatusReady:      {models.KitchenStatusCompleted},
	models.KitchenStatusCompleted:  {},
}

var riderTransitions = map[models.RiderStatus][]models.RiderStatus{
	models.RiderStatusNotAssigned: {models.RiderStatusAssigned},
	models.RiderStatusAssigned:    {models.RiderStatusPickedUp, models.RiderStatusNotAssigned},
	models.RiderStatusPickedUp:    {models.RiderStatusDelivering},
	models.RiderStatusDelivering:  {models.RiderStatusDelivered},
	models.RiderStatusDelivered:   {},
}

func contains[S ~string](list []S, v S) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// confirmed reports whether the order status has passed the confirmation
// gate. Kitchen and rider tracks may only leave their zero states once this
// holds.
func confirmed(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusConfirmed,
		models.OrderStatusProcessing,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered:
		return true
	}
	return false
}

// ApplyOrder validates the order-status move and returns the updated triple.
func ApplyOrder(t Tracks, next models.OrderStatus) (Tracks, error) {
	allowed, ok := orderTransitions[t.Order]
	if !ok {
		return t, fmt.Errorf("%w: unknown order status %q", ErrInvalidTransition, t.Order)
	}
	if !contains(allowed, next) {
		return t, fmt.Errorf("%w: order %s -> %s", ErrInvalidTransition, t.Order, next)
	}
	t.Order = next
	return t, nil
}

// ApplyKitchen validates the kitchen-status move and returns the updated
// triple. The order must be confirmed before the kitchen track can start.
func ApplyKitchen(t Tracks, next models.KitchenStatus) (Tracks, error) {
	if !confirmed(t.Order) {
		return t, fmt.Errorf("%w: kitchen cannot move to %s while order is %s", ErrOrderNotConfirmed, next, t.Order)
	}
	allowed, ok := kitchenTransitions[t.Kitchen]
	if !ok {
		return t, fmt.Errorf("%w: unknown kitchen status %q", ErrInvalidTransition, t.Kitchen)
	}
	if !contains(allowed, next) {
		return t, fmt.Errorf("%w: kitchen %s -> %s", ErrInvalidTransition, t.Kitchen, next)
	}
	t.Kitchen = next
	return t, nil
}

// ApplyRider validates the rider-status move and returns the updated triple.
// The order must be confirmed before a rider can be assigned.
func ApplyRider(t Tracks, next models.RiderStatus) (Tracks, error) {
	if !confirmed(t.Order) {
		return t, fmt.Errorf("%w: rider cannot move to %s while order is %s", ErrOrderNotConfirmed, next, t.Order)
	}
	allowed, ok := riderTransitions[t.Rider]
	if !ok {
		return t, fmt.Errorf("%w: unknown rider status %q", ErrInvalidTransition, t.Rider)
	}
	if !contains(allowed, next) {
		return t, fmt.Errorf("%w: rider %s -> %s", ErrInvalidTransition, t.Rider, next)
	}
	t.Rider = next
	return t, nil
}

// DisplayLabel derives the composite human label shown to customers from the
// order and kitchen tracks. Purely presentational.
func DisplayLabel(order models.OrderStatus, kitchen models.KitchenStatus) string {
	switch order {
	case models.OrderStatusCancelled:
		return "Cancelled"
	case models.OrderStatusDelivered:
		return "Delivered"
	case models.OrderStatusPending:
		return "Not started"
	case models.OrderStatusOutForDelivery:
		return "Out for delivery"
	}

	switch kitchen {
	case models.KitchenStatusNotStarted, models.KitchenStatusPending:
		return "Order confirmed"
	case models.KitchenStatusCooking:
		return "Being prepared"
	case models.KitchenStatusReady:
		return "Ready for pickup"
	case models.KitchenStatusCompleted:
		return "Handed to delivery"
	}

	return "Order confirmed"
}
