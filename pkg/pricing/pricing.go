// Package pricing computes order totals. Money math goes through
// shopspring/decimal so repeated float sums cannot drift; results are rounded
// to two places at the boundary.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInsufficientStock is returned when a requested quantity exceeds the
// remaining stock for a menu item.
var ErrInsufficientStock = errors.New("insufficient stock")

// LineItem is one priced cart or order line.
type LineItem struct {
	Price    float64
	Quantity int
}

// Subtotal sums price times quantity across the lines.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

// ComputeTotal returns subtotal plus the delivery fee, rounded to two
// places. An empty item list still totals the fee; checkout handlers reject
// empty carts before pricing.
func ComputeTotal(items []LineItem, deliveryFee float64) float64 {
	total := Subtotal(items).Add(decimal.NewFromFloat(deliveryFee))
	f, _ := total.Round(2).Float64()
	return f
}

// DeliveryFee resolves the per-order fee. Weekly-menu checkout is always
// free delivery; otherwise a location-specific fee wins over the flat
// default.
func DeliveryFee(weekly bool, locationFee *float64, flatFee float64) float64 {
	if weekly {
		return 0
	}
	if locationFee != nil {
		return *locationFee
	}
	return flatFee
}

// DecrementStock returns the stock remaining after taking the requested
// quantity, rejecting requests the current stock cannot cover. Stock never
// goes negative. The checkout transaction applies the same guard in SQL; this
// is the pre-check used before attempting the write.
func DecrementStock(current, requested int) (int, error) {
	if requested <= 0 {
		return current, nil
	}
	if requested > current {
		return current, ErrInsufficientStock
	}
	return current - requested, nil
}
