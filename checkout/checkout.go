// Package checkout holds the pricing rules applied when a customer
// places an order. Amounts are in TL.
package checkout

import "math"

const (
	// TaxAmount is a flat per-order tax.
	TaxAmount = 5.0
	// DeliveryFee is charged on DELIVERY orders only.
	DeliveryFee = 60.0
)

// TipPresets are the quick-select tip amounts offered at checkout.
// Free-form tips are allowed too; negative values are clamped to zero.
var TipPresets = []int{0, 1, 3, 5}

// Line is a cart line: a unit price and how many of it.
type Line struct {
	Price    float64
	Quantity int
}

// Breakdown is the itemised result of a checkout computation.
type Breakdown struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tip         float64 `json:"tip"`
	Total       float64 `json:"total"`
}

// Subtotal sums price times quantity over all lines.
func Subtotal(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return round2(sum)
}

// ClampTip forces the tip to be non-negative.
func ClampTip(tip int) int {
	if tip < 0 {
		return 0
	}
	return tip
}

// Compute prices a cart. delivery selects whether the delivery fee
// applies (false for pickup orders).
func Compute(lines []Line, delivery bool, tip int) Breakdown {
	b := Breakdown{
		Subtotal: Subtotal(lines),
		Tax:      TaxAmount,
		Tip:      float64(ClampTip(tip)),
	}
	if delivery {
		b.DeliveryFee = DeliveryFee
	}
	b.Total = round2(b.Subtotal + b.Tax + b.DeliveryFee + b.Tip)
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
