package checkout_test

import (
	"testing"

	"lezzet-api/checkout"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	cart := []checkout.Line{
		{Price: 12.99, Quantity: 2},
		{Price: 15.99, Quantity: 1},
	}

	t.Run("delivery order with tip", func(t *testing.T) {
		b := checkout.Compute(cart, true, 5)
		assert.InDelta(t, 41.97, b.Subtotal, 0.001)
		assert.InDelta(t, 5.0, b.Tax, 0.001)
		assert.InDelta(t, 60.0, b.DeliveryFee, 0.001)
		assert.InDelta(t, 5.0, b.Tip, 0.001)
		assert.InDelta(t, 111.97, b.Total, 0.001)
	})

	t.Run("pickup order has no delivery fee", func(t *testing.T) {
		b := checkout.Compute(cart, false, 0)
		assert.Zero(t, b.DeliveryFee)
		assert.InDelta(t, 46.97, b.Total, 0.001)
	})

	t.Run("negative tip clamped to zero", func(t *testing.T) {
		b := checkout.Compute(cart, true, -10)
		assert.Zero(t, b.Tip)
		assert.InDelta(t, 106.97, b.Total, 0.001)
	})

	t.Run("total is the sum of its parts", func(t *testing.T) {
		for _, tip := range []int{0, 1, 3, 5, 42} {
			for _, delivery := range []bool{true, false} {
				b := checkout.Compute(cart, delivery, tip)
				assert.InDelta(t, b.Subtotal+b.Tax+b.DeliveryFee+b.Tip, b.Total, 0.001)
			}
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		b := checkout.Compute(nil, false, 0)
		assert.Zero(t, b.Subtotal)
		assert.InDelta(t, checkout.TaxAmount, b.Total, 0.001)
	})
}

func TestClampTip(t *testing.T) {
	assert.Equal(t, 0, checkout.ClampTip(-1))
	assert.Equal(t, 0, checkout.ClampTip(0))
	assert.Equal(t, 7, checkout.ClampTip(7))
}
