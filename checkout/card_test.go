package checkout_test

import (
	"testing"
	"time"

	"lezzet-api/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestValidateCard(t *testing.T) {
	valid := checkout.Card{Number: "4111111111111111", Expiry: "12/27", CVV: "123"}

	t.Run("valid card", func(t *testing.T) {
		require.NoError(t, checkout.ValidateCard(valid, now))
	})

	t.Run("expiry in current month is accepted", func(t *testing.T) {
		c := valid
		c.Expiry = "03/26"
		assert.NoError(t, checkout.ValidateCard(c, now))
	})

	t.Run("expired card rejected", func(t *testing.T) {
		c := valid
		c.Expiry = "02/26"
		assert.ErrorIs(t, checkout.ValidateCard(c, now), checkout.ErrCardExpiry)
	})

	t.Run("bad expiry formats", func(t *testing.T) {
		for _, exp := range []string{"13/27", "00/27", "1/27", "12-27", "12/2027", "", "ab/cd"} {
			c := valid
			c.Expiry = exp
			assert.ErrorIs(t, checkout.ValidateCard(c, now), checkout.ErrCardExpiry, exp)
		}
	})

	t.Run("bad card numbers", func(t *testing.T) {
		for _, num := range []string{"", "411111111111111", "41111111111111112", "4111-1111-1111-1111", "abcdabcdabcdabcd"} {
			c := valid
			c.Number = num
			assert.ErrorIs(t, checkout.ValidateCard(c, now), checkout.ErrCardNumber, num)
		}
	})

	t.Run("bad cvv", func(t *testing.T) {
		for _, cvv := range []string{"", "12", "1234", "12a"} {
			c := valid
			c.CVV = cvv
			assert.ErrorIs(t, checkout.ValidateCard(c, now), checkout.ErrCardCVV, cvv)
		}
	})
}
