package statemachine_test

import (
	"testing"

	"lezzet-api/models"
	"lezzet-api/statemachine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to models.OrderStatus
		actor    string
	}{
		{models.StatusPending, models.StatusAccepted, "restaurant"},
		{models.StatusPending, models.StatusCancelled, "restaurant"},
		{models.StatusAccepted, models.StatusPreparing, "restaurant"},
		{models.StatusAccepted, models.StatusCancelled, "restaurant"},
		{models.StatusPreparing, models.StatusReady, "restaurant"},
		{models.StatusPreparing, models.StatusCancelled, "restaurant"},
		{models.StatusReady, models.StatusPickedUp, "restaurant"},
		{models.StatusReady, models.StatusPickedUp, "courier"},
		{models.StatusReady, models.StatusCancelled, "restaurant"},
		{models.StatusPickedUp, models.StatusDelivered, "courier"},
	}
	for _, tc := range allowed {
		t.Run(string(tc.from)+"_to_"+string(tc.to)+"_"+tc.actor, func(t *testing.T) {
			assert.NoError(t, statemachine.CanTransition(tc.from, tc.to, tc.actor))
		})
	}

	denied := []struct {
		from, to models.OrderStatus
		actor    string
	}{
		{models.StatusPending, models.StatusPreparing, "restaurant"}, // skipping ACCEPTED
		{models.StatusPending, models.StatusAccepted, "courier"},     // wrong actor
		{models.StatusPending, models.StatusAccepted, "customer"},
		{models.StatusAccepted, models.StatusPending, "restaurant"}, // backwards
		{models.StatusReady, models.StatusDelivered, "courier"},     // skipping PICKED_UP
		{models.StatusPickedUp, models.StatusDelivered, "restaurant"},
		{models.StatusDelivered, models.StatusCancelled, "restaurant"}, // terminal
		{models.StatusCancelled, models.StatusPending, "restaurant"},
		{models.StatusDelivered, models.StatusPickedUp, "courier"},
	}
	for _, tc := range denied {
		t.Run("deny_"+string(tc.from)+"_to_"+string(tc.to)+"_"+tc.actor, func(t *testing.T) {
			assert.Error(t, statemachine.CanTransition(tc.from, tc.to, tc.actor))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, statemachine.IsTerminal(models.StatusDelivered))
	assert.True(t, statemachine.IsTerminal(models.StatusCancelled))
	assert.False(t, statemachine.IsTerminal(models.StatusPending))
	assert.False(t, statemachine.IsTerminal(models.StatusPickedUp))
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := statemachine.ValidTransitionsFrom(models.StatusReady)
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusPickedUp, models.StatusCancelled}, nexts)

	assert.Empty(t, statemachine.ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, statemachine.ValidTransitionsFrom(models.StatusCancelled))
}

func TestEffectiveStatus(t *testing.T) {
	t.Run("pickup order completes on pickup", func(t *testing.T) {
		got := statemachine.EffectiveStatus(models.PickupOnly, models.StatusPickedUp)
		assert.Equal(t, models.StatusDelivered, got)
	})

	t.Run("delivery order stays picked up", func(t *testing.T) {
		got := statemachine.EffectiveStatus(models.DeliveryOnly, models.StatusPickedUp)
		assert.Equal(t, models.StatusPickedUp, got)
	})

	t.Run("other targets pass through", func(t *testing.T) {
		got := statemachine.EffectiveStatus(models.PickupOnly, models.StatusAccepted)
		assert.Equal(t, models.StatusAccepted, got)
	})
}

func TestCheckRestaurantAllowed(t *testing.T) {
	t.Run("suspended restaurant blocked on pending orders", func(t *testing.T) {
		err := statemachine.CheckRestaurantAllowed(models.StatusPending, models.AccountSuspended)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "suspended")
	})

	t.Run("suspended restaurant may progress accepted orders", func(t *testing.T) {
		for _, from := range []models.OrderStatus{
			models.StatusAccepted, models.StatusPreparing, models.StatusReady, models.StatusPickedUp,
		} {
			assert.NoError(t, statemachine.CheckRestaurantAllowed(from, models.AccountSuspended))
		}
	})

	t.Run("active restaurant unrestricted", func(t *testing.T) {
		assert.NoError(t, statemachine.CheckRestaurantAllowed(models.StatusPending, models.AccountActive))
	})
}
