package statemachine_test

import (
	"testing"

	"lezzet-api/models"
	"lezzet-api/statemachine"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionRequest(t *testing.T) {
	t.Run("courier requests registration", func(t *testing.T) {
		assert.NoError(t, statemachine.CanTransitionRequest(
			models.RequestNotRegistered, models.RequestPending, "courier"))
	})

	t.Run("restaurant accepts pending request", func(t *testing.T) {
		assert.NoError(t, statemachine.CanTransitionRequest(
			models.RequestPending, models.RequestAccepted, "restaurant"))
	})

	t.Run("restaurant rejects pending request", func(t *testing.T) {
		assert.NoError(t, statemachine.CanTransitionRequest(
			models.RequestPending, models.RequestRejected, "restaurant"))
	})

	t.Run("courier cancels pending request", func(t *testing.T) {
		assert.NoError(t, statemachine.CanTransitionRequest(
			models.RequestPending, models.RequestNotRegistered, "courier"))
	})

	t.Run("rejected courier may request again", func(t *testing.T) {
		assert.NoError(t, statemachine.CanTransitionRequest(
			models.RequestRejected, models.RequestPending, "courier"))
	})

	t.Run("denied transitions", func(t *testing.T) {
		// Courier cannot accept their own request
		assert.Error(t, statemachine.CanTransitionRequest(
			models.RequestPending, models.RequestAccepted, "courier"))
		// Accepted registration cannot be cancelled by the courier
		assert.Error(t, statemachine.CanTransitionRequest(
			models.RequestAccepted, models.RequestNotRegistered, "courier"))
		// Restaurant cannot revive a rejected request
		assert.Error(t, statemachine.CanTransitionRequest(
			models.RequestRejected, models.RequestPending, "restaurant"))
		// No skipping straight to accepted
		assert.Error(t, statemachine.CanTransitionRequest(
			models.RequestNotRegistered, models.RequestAccepted, "restaurant"))
	})
}
