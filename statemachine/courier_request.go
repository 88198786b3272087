package statemachine

import (
	"errors"

	"lezzet-api/models"
)

// RequestTransition defines a valid courier-registration state change
// and who can perform it. NOT_REGISTERED stands for the absence of a
// request row; cancelling a pending request returns the pair there.
type RequestTransition struct {
	From  models.CourierRequestStatus
	To    models.CourierRequestStatus
	Actor string // "courier", "restaurant"
}

var validRequestTransitions = []RequestTransition{
	{From: models.RequestNotRegistered, To: models.RequestPending, Actor: "courier"},
	{From: models.RequestPending, To: models.RequestNotRegistered, Actor: "courier"},
	{From: models.RequestPending, To: models.RequestAccepted, Actor: "restaurant"},
	{From: models.RequestPending, To: models.RequestRejected, Actor: "restaurant"},
	// A rejected courier may ask again
	{From: models.RequestRejected, To: models.RequestPending, Actor: "courier"},
}

type requestKey struct {
	From  models.CourierRequestStatus
	To    models.CourierRequestStatus
	Actor string
}

var requestTransitionMap = func() map[requestKey]bool {
	m := make(map[requestKey]bool)
	for _, t := range validRequestTransitions {
		m[requestKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransitionRequest checks a courier-registration transition
func CanTransitionRequest(from, to models.CourierRequestStatus, actor string) error {
	if requestTransitionMap[requestKey{from, to, actor}] {
		return nil
	}
	return errors.New(
		"invalid request transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'",
	)
}
