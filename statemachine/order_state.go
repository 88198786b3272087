package statemachine

import (
	"errors"

	"lezzet-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "restaurant", "courier", "admin"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Restaurant accepts or cancels a pending order
	{From: models.StatusPending, To: models.StatusAccepted, Actor: "restaurant"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "restaurant"},
	// Kitchen progression, cancellation stays possible until pickup
	{From: models.StatusAccepted, To: models.StatusPreparing, Actor: "restaurant"},
	{From: models.StatusAccepted, To: models.StatusCancelled, Actor: "restaurant"},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: "restaurant"},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: "restaurant"},
	{From: models.StatusReady, To: models.StatusCancelled, Actor: "restaurant"},
	// Hand-off: restaurant hands the bag over, or a courier takes it
	{From: models.StatusReady, To: models.StatusPickedUp, Actor: "restaurant"},
	{From: models.StatusReady, To: models.StatusPickedUp, Actor: "courier"},
	// Courier completes the delivery
	{From: models.StatusPickedUp, To: models.StatusDelivered, Actor: "courier"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// IsTerminal reports whether no further transitions are allowed
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// CheckRestaurantAllowed enforces the suspension guard: a SUSPENDED
// restaurant owner may not move an order out of PENDING, but orders
// already accepted keep progressing.
func CheckRestaurantAllowed(from models.OrderStatus, owner models.AccountStatus) error {
	if from == models.StatusPending && owner == models.AccountSuspended {
		return errors.New("restaurant is suspended and cannot act on pending orders")
	}
	return nil
}

// EffectiveStatus resolves where a requested transition actually lands.
// Pickup orders have no courier leg: marking one picked up completes it,
// so the stored status jumps straight to DELIVERED.
func EffectiveStatus(deliveryType models.DeliveryType, to models.OrderStatus) models.OrderStatus {
	if deliveryType == models.PickupOnly && to == models.StatusPickedUp {
		return models.StatusDelivered
	}
	return to
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
