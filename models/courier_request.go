package models

import "time"

// CourierRequestStatus tracks a courier's registration with a restaurant.
// NOT_REGISTERED is the implicit absence of a row: a cancelled request is
// deleted rather than stored.
type CourierRequestStatus string

const (
	RequestNotRegistered CourierRequestStatus = "NOT_REGISTERED"
	RequestPending       CourierRequestStatus = "PENDING"
	RequestAccepted      CourierRequestStatus = "ACCEPTED"
	RequestRejected      CourierRequestStatus = "REJECTED"
)

// CourierRequest is the opt-in registration a courier must complete
// before receiving orders from a restaurant.
type CourierRequest struct {
	ID           uint                 `json:"id" gorm:"primaryKey"`
	CourierID    uint                 `json:"courier_id" gorm:"not null;index:idx_courier_restaurant,unique"`
	Courier      User                 `json:"courier,omitempty" gorm:"foreignKey:CourierID"`
	RestaurantID uint                 `json:"restaurant_id" gorm:"not null;index:idx_courier_restaurant,unique"`
	Restaurant   Restaurant           `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Status       CourierRequestStatus `json:"status" gorm:"not null;default:'PENDING'"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
