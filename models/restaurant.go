package models

import "time"

// DeliveryType describes how food leaves a restaurant. Restaurants may
// support both; a single order is always exactly DELIVERY or PICKUP.
type DeliveryType string

const (
	DeliveryOnly      DeliveryType = "DELIVERY"
	PickupOnly        DeliveryType = "PICKUP"
	DeliveryAndPickup DeliveryType = "BOTH"
)

type Restaurant struct {
	ID                 uint         `json:"id" gorm:"primaryKey"`
	OwnerID            uint         `json:"owner_id" gorm:"not null"`
	Owner              User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name               string       `json:"name" gorm:"not null"`
	Cuisine            string       `json:"cuisine"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	District           string       `json:"district"`
	BusinessHoursStart string       `json:"business_hours_start"` // "HH:MM"
	BusinessHoursEnd   string       `json:"business_hours_end"`
	DeliveryType       DeliveryType `json:"delivery_type" gorm:"not null;default:'BOTH'"`
	Approved           bool         `json:"approved" gorm:"default:false"`
	IsOpen             bool         `json:"is_open" gorm:"default:true"`
	Rating             float64      `json:"rating" gorm:"default:0"`
	MenuItems          []MenuItem   `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Supports reports whether the restaurant can fulfil a given order
// delivery type.
func (r *Restaurant) Supports(dt DeliveryType) bool {
	return r.DeliveryType == DeliveryAndPickup || r.DeliveryType == dt
}
