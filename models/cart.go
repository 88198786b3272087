package models

import "time"

// Cart is the customer's server-side basket. One cart per customer,
// pinned to a single restaurant; adding an item from another
// restaurant replaces the cart contents.
type Cart struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CustomerID   uint       `json:"customer_id" gorm:"uniqueIndex;not null"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Items        []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CartID     uint     `json:"cart_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
}
