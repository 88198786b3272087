package models

import "time"

// Review is a customer's rating of a delivered order, shown publicly
// on the restaurant page. One review per order.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customer_id" gorm:"not null"`
	Customer     User      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	OrderID      uint      `json:"order_id" gorm:"uniqueIndex;not null"`
	Rating       int       `json:"rating" gorm:"not null"` // 1..5
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Complaint is a customer grievance about a restaurant, visible to admins.
type Complaint struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CustomerID   uint       `json:"customer_id" gorm:"not null"`
	Customer     User       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Message      string     `json:"message" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at"`
}
