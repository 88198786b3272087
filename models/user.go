package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleCourier    UserRole = "courier"
	RoleAdmin      UserRole = "admin"
)

// AccountStatus is the moderation flag on a user account.
// SUSPENDED limits what the user may start (new orders, new acceptances);
// BANNED blocks authentication entirely.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountBanned    AccountStatus = "BANNED"
)

type User struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"not null"`
	Email         string        `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string        `json:"-" gorm:"not null"`
	Role          UserRole      `json:"role" gorm:"not null;default:'customer'"`
	AccountStatus AccountStatus `json:"account_status" gorm:"not null;default:'ACTIVE'"`
	Phone         string        `json:"phone"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PasswordResetToken is a single-use token issued by /forgot-password.
// Expired and used tokens are purged by the cleanup job.
type PasswordResetToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
