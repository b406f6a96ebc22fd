package models

import "time"

// User represents the canonical identity entity.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email        *string   `gorm:"type:text;uniqueIndex" json:"email,omitempty"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Wishlists []Wishlist `gorm:"foreignKey:OwnerID" json:"-"`
}
