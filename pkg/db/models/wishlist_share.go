package models

import "time"

// WishlistShare would grant another user access to a wishlist. The table
// is migrated for schema compatibility but no operation reads or writes
// it yet.
type WishlistShare struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	WishlistID uint      `gorm:"column:wishlist_id;not null;index" json:"wishlist_id"`
	CanEdit    bool      `gorm:"column:can_edit;not null;default:false" json:"can_edit"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
