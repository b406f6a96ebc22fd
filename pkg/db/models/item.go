package models

import "time"

// Item is a single wishlist entry. PurchaseDate is set iff Purchased.
type Item struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"type:text;not null;index" json:"name"`
	Link         *string    `gorm:"type:text" json:"link,omitempty"`
	Purchased    bool       `gorm:"not null;default:false" json:"purchased"`
	PurchaseDate *time.Time `gorm:"column:purchase_date" json:"purchase_date"`
	WishlistID   uint       `gorm:"column:wishlist_id;not null;index" json:"wishlist_id"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
