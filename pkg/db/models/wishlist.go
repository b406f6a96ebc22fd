package models

import "time"

// Wishlist groups items for a recipient and belongs to one owner.
type Wishlist struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;not null;index" json:"name"`
	Person    string    `gorm:"type:text;not null" json:"person"`
	OwnerID   uint      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []Item `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
}
