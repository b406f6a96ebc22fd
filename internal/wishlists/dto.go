package wishlists

import (
	"time"

	"github.com/calebmartin/wishlist-backend/pkg/db/models"
)

// CreateWishlistRequest is the payload for a new wishlist.
type CreateWishlistRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Person string `json:"person" validate:"required,min=1,max=200"`
}

// CreateItemRequest is the payload for a new item.
type CreateItemRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=200"`
	Link *string `json:"link,omitempty" validate:"omitempty,max=2000"`
}

// ItemDTO is the transport shape for an item.
type ItemDTO struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Link         *string    `json:"link,omitempty"`
	Purchased    bool       `json:"purchased"`
	PurchaseDate *time.Time `json:"purchase_date"`
	WishlistID   uint       `json:"wishlist_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

// WishlistDTO is the transport shape for a wishlist with its items.
type WishlistDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Person    string    `json:"person"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	Items     []ItemDTO `json:"items"`
}

// DeleteWishlistResult reports the cascade outcome.
type DeleteWishlistResult struct {
	Message      string `json:"message"`
	ItemsRemoved int    `json:"items_removed"`
}

func itemFromModel(m models.Item) ItemDTO {
	return ItemDTO{
		ID:           m.ID,
		Name:         m.Name,
		Link:         m.Link,
		Purchased:    m.Purchased,
		PurchaseDate: m.PurchaseDate,
		WishlistID:   m.WishlistID,
		CreatedAt:    m.CreatedAt,
	}
}

func wishlistFromModel(m models.Wishlist) WishlistDTO {
	items := make([]ItemDTO, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, itemFromModel(item))
	}
	return WishlistDTO{
		ID:        m.ID,
		Name:      m.Name,
		Person:    m.Person,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		Items:     items,
	}
}
