package wishlists

import (
	"context"

	"github.com/calebmartin/wishlist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist and item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWishlist inserts a wishlist and returns the persisted model.
func (r *Repository) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	return r.db.WithContext(ctx).Create(wishlist).Error
}

// FindWishlistByID loads a wishlist without items.
func (r *Repository) FindWishlistByID(ctx context.Context, id uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.WithContext(ctx).First(&wishlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// ListWishlists returns every wishlist with its items preloaded.
func (r *Repository) ListWishlists(ctx context.Context) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.id ASC")
		}).
		Order("wishlists.id ASC").
		Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}

// DeleteWishlistCascade removes the wishlist's items then the wishlist
// itself, returning the number of items removed. Callers are expected to
// run this inside a transaction.
func (r *Repository) DeleteWishlistCascade(ctx context.Context, id uint) (int, error) {
	result := r.db.WithContext(ctx).Where("wishlist_id = ?", id).Delete(&models.Item{})
	if result.Error != nil {
		return 0, result.Error
	}
	removed := int(result.RowsAffected)

	if err := r.db.WithContext(ctx).Delete(&models.Wishlist{}, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return removed, nil
}

// CreateItem inserts an item and returns the persisted model.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindItemByID loads a single item.
func (r *Repository) FindItemByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns the items of one wishlist.
func (r *Repository) ListItems(ctx context.Context, wishlistID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SaveItem persists the purchased flag and purchase date of an item.
func (r *Repository) SaveItem(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"purchased":     item.Purchased,
			"purchase_date": item.PurchaseDate,
		}).Error
}

// DeleteItem removes a single item.
func (r *Repository) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
