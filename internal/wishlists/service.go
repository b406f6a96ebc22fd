package wishlists

import (
	"context"
	"errors"
	"time"

	"github.com/calebmartin/wishlist-backend/internal/auth"
	"github.com/calebmartin/wishlist-backend/pkg/db"
	"github.com/calebmartin/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the ownership-gated wishlist operations.
type Service interface {
	ListWishlists(ctx context.Context) ([]WishlistDTO, error)
	CreateWishlist(ctx context.Context, owner auth.VerifiedIdentity, req CreateWishlistRequest) (*WishlistDTO, error)
	DeleteWishlist(ctx context.Context, owner auth.VerifiedIdentity, wishlistID uint) (*DeleteWishlistResult, error)
	CreateItem(ctx context.Context, owner auth.VerifiedIdentity, wishlistID uint, req CreateItemRequest) (*ItemDTO, error)
	DeleteItem(ctx context.Context, owner auth.VerifiedIdentity, itemID uint) error
	TogglePurchase(ctx context.Context, itemID uint) (*ItemDTO, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	DB  *db.Client
	Now func() time.Time
}

type service struct {
	db  *db.Client
	now func() time.Time
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{db: params.DB, now: now}, nil
}

// ListWishlists returns every wishlist with items. The listing is open by
// design; ownership only gates mutations.
func (s *service) ListWishlists(ctx context.Context) ([]WishlistDTO, error) {
	repo := NewRepository(s.db.DB())
	records, err := repo.ListWishlists(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlists")
	}
	result := make([]WishlistDTO, 0, len(records))
	for _, record := range records {
		result = append(result, wishlistFromModel(record))
	}
	return result, nil
}

// CreateWishlist persists a new wishlist owned by the caller.
func (s *service) CreateWishlist(ctx context.Context, owner auth.VerifiedIdentity, req CreateWishlistRequest) (*WishlistDTO, error) {
	wishlist := &models.Wishlist{
		Name:    req.Name,
		Person:  req.Person,
		OwnerID: owner.UserID,
	}
	if err := NewRepository(s.db.DB()).CreateWishlist(ctx, wishlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create wishlist")
	}
	dto := wishlistFromModel(*wishlist)
	return &dto, nil
}

// DeleteWishlist removes the wishlist and its items after an ownership
// check, reporting how many items the cascade removed.
func (s *service) DeleteWishlist(ctx context.Context, owner auth.VerifiedIdentity, wishlistID uint) (*DeleteWishlistResult, error) {
	var result *DeleteWishlistResult
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		wishlist, err := repo.FindWishlistByID(ctx, wishlistID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
		}
		if wishlist.OwnerID != owner.UserID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to delete this wishlist")
		}

		removed, err := repo.DeleteWishlistCascade(ctx, wishlistID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete wishlist")
		}
		result = &DeleteWishlistResult{Message: "wishlist deleted", ItemsRemoved: removed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateItem adds an item to a wishlist the caller owns.
func (s *service) CreateItem(ctx context.Context, owner auth.VerifiedIdentity, wishlistID uint, req CreateItemRequest) (*ItemDTO, error) {
	var dto *ItemDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		wishlist, err := repo.FindWishlistByID(ctx, wishlistID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
		}
		if wishlist.OwnerID != owner.UserID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to add items to this wishlist")
		}

		item := &models.Item{
			Name:       req.Name,
			Link:       req.Link,
			Purchased:  false,
			WishlistID: wishlistID,
		}
		if err := repo.CreateItem(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create item")
		}
		d := itemFromModel(*item)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// DeleteItem removes an item after resolving its parent wishlist and
// checking the caller owns it.
func (s *service) DeleteItem(ctx context.Context, owner auth.VerifiedIdentity, itemID uint) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		item, err := repo.FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
		}

		wishlist, err := repo.FindWishlistByID(ctx, item.WishlistID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
		}
		if wishlist.OwnerID != owner.UserID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to delete this item")
		}

		if err := repo.DeleteItem(ctx, itemID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete item")
		}
		return nil
	})
}

// TogglePurchase flips the purchased state and derives the timestamp:
// set to now when flipping on, cleared when flipping off. Deliberately
// open to any caller so gift-givers can mark items without an account.
func (s *service) TogglePurchase(ctx context.Context, itemID uint) (*ItemDTO, error) {
	var dto *ItemDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		item, err := repo.FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
		}

		item.Purchased = !item.Purchased
		if item.Purchased {
			at := s.now()
			item.PurchaseDate = &at
		} else {
			item.PurchaseDate = nil
		}

		if err := repo.SaveItem(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save item")
		}
		d := itemFromModel(*item)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
