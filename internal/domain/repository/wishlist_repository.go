package repository

import (
	"context"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
)

// WishlistRepository defines wishlist membership storage operations.
// All operations are scoped to a single user.
type WishlistRepository interface {
	// ListByUser returns the user's entries joined with current product
	// fields, newest first.
	ListByUser(ctx context.Context, userID string) ([]entity.WishlistProduct, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	// Add returns ErrDuplicate when the (user, product) pair already exists
	// and ErrNotFound when the product does not exist.
	Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
	// Remove returns the deleted entry, or ErrNotFound when absent.
	Remove(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
}
