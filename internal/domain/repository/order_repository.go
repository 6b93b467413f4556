package repository

import (
	"context"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
)

// OrderRepository defines order-ledger storage operations.
type OrderRepository interface {
	// Create runs the order transaction: product lookup, price snapshot,
	// order insert and wishlist cleanup, atomically. Returns ErrNotFound
	// when the product does not exist. Nothing persists on failure.
	Create(ctx context.Context, userID, productID string, quantity int, paymentMethod string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
	// Approve sets the order status to completed. Approving an already
	// completed order is a no-op that returns the order unchanged.
	Approve(ctx context.Context, id string) (*entity.Order, error)
}
