package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
)

type stubWishlistRepo struct {
	addItem *entity.WishlistItem
	addErr  error

	removeItem *entity.WishlistItem
	removeErr  error

	count int
}

func (r *stubWishlistRepo) ListByUser(ctx context.Context, userID string) ([]entity.WishlistProduct, error) {
	return nil, nil
}

func (r *stubWishlistRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.count, nil
}

func (r *stubWishlistRepo) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	return r.addItem, r.addErr
}

func (r *stubWishlistRepo) Remove(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	return r.removeItem, r.removeErr
}

func TestWishlistAddDuplicate(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{addErr: repository.ErrDuplicate})

	_, err := svc.Add(context.Background(), "user-1", "prod-1")
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{addErr: repository.ErrNotFound})

	_, err := svc.Add(context.Background(), "user-1", "prod-missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistAdd(t *testing.T) {
	item := &entity.WishlistItem{ID: "wl-1", UserID: "user-1", ProductID: "prod-1"}
	svc := NewWishlistService(&stubWishlistRepo{addItem: item})

	got, err := svc.Add(context.Background(), "user-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestWishlistRemoveAbsent(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{removeErr: repository.ErrNotFound})

	_, err := svc.Remove(context.Background(), "user-1", "prod-1")
	assert.ErrorIs(t, err, ErrNotInWishlist)
}

func TestWishlistCount(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{count: 3})

	n, err := svc.Count(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
