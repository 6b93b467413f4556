package application

import (
	"context"
	"errors"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
)

var (
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrNotInWishlist     = errors.New("product not in wishlist")
)

// WishlistService tracks per-user product membership. No quantity or
// pricing semantics live here.
type WishlistService struct {
	Repo repository.WishlistRepository
}

func NewWishlistService(repo repository.WishlistRepository) *WishlistService {
	return &WishlistService{Repo: repo}
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]entity.WishlistProduct, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *WishlistService) Count(ctx context.Context, userID string) (int, error) {
	return s.Repo.CountByUser(ctx, userID)
}

func (s *WishlistService) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	it, err := s.Repo.Add(ctx, userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrAlreadyInWishlist
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return it, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	it, err := s.Repo.Remove(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotInWishlist
		}
		return nil, err
	}
	return it, nil
}
