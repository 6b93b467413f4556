package repository

import (
	"context"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
)

// ProductRepository defines catalog storage operations.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Create inserts p and fills its ID and CreatedAt.
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}
