package repository

import (
	"context"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
)

// UserRepository defines the interface for credential-store operations.
type UserRepository interface {
	// Create inserts u and fills its ID and CreatedAt.
	// Returns ErrDuplicate when the email is already taken.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
