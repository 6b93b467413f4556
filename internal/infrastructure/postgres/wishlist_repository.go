package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
)

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID string) ([]entity.WishlistProduct, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT w.id, w.product_id, p.name, p.price, p.description, p.image_url, w.created_at
		FROM wishlists w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select wishlist: %w", err)
	}
	defer rows.Close()

	items := []entity.WishlistProduct{}
	for rows.Next() {
		var it entity.WishlistProduct
		if err := rows.Scan(&it.WishlistID, &it.ProductID, &it.Name, &it.Price, &it.Description, &it.ImageURL, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

func (r *WishlistRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wishlists WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count wishlist: %w", err)
	}
	return count, nil
}

// Add relies on the (user_id, product_id) unique constraint to resolve
// concurrent inserts: the second writer gets ErrDuplicate, never a second row.
func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	it := &entity.WishlistItem{UserID: userID, ProductID: productID}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wishlists (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, userID, productID)

	if err := row.Scan(&it.ID, &it.CreatedAt); err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, repository.ErrDuplicate
		case isForeignKeyViolation(err), isBadUUID(err):
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("add to wishlist: %w", err)
	}
	return it, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	it := &entity.WishlistItem{UserID: userID, ProductID: productID}
	row := r.pool.QueryRow(ctx, `
		DELETE FROM wishlists
		WHERE user_id = $1 AND product_id = $2
		RETURNING id, created_at
	`, userID, productID)

	if err := row.Scan(&it.ID, &it.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadUUID(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("remove from wishlist: %w", err)
	}
	return it, nil
}

var _ repository.WishlistRepository = (*WishlistRepository)(nil)
