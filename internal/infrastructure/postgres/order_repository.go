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

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create runs the whole checkout inside one transaction: product lookup,
// price snapshot, order insert and wishlist cleanup. The deferred rollback
// releases the connection on every exit path; after a successful commit it
// is a no-op.
func (r *OrderRepository) Create(ctx context.Context, userID, productID string, quantity int, paymentMethod string) (*entity.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var p entity.Product
	row := tx.QueryRow(ctx, `
		SELECT id, name, price, image_url
		FROM products
		WHERE id = $1
	`, productID)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadUUID(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}

	o := &entity.Order{
		UserID:        userID,
		ProductID:     p.ID,
		ProductName:   p.Name,
		ProductPrice:  p.Price,
		ProductImage:  p.ImageURL,
		Quantity:      quantity,
		TotalPrice:    p.Price * float64(quantity),
		PaymentMethod: paymentMethod,
		Status:        entity.OrderStatusInProgress,
	}

	row = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, product_id, product_name, product_price, product_image,
		                    quantity, total_price, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, order_date
	`, o.UserID, o.ProductID, o.ProductName, o.ProductPrice, o.ProductImage,
		o.Quantity, o.TotalPrice, o.PaymentMethod, o.Status)
	if err := row.Scan(&o.ID, &o.OrderDate); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	// Purchasing removes the product from the buyer's wishlist. Idempotent:
	// zero rows affected is fine.
	if _, err := tx.Exec(ctx, `
		DELETE FROM wishlists WHERE user_id = $1 AND product_id = $2
	`, userID, productID); err != nil {
		return nil, fmt.Errorf("clean wishlist: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	return r.list(ctx, `
		SELECT id, user_id, product_id, product_name, product_price, product_image,
		       quantity, total_price, payment_method, status, order_date
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`, userID)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	return r.list(ctx, `
		SELECT id, user_id, product_id, product_name, product_price, product_image,
		       quantity, total_price, payment_method, status, order_date
		FROM orders
		ORDER BY order_date DESC
	`)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.ProductName, &o.ProductPrice,
			&o.ProductImage, &o.Quantity, &o.TotalPrice, &o.PaymentMethod, &o.Status, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Approve(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING id, user_id, product_id, product_name, product_price, product_image,
		          quantity, total_price, payment_method, status, order_date
	`, entity.OrderStatusCompleted, id)

	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.ProductName, &o.ProductPrice,
		&o.ProductImage, &o.Quantity, &o.TotalPrice, &o.PaymentMethod, &o.Status, &o.OrderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadUUID(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("approve order: %w", err)
	}
	return o, nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
