package entity

import "time"

// WishlistItem is a (user, product) membership row. The pair is unique.
type WishlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistProduct is a wishlist row joined with the current product fields,
// as returned by the wishlist listing.
type WishlistProduct struct {
	WishlistID  string    `json:"wishlist_id"`
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
