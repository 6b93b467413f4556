package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/shopwish/shopwish-api/config"
	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/pkg/helpers"
)

// Seeds the admin account and a handful of demo products for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "admin12345"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, account_kind, is_admin)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (email) DO UPDATE SET is_admin = TRUE
		RETURNING id
	`, "ShopWish Admin", cfg.AdminEmail, hash, entity.AccountKindPassword).Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", adminID, cfg.AdminEmail, password)

	var existing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&existing); err != nil {
		log.Fatalf("failed to count products: %v", err)
	}
	if existing > 0 {
		fmt.Printf("products already present (%d), skipping product seed\n", existing)
		return
	}

	products := []struct {
		name        string
		price       float64
		description string
		imageURL    string
	}{
		{"Headphones", 100000, "Wireless over-ear headphones with noise cancelling", ""},
		{"Mechanical Keyboard", 750000, "Hot-swappable 75% keyboard with PBT keycaps", ""},
		{"USB-C Hub", 250000, "7-in-1 hub with HDMI, card reader and PD passthrough", ""},
		{"Desk Lamp", 180000, "Adjustable LED lamp with three color temperatures", ""},
	}

	for _, p := range products {
		var id string
		err := db.QueryRow(`
			INSERT INTO products (name, price, description, image_url)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.name, p.price, p.description, p.imageURL).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
		fmt.Printf("seeded product: id=%s name=%s price=%.0f\n", id, p.name, p.price)
	}
}
