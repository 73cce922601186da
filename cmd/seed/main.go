package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-shop-storefront/config"
	"github.com/oksasatya/go-shop-storefront/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username=EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s username=%s password=%s\n", id, email, username, password)

	products := []struct {
		name        string
		description string
		priceCents  int64
		imageURL    string
		category    string
	}{
		{"Classic Tee", "Plain cotton t-shirt", 1999, "/img/classic-tee.jpg", "tops"},
		{"Denim Jacket", "Mid-weight denim jacket", 6999, "/img/denim-jacket.jpg", "outerwear"},
		{"Chino Trousers", "Slim-fit chinos", 4599, "/img/chino-trousers.jpg", "bottoms"},
		{"Wool Beanie", "Ribbed knit beanie", 1499, "/img/wool-beanie.jpg", "accessories"},
		{"Canvas Sneakers", "Low-top canvas sneakers", 5499, "/img/canvas-sneakers.jpg", "shoes"},
	}
	for _, p := range products {
		var pid int64
		if err := db.QueryRow(`
			INSERT INTO products (name, description, price_cents, image_url, category)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO UPDATE SET price_cents=EXCLUDED.price_cents
			RETURNING id
		`, p.name, p.description, p.priceCents, p.imageURL, p.category).Scan(&pid); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
		fmt.Printf("seeded product: id=%d name=%s\n", pid, p.name)
	}
}
