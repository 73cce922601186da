package entity

import (
	"time"
)

// Product is a read-only catalog row; its lifecycle is owned by an
// external catalog process, the storefront never writes it.
type Product struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
	CreatedAt   time.Time
}
