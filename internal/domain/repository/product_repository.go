package repository

import "github.com/oksasatya/go-shop-storefront/internal/domain/entity"

// ProductRepository defines read access to the catalog. The storefront
// never mutates products.
type ProductRepository interface {
	ListAll() ([]*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	GetByIDs(ids []int64) ([]*entity.Product, error)
}
