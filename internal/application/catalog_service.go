package application

import (
	"errors"

	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-storefront/internal/domain/repository"
)

var ErrProductNotFound = errors.New("product not found")

// DefaultView is the display-mode hint used when the caller supplies none.
// The value is passed through to the presentation layer unvalidated.
const DefaultView = "grid"

// CatalogService exposes read-only browsing over the product store.
type CatalogService struct {
	Products repo.ProductRepository
}

func NewCatalogService(products repo.ProductRepository) *CatalogService {
	return &CatalogService{Products: products}
}

func (s *CatalogService) List() ([]*entity.Product, error) {
	return s.Products.ListAll()
}

// Get returns the product, ErrProductNotFound when no row matches, and
// the underlying error untouched when the store itself fails.
func (s *CatalogService) Get(id int64) (*entity.Product, error) {
	p, err := s.Products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}
