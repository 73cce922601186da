package application

import (
	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-storefront/internal/domain/repository"
)

// CartService resolves session carts against the product store. Cart
// mutation itself is pure (entity.Cart); only viewing needs the store.
type CartService struct {
	Products repo.ProductRepository
}

func NewCartService(products repo.ProductRepository) *CartService {
	return &CartService{Products: products}
}

// CartView pairs the raw cart mapping with the resolved product rows.
type CartView struct {
	Cart       entity.Cart
	Products   []*entity.Product
	TotalItems int
	TotalCents int64
}

// View resolves display data for every product in the cart with one
// batch query. An empty cart never touches the store.
func (s *CartService) View(cart entity.Cart) (*CartView, error) {
	view := &CartView{
		Cart:       cart,
		Products:   []*entity.Product{},
		TotalItems: cart.TotalItems(),
	}
	ids := cart.ProductIDs()
	if len(ids) == 0 {
		return view, nil
	}
	products, err := s.Products.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	view.Products = products
	for _, p := range products {
		view.TotalCents += p.PriceCents * int64(cart.Quantity(p.ID))
	}
	return view, nil
}
