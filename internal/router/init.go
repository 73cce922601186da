package router

import (
	"github.com/oksasatya/go-shop-storefront/internal/application"
	"github.com/oksasatya/go-shop-storefront/internal/container"
	pginfra "github.com/oksasatya/go-shop-storefront/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-shop-storefront/internal/interface/http"
	"github.com/oksasatya/go-shop-storefront/internal/router/modules"
)

type StorefrontDeps struct {
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Cart    *handlers.CartHandler
}

func buildStorefrontDeps() StorefrontDeps {
	users := pginfra.NewUserRepository(container.GetPGPool())
	products := pginfra.NewProductRepository(container.GetPGPool())
	logger := container.GetLogger()

	authSvc := application.NewAuthService(users, logger)
	catalogSvc := application.NewCatalogService(products)
	cartSvc := application.NewCartService(products)

	return StorefrontDeps{
		Auth:    handlers.NewAuthHandler(authSvc, logger),
		Catalog: handlers.NewCatalogHandler(catalogSvc, logger),
		Cart:    handlers.NewCartHandler(cartSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildStorefrontDeps()
	r.Add(modules.NewAuthModule(deps.Auth))
	r.Add(modules.NewCatalogModule(deps.Catalog))
	r.Add(modules.NewCartModule(deps.Cart))
}
