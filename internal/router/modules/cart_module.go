package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-shop-storefront/internal/interface/http"
)

// CartModule wires the session cart.
// GET /cart, GET /add_to_cart/:id, GET /remove_from_cart/:id
type CartModule struct {
	Handler *handlers.CartHandler
}

func NewCartModule(h *handlers.CartHandler) *CartModule {
	return &CartModule{Handler: h}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.GET("/cart", m.Handler.Show)
	rg.GET("/add_to_cart/:id", m.Handler.Add)
	rg.GET("/remove_from_cart/:id", m.Handler.Remove)
}
