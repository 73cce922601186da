package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-storefront/internal/application"
	"github.com/oksasatya/go-shop-storefront/internal/interface/middleware"
	"github.com/oksasatya/go-shop-storefront/pkg/response"
)

type CartHandler struct {
	Cart   *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(cart *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Cart: cart, Logger: logger}
}

// Show GET /cart renders the cart with resolved product data.
func (h *CartHandler) Show(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	view, err := h.Cart.View(sess.Cart)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("cart view failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load cart", nil)
		return
	}

	items := make([]gin.H, 0, len(view.Products))
	for _, p := range view.Products {
		items = append(items, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"price_cents": p.PriceCents,
			"image_url":   p.ImageURL,
			"quantity":    sess.Cart.Quantity(p.ID),
		})
	}
	response.Success(c, http.StatusOK, gin.H{
		"cart":        view.Cart,
		"products":    items,
		"total_items": view.TotalItems,
		"total_cents": view.TotalCents,
		"flashes":     sess.TakeFlashes(),
	}, "cart", nil)
}

// Add GET /add_to_cart/:id increments the product's quantity. The id is
// not checked against the catalog; an unknown id simply resolves to no
// row on the next cart view.
func (h *CartHandler) Add(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	sess := middleware.SessionFromContext(c)
	sess.Cart.Add(id)
	c.Redirect(http.StatusFound, "/cart")
}

// Remove GET /remove_from_cart/:id decrements the product's quantity,
// dropping the entry at zero. Removing an absent product is a no-op.
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	sess := middleware.SessionFromContext(c)
	sess.Cart.Remove(id)
	c.Redirect(http.StatusFound, "/cart")
}
