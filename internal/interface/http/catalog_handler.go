package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-storefront/internal/application"
	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	"github.com/oksasatya/go-shop-storefront/internal/interface/middleware"
	"github.com/oksasatya/go-shop-storefront/pkg/response"
)

type CatalogHandler struct {
	Catalog *application.CatalogService
	Logger  *logrus.Logger
}

func NewCatalogHandler(catalog *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Logger: logger}
}

func productJSON(p *entity.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price_cents": p.PriceCents,
		"image_url":   p.ImageURL,
		"category":    p.Category,
	}
}

// Index GET / lists every product. The view query parameter is a
// display-mode hint handed through to the presentation layer as-is.
func (h *CatalogHandler) Index(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	products, err := h.Catalog.List()
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("product list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load products", nil)
		return
	}

	view := c.DefaultQuery("view", application.DefaultView)
	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		items = append(items, productJSON(p))
	}
	response.Success(c, http.StatusOK, gin.H{
		"products": items,
		"view":     view,
		"username": sess.Username,
		"flashes":  sess.TakeFlashes(),
	}, "products", nil)
}

// Detail GET /product/:id
func (h *CatalogHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	p, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("product_id", id).Error("product lookup failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load product", nil)
		return
	}
	response.Success(c, http.StatusOK, productJSON(p), "product", nil)
}
