package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-storefront/internal/application"
	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	"github.com/oksasatya/go-shop-storefront/internal/session"
)

func newCartTestServer(repo *stubProductRepo) *CartHandler {
	return NewCartHandler(application.NewCartService(repo), nil)
}

func TestAddToCartRedirects(t *testing.T) {
	sess := session.New()
	h := newCartTestServer(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/add_to_cart/:id", h.Add)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add_to_cart/3", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
	assert.Equal(t, entity.Cart{"3": 1}, sess.Cart)
}

func TestAddToCartAccumulates(t *testing.T) {
	sess := session.New()
	h := newCartTestServer(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/add_to_cart/:id", h.Add)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add_to_cart/3", nil))
		require.Equal(t, http.StatusFound, w.Code)
	}

	assert.Equal(t, 3, sess.Cart.Quantity(3))
}

func TestRemoveFromCartDeletesLastUnit(t *testing.T) {
	sess := session.New()
	sess.Cart = entity.Cart{"3": 1}
	h := newCartTestServer(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/remove_from_cart/:id", h.Remove)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/remove_from_cart/3", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, sess.Cart)
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	sess := session.New()
	sess.Cart = entity.Cart{"3": 2}
	h := newCartTestServer(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/remove_from_cart/:id", h.Remove)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/remove_from_cart/99", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, entity.Cart{"3": 2}, sess.Cart)
}

func TestCartInvalidIDRejected(t *testing.T) {
	sess := session.New()
	h := newCartTestServer(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/add_to_cart/:id", h.Add)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add_to_cart/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sess.Cart)
}

func TestShowCartResolvesProducts(t *testing.T) {
	sess := session.New()
	sess.Cart = entity.Cart{"3": 2, "5": 1}
	repo := stubCatalog()
	h := newCartTestServer(repo)
	r := newTestRouter(sess)
	r.GET("/cart", h.Show)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)

	assert.Len(t, data["products"], 2)
	assert.Equal(t, float64(3), data["total_items"])
	assert.Equal(t, float64(2*1999+6999), data["total_cents"])
	assert.Equal(t, 1, repo.batches)
}

func TestShowEmptyCartSkipsStore(t *testing.T) {
	sess := session.New()
	repo := stubCatalog()
	h := newCartTestServer(repo)
	r := newTestRouter(sess)
	r.GET("/cart", h.Show)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)

	assert.Empty(t, data["products"])
	assert.Zero(t, repo.batches)
}
