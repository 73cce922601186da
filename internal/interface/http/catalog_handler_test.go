package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-storefront/internal/application"
	"github.com/oksasatya/go-shop-storefront/internal/session"
)

func newCatalogTestHandler(repo *stubProductRepo) *CatalogHandler {
	return NewCatalogHandler(application.NewCatalogService(repo), nil)
}

func TestIndexListsProducts(t *testing.T) {
	sess := session.New()
	h := newCatalogTestHandler(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Len(t, data["products"], 2)
	assert.Equal(t, "grid", data["view"])
}

// The view hint is passed through without validation.
func TestIndexPassesViewHintThrough(t *testing.T) {
	sess := session.New()
	h := newCatalogTestHandler(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?view=banana", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "banana", data["view"])
}

func TestDetailReturnsProduct(t *testing.T) {
	sess := session.New()
	h := newCatalogTestHandler(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/product/:id", h.Detail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "Classic Tee", data["name"])
}

func TestDetailMissingProductIs404(t *testing.T) {
	sess := session.New()
	h := newCatalogTestHandler(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/product/:id", h.Detail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDetailStoreFailureIs500(t *testing.T) {
	sess := session.New()
	repo := stubCatalog()
	repo.getErr = errors.New("connection refused")
	h := newCatalogTestHandler(repo)
	r := newTestRouter(sess)
	r.GET("/product/:id", h.Detail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/3", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code, "an outage must not read as a missing product")
}

func TestDetailNonNumericIDRejected(t *testing.T) {
	sess := session.New()
	h := newCatalogTestHandler(stubCatalog())
	r := newTestRouter(sess)
	r.GET("/product/:id", h.Detail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
