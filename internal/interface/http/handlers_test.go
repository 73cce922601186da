package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	"github.com/oksasatya/go-shop-storefront/internal/domain/repository"
	"github.com/oksasatya/go-shop-storefront/internal/interface/middleware"
	"github.com/oksasatya/go-shop-storefront/internal/session"
	"github.com/oksasatya/go-shop-storefront/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// newTestRouter returns an engine whose requests all share the given
// session, standing in for the Redis-backed Sessions middleware.
func newTestRouter(sess *session.Session) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxSessionKey, sess)
		c.Next()
	})
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// -------- repository fakes --------

type stubProductRepo struct {
	repository.ProductRepository
	products map[int64]*entity.Product
	getErr   error
	batches  int
}

func (f *stubProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *stubProductRepo) GetByID(id int64) (*entity.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *stubProductRepo) GetByIDs(ids []int64) ([]*entity.Product, error) {
	f.batches++
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func stubCatalog() *stubProductRepo {
	return &stubProductRepo{products: map[int64]*entity.Product{
		3: {ID: 3, Name: "Classic Tee", PriceCents: 1999},
		5: {ID: 5, Name: "Denim Jacket", PriceCents: 6999},
	}}
}

type stubUserRepo struct {
	repository.UserRepository
	byEmail map[string]*entity.User
	nextID  int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *stubUserRepo) Create(u *entity.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return errors.New("duplicate email")
	}
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return nil
}

func (f *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}
