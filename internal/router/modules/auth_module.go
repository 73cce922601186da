package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-shop-storefront/internal/container"
	handlers "github.com/oksasatya/go-shop-storefront/internal/interface/http"
	"github.com/oksasatya/go-shop-storefront/internal/interface/middleware"
)

// AuthModule wires registration, login, and logout.
// GET/POST /register, GET/POST /login, GET /logout
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	registerLimiter := middleware.RateLimit(container.GetRedis(), cfg.RegisterRateLimit, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), cfg.LoginRateLimit, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/register", m.Handler.RegisterForm)
	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.GET("/login", m.Handler.LoginForm)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}
