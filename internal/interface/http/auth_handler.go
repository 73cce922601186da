package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-storefront/internal/application"
	"github.com/oksasatya/go-shop-storefront/internal/interface/middleware"
	"github.com/oksasatya/go-shop-storefront/pkg/response"
	"github.com/oksasatya/go-shop-storefront/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// Only presence is validated; email format and password strength checks
// are intentionally not applied to the login key.
type registerRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RegisterForm GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	response.Success(c, http.StatusOK, gin.H{"flashes": sess.TakeFlashes()}, "register", nil)
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if _, err := h.Auth.Register(application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		sess.Flash("Registration failed. Please try again.")
		response.Error[any](c, http.StatusUnprocessableEntity, "registration failed", nil)
		return
	}

	sess.Flash("Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// LoginForm GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	response.Success(c, http.StatusOK, gin.H{"flashes": sess.TakeFlashes()}, "login", nil)
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		sess.Flash("Login failed. Please check your credentials and try again.")
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	sess.SetIdentity(u.ID, u.Username)
	sess.Flash("Login successful!")
	c.Redirect(http.StatusFound, "/")
}

// Logout GET /logout clears the identity but keeps the cart.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	sess.ClearIdentity()
	sess.Flash("Logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}
