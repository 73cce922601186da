package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Manager sets and clears the session id cookie.
type Manager struct {
	Name   string
	Domain string
	Secure bool
}

func NewCookie(name, domain string, secure bool) *Manager {
	return &Manager{Name: name, Domain: domain, Secure: secure}
}

// SetSession stores the opaque session id. HttpOnly keeps it away from
// scripts; the session body itself never leaves the server.
func (m *Manager) SetSession(c *gin.Context, sessionID string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, sessionID, int(ttl.Seconds()), "/", m.Domain, m.Secure, true)
}

// Get returns the session id carried by the request, empty when absent.
func (m *Manager) Get(c *gin.Context) string {
	v, err := c.Cookie(m.Name)
	if err != nil {
		return ""
	}
	return v
}
