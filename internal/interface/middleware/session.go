package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-storefront/internal/session"
	"github.com/oksasatya/go-shop-storefront/pkg/helpers"
	"github.com/oksasatya/go-shop-storefront/pkg/response"
)

const (
	CtxSessionKey   = "session"
	CtxSessionIDKey = "session_id"
)

// Sessions loads the caller's session from the store (issuing a fresh id
// when the request carries none), exposes it on the Gin context, and
// writes it back after the handler ran. The cookie TTL is refreshed on
// every request so active sessions slide.
func Sessions(store session.Store, cookies *helpers.Manager, ttl time.Duration, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := cookies.Get(c)
		if sid == "" {
			sid = session.NewID()
		}

		sess, err := store.Load(c.Request.Context(), sid)
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithField("session_id", sid).Error("session load failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "session unavailable", nil)
			c.Abort()
			return
		}

		cookies.SetSession(c, sid, ttl)
		c.Set(CtxSessionKey, sess)
		c.Set(CtxSessionIDKey, sid)

		c.Next()

		if err := store.Save(c.Request.Context(), sid, sess); err != nil && logger != nil {
			logger.WithError(err).WithField("session_id", sid).Warn("session save failed")
		}
	}
}

// SessionFromContext returns the request's session. The Sessions
// middleware guarantees it is present on every route it wraps.
func SessionFromContext(c *gin.Context) *session.Session {
	if v, ok := c.Get(CtxSessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return session.New()
}
