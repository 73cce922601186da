package session

import (
	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
)

// Session is the typed per-client state held server-side behind a
// cookie-carried id. At most one authenticated identity and one cart.
type Session struct {
	UserID   *int64      `json:"user_id,omitempty"`
	Username string      `json:"username,omitempty"`
	Cart     entity.Cart `json:"cart,omitempty"`
	Flashes  []string    `json:"flashes,omitempty"`
}

// New returns an empty session with an initialized cart.
func New() *Session {
	return &Session{Cart: entity.Cart{}}
}

// IsAuthenticated reports whether an identity is attached.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != nil
}

// SetIdentity attaches the authenticated user to the session.
func (s *Session) SetIdentity(userID int64, username string) {
	s.UserID = &userID
	s.Username = username
}

// ClearIdentity removes the authenticated user but keeps the cart.
// Logging out deliberately does not empty the cart.
func (s *Session) ClearIdentity() {
	s.UserID = nil
	s.Username = ""
}

// Flash queues a one-shot notice for the next page load.
func (s *Session) Flash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// TakeFlashes drains and returns the queued notices.
func (s *Session) TakeFlashes() []string {
	f := s.Flashes
	s.Flashes = nil
	return f
}
