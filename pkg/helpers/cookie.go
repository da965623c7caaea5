package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
// The identifier is the only client-visible session state; everything else
// lives server-side.
const SessionCookieName = "session_id"

type CookieManager struct {
	Domain string
	Secure bool
	TTL    time.Duration
}

func NewCookie(domain string, secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure, TTL: ttl}
}

// SetSession writes the session cookie. HttpOnly: the token is never
// readable from scripts.
func (m *CookieManager) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(m.TTL.Seconds()), "/", m.Domain, m.Secure, true)
}

// ClearSession expires the session cookie on the client. Server-side state
// is revoked separately; clearing the cookie alone does not end a session.
func (m *CookieManager) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}
