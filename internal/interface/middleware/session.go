package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/internal/session"
	"blog-gateway/pkg/helpers"
)

const ctxPrincipalKey = "principal"

// SessionGate resolves the session cookie to a principal on every request
// and attaches it to the Gin context. It never rejects: downstream handlers
// decide via CurrentPrincipal / RequireAuth.
func SessionGate(store session.Store, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err == nil && token != "" {
			p, err := store.Resolve(c.Request.Context(), token)
			switch {
			case err == nil:
				c.Set(ctxPrincipalKey, p)
			case !errors.Is(err, session.ErrNoSession):
				// Store failure, not a missing session. Treat the request
				// as unauthenticated rather than failing it.
				logger.WithError(err).Warn("session resolve failed")
			}
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated identity for this request.
func CurrentPrincipal(c *gin.Context) (*entity.Principal, bool) {
	v, ok := c.Get(ctxPrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Principal)
	return p, ok
}

// RequireAuth gates protected routes. Unauthenticated requests are redirected
// to the login form before any handler work runs, so protected data never
// leaks on the response.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
