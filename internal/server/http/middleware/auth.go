package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodbridge/internal/domain/model"
	pkgAuth "github.com/polkiloo/foodbridge/internal/pkg/auth"
)

const (
	// IdentityContextKey is a gin context key for the verified caller.
	IdentityContextKey = "identity"
	// CookieName holds the session token.
	CookieName = "token"
)

// TokenParser verifies a session token.
type TokenParser interface {
	ParseToken(token string) (model.Identity, error)
}

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// Authenticate resolves the caller from the session cookie or a bearer header.
// Requests without a valid token continue anonymously; handlers decide
// whether that means a redirect or a 401.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.Next()
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session cookie to the response.
func SetAuthCookie(c *gin.Context, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", opts.Secure, true)
}
