package auth

import (
	"context"
	"net/http"
	"strings"

	dom "github.com/vijitdua/TaskUp/internal/domain"

	"github.com/gin-gonic/gin"
)

const contextKeyUser = "auth_user"

// TokenValidator resolves a bearer token to its user. Implemented by the
// auth service.
type TokenValidator interface {
	UserByToken(ctx context.Context, token string) (dom.User, bool, error)
}

// UserFromContext returns the current user set by RequireToken. The zero
// User if not set.
func UserFromContext(c *gin.Context) dom.User {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return dom.User{}
	}
	u, ok := v.(dom.User)
	if !ok {
		return dom.User{}
	}
	return u
}

// RequireToken returns a middleware that checks the Authorization bearer
// token and sets the current user in context. If missing or unknown,
// responds with 401.
func RequireToken(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"res": "invalid token"})
			return
		}
		user, ok, err := tokens.UserByToken(c.Request.Context(), token)
		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"res": "invalid token"})
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
