package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/pkg/response"
)

const scopeKey = "scope"

// Auth validates the Bearer access token and stores the resulting Scope in
// the request context. Requests without a valid access token are rejected
// with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "authentication credentials were not provided")
			return
		}

		claims, err := m.tokens.ParseAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "token is invalid or expired")
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   claims.UserID,
			Username: claims.Username,
		})
		c.Next()
	}
}

// ScopeFromContext returns the Scope stored by Auth, or the zero Scope when
// the route is unauthenticated.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
