package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-quickadd/internal/model"
)

const (
	UserIDHeader  = "X-User-ID"
	scopeKey      = "scope"
	anonymousUser = "anonymous"
)

// Scope stores the caller's model.Scope in the gin context.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = anonymousUser
		}
		c.Set(scopeKey, model.Scope{UserID: userID, Source: model.SourceHTTP})
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or an anonymous one.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: anonymousUser, Source: model.SourceHTTP}
}
