package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"task-quickadd/pkg/response"
)

// AllowIPs only lets through clients inside one of the given addresses or
// CIDR ranges. An empty list allows everyone. Invalid entries are skipped.
func (mw Middleware) AllowIPs(allowed []string) gin.HandlerFunc {
	var nets []*net.IPNet
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if !strings.Contains(a, "/") {
			if strings.Contains(a, ":") {
				a += "/128"
			} else {
				a += "/32"
			}
		}
		if _, ipNet, err := net.ParseCIDR(a); err == nil {
			nets = append(nets, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		ip := net.ParseIP(c.ClientIP())
		for _, n := range nets {
			if ip != nil && n.Contains(ip) {
				c.Next()
				return
			}
		}

		mw.l.Warnf(c.Request.Context(), "rejected request from %s", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusForbidden, response.Resp{
			ErrorCode: http.StatusForbidden,
			Message:   "Forbidden",
		})
	}
}
