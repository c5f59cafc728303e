package httpserver

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-quickadd"
)

func (srv HTTPServer) healthPayload(status string) gin.H {
	return gin.H{
		"status":      status,
		"service":     ServiceName,
		"version":     HealthVersion,
		"environment": srv.environment,
	}
}

// healthCheck godoc
// @Summary     Health Check
// @Description Check if the API is healthy
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]any "API is healthy"
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload("healthy"))
}

// readyCheck godoc
// @Summary     Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]any "API is ready"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload("ready"))
}

// liveCheck godoc
// @Summary     Liveness Check
// @Description Check if the API is alive
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]any "API is alive"
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload("alive"))
}
