package http

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	quickAdd := rg.Group("/quick-add", mw.Scope())
	{
		quickAdd.POST("", h.QuickAdd)
		quickAdd.POST("/bulk", h.CreateBulk)
		quickAdd.POST("/preview", h.Preview)
	}

	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
	}
}
