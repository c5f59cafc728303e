package http

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/task"
	"task-quickadd/pkg/log"
)

// Handler is the public interface for the quick-add HTTP delivery layer.
type Handler interface {
	Preview(c *gin.Context)
	QuickAdd(c *gin.Context)
	CreateBulk(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
