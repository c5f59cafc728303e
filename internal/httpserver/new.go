package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-quickadd/internal/middleware"
	"task-quickadd/internal/model"
	taskHTTP "task-quickadd/internal/task/delivery/http"
	tgDelivery "task-quickadd/internal/task/delivery/telegram"
	"task-quickadd/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment
	mw          middleware.Middleware

	// Task domain
	taskHandler        taskHTTP.Handler
	telegramHandler    tgDelivery.Handler
	telegramAllowedIPs []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment
	Middleware  middleware.Middleware

	// Task domain
	TaskHandler     taskHTTP.Handler
	TelegramHandler tgDelivery.Handler
	// TelegramAllowedIPs restricts the webhook route to these IPs or CIDRs.
	// Empty allows everyone.
	TelegramAllowedIPs []string
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		mw:                 cfg.Middleware,
		taskHandler:        cfg.TaskHandler,
		telegramHandler:    cfg.TelegramHandler,
		telegramAllowedIPs: cfg.TelegramAllowedIPs,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
