package telegram

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/task"
	pkgLog "task-quickadd/pkg/log"
	pkgTelegram "task-quickadd/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	bot    *pkgTelegram.Bot
	secret string
}

// New creates a new Telegram delivery handler. An empty secret accepts
// updates without the secret token header.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
