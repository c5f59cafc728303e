package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
	pkgLog "task-quickadd/pkg/log"
	pkgResponse "task-quickadd/pkg/response"
	pkgTelegram "task-quickadd/pkg/telegram"
)

const (
	startMessage = "Send me a task and I'll file it.\n\n" +
		"Dates and times are picked up from the text, e.g. \"Call Anna tomorrow at 5pm\".\n" +
		"Send several lines to add several tasks; indent a line to make it a subtask of the one above."
	helpMessage = "Commands:\n" +
		"/list [project] - show your latest tasks\n" +
		"/preview <text> - show how text would be parsed without saving\n" +
		"/help - this message\n\n" +
		"Anything else is added as tasks, one per line."
	listLimit = 10
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 straight away and handles the message in the background;
// Telegram retries updates that are not acknowledged quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !pkgTelegram.VerifySecret(h.secret, c.GetHeader(pkgTelegram.SecretTokenHeader)) {
		h.l.Warnf(ctx, "telegram handler: rejected update from %s", c.ClientIP())
		pkgResponse.Error(c, pkgResponse.NewHTTPError(http.StatusUnauthorized, errInvalidSecret.Error()))
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	reqID := pkgLog.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	go func() {
		bgCtx := pkgLog.WithRequestID(context.Background(), reqID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	command, args := splitCommand(text)
	switch command {
	case "/start":
		return h.bot.Reply(ctx, msg, startMessage)
	case "/help":
		return h.bot.Reply(ctx, msg, helpMessage)
	case "/list":
		return h.handleList(ctx, msg, args)
	case "/preview":
		return h.handlePreview(ctx, msg, args)
	}

	if strings.ContainsAny(text, "\r\n") {
		return h.handleBulk(ctx, msg)
	}
	return h.handleQuickAdd(ctx, msg, text)
}

func (h *handler) handleQuickAdd(ctx context.Context, msg *pkgTelegram.Message, text string) error {
	output, err := h.uc.QuickAdd(ctx, scopeOf(msg), task.QuickAddInput{Text: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: QuickAdd failed: %v", err)
		return h.bot.Reply(ctx, msg, errorMessage(err))
	}

	return h.bot.Reply(ctx, msg, "Added "+formatTask(output.Task.Task, output.Task.CalendarLink))
}

func (h *handler) handleBulk(ctx context.Context, msg *pkgTelegram.Message) error {
	// msg.Text, not the trimmed text: leading indentation is meaningful.
	output, err := h.uc.CreateBulk(ctx, scopeOf(msg), task.CreateBulkInput{RawText: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: CreateBulk failed: %v", err)
		return h.bot.Reply(ctx, msg, errorMessage(err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Added %d task(s):\n", output.TaskCount)
	for i, t := range output.Tasks {
		indent := ""
		if t.ParentID != "" {
			indent = "   "
		}
		fmt.Fprintf(&b, "%s%d. %s\n", indent, i+1, formatTask(t.Task, t.CalendarLink))
	}
	if len(output.Failed) > 0 {
		fmt.Fprintf(&b, "\nCould not add: %s", strings.Join(output.Failed, ", "))
	}

	return h.bot.Reply(ctx, msg, strings.TrimRight(b.String(), "\n"))
}

func (h *handler) handlePreview(ctx context.Context, msg *pkgTelegram.Message, args string) error {
	if args == "" {
		return h.bot.Reply(ctx, msg, "Usage: /preview <text>")
	}

	output, err := h.uc.Preview(ctx, task.PreviewInput{Text: args})
	if err != nil {
		return h.bot.Reply(ctx, msg, errorMessage(err))
	}

	var b strings.Builder
	for _, it := range output.Items {
		b.WriteString("- " + it.Title)
		if it.Project != "" {
			b.WriteString(" [" + it.Project + "]")
		}
		if it.Parent != "" {
			b.WriteString(" (under " + it.Parent + ")")
		}
		if it.DueDate != nil {
			b.WriteString(" due " + it.DueDate.Format(pkgResponse.DateTimeFormat))
		}
		b.WriteString("\n")
	}

	return h.bot.Reply(ctx, msg, strings.TrimRight(b.String(), "\n"))
}

func (h *handler) handleList(ctx context.Context, msg *pkgTelegram.Message, project string) error {
	output, err := h.uc.List(ctx, scopeOf(msg), task.ListInput{Project: project, Limit: listLimit})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List failed: %v", err)
		return h.bot.Reply(ctx, msg, errorMessage(err))
	}
	if output.Count == 0 {
		return h.bot.Reply(ctx, msg, "No tasks yet.")
	}

	var b strings.Builder
	for i, t := range output.Tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, formatTask(t, ""))
	}
	return h.bot.Reply(ctx, msg, strings.TrimRight(b.String(), "\n"))
}

// splitCommand separates "/cmd@botname args" into "/cmd" and "args". The
// command ends at the first whitespace, so arguments may start on the next
// line; their indentation after that line break is kept.
func splitCommand(text string) (string, string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	command, args := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		command = text[:i]
		args = strings.TrimLeft(text[i:], " \t")
		args = strings.TrimPrefix(strings.TrimPrefix(args, "\r"), "\n")
		args = strings.TrimRightFunc(args, unicode.IsSpace)
	}
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), args
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{
		UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID),
		Source: model.SourceTelegram,
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}

func formatTask(t model.Task, calendarLink string) string {
	s := t.Title
	if t.Project != "" {
		s += " [" + t.Project + "]"
	}
	if t.HasDueDate() {
		s += " due " + t.DueDate.Format(pkgResponse.DateTimeFormat)
	}
	if t.URL != "" {
		s += "\n   " + t.URL
	}
	if calendarLink != "" {
		s += "\n   Calendar: " + calendarLink
	}
	return s
}
