package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
	"task-quickadd/internal/task/delivery/telegram"
	pkgTelegram "task-quickadd/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockTaskUseCase struct {
	mu sync.Mutex

	quickAddInput  task.QuickAddInput
	quickAddOutput task.QuickAddOutput
	bulkInput      task.CreateBulkInput
	bulkOutput     task.CreateBulkOutput
	previewInput   task.PreviewInput
	previewOutput  task.PreviewOutput
	listInput      task.ListInput
	listOutput     task.ListOutput
	scope          model.Scope
	err            error
}

func (m *mockTaskUseCase) QuickAdd(ctx context.Context, sc model.Scope, input task.QuickAddInput) (task.QuickAddOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scope, m.quickAddInput = sc, input
	return m.quickAddOutput, m.err
}

func (m *mockTaskUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scope, m.bulkInput = sc, input
	return m.bulkOutput, m.err
}

func (m *mockTaskUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.previewInput = input
	return m.previewOutput, m.err
}

func (m *mockTaskUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listInput = input
	return m.listOutput, m.err
}

func (m *mockTaskUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return model.Task{}, m.err
}

// capturedMessages collects sendMessage payloads from the fake Bot API.
type capturedMessages struct {
	mu   sync.Mutex
	msgs []pkgTelegram.SendMessageRequest
}

func (c *capturedMessages) add(m pkgTelegram.SendMessageRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, m)
}

func (c *capturedMessages) snapshot() []pkgTelegram.SendMessageRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]pkgTelegram.SendMessageRequest(nil), c.msgs...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

const testSecret = "s3cret"

type testEnv struct {
	engine   *gin.Engine
	muc      *mockTaskUseCase
	captured *capturedMessages
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &capturedMessages{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&payload)
			captured.add(payload)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	muc := &mockTaskUseCase{}
	engine := gin.New()
	h := telegram.New(&mockLogger{}, muc, bot, testSecret)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, muc: muc, captured: captured}
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 7,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "ann"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	return post(engine, body, testSecret)
}

func post(engine *gin.Engine, body []byte, secret string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// waitForReply blocks until the fake Bot API has seen a message.
func waitForReply(t *testing.T, env *testEnv) pkgTelegram.SendMessageRequest {
	t.Helper()
	var msgs []pkgTelegram.SendMessageRequest
	require.Eventually(t, func() bool {
		msgs = env.captured.snapshot()
		return len(msgs) > 0
	}, time.Second, 10*time.Millisecond)
	return msgs[0]
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_Rejections(t *testing.T) {
	env := newTestEnv(t)

	w := post(env.engine, []byte(`{"update_id":1}`), "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(env.engine, []byte(`{"update_id":1}`), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(env.engine, []byte("{bad json"), testSecret)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := post(env.engine, []byte(`{"update_id":1}`), testSecret)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestHandleStartAndHelp(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/start", "Send me a task"},
		{"/help", "Commands:"},
		{"/help@quickadd_bot", "Commands:"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			env := newTestEnv(t)
			w := sendWebhook(env.engine, tt.text)
			require.Equal(t, http.StatusOK, w.Code)

			reply := waitForReply(t, env)
			assert.Contains(t, reply.Text, tt.want)
			assert.Equal(t, int64(123), reply.ChatID)
			assert.Equal(t, int64(7), reply.ReplyToMessageID)
		})
	}
}

func TestHandleQuickAdd(t *testing.T) {
	env := newTestEnv(t)
	due := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	env.muc.quickAddOutput = task.QuickAddOutput{Task: task.CreatedTask{
		Task:         model.Task{ID: "t1", Title: "Call Anna", Project: "home", DueDate: &due},
		CalendarLink: "https://cal/ev",
	}}

	w := sendWebhook(env.engine, "Call Anna tomorrow at 5pm +home")
	require.Equal(t, http.StatusOK, w.Code)

	reply := waitForReply(t, env)
	assert.Equal(t, "Added Call Anna [home] due 2024-01-02T17:00:00Z\n   Calendar: https://cal/ev", reply.Text)

	env.muc.mu.Lock()
	defer env.muc.mu.Unlock()
	assert.Equal(t, "Call Anna tomorrow at 5pm +home", env.muc.quickAddInput.Text)
	assert.Equal(t, model.Scope{UserID: "telegram_456", Username: "ann", Source: model.SourceTelegram}, env.muc.scope)
}

func TestHandleBulk(t *testing.T) {
	env := newTestEnv(t)
	env.muc.bulkOutput = task.CreateBulkOutput{
		Tasks: []task.CreatedTask{
			{Task: model.Task{ID: "p", Title: "Groceries"}},
			{Task: model.Task{ID: "c", Title: "milk", ParentID: "p"}},
		},
		TaskCount: 2,
		Failed:    []string{"eggs"},
	}

	text := "Groceries\n  milk\n  eggs"
	sendWebhook(env.engine, text)

	reply := waitForReply(t, env)
	assert.Equal(t, "Added 2 task(s):\n1. Groceries\n   2. milk\n\nCould not add: eggs", reply.Text)

	env.muc.mu.Lock()
	defer env.muc.mu.Unlock()
	assert.Equal(t, text, env.muc.bulkInput.RawText)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{task.ErrNoTasksParsed, "couldn't find a task"},
		{task.ErrTaskCreate, "task store is unavailable"},
		{context.DeadlineExceeded, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			env := newTestEnv(t)
			env.muc.err = tt.err

			sendWebhook(env.engine, "anything")
			assert.Contains(t, waitForReply(t, env).Text, tt.want)
		})
	}
}

func TestHandleList(t *testing.T) {
	env := newTestEnv(t)
	env.muc.listOutput = task.ListOutput{
		Tasks: []model.Task{{ID: "a", Title: "Report", Project: "work", URL: "https://memos/m/a"}},
		Count: 1,
	}

	sendWebhook(env.engine, "/list work")

	assert.Equal(t, "1. Report [work]\n   https://memos/m/a", waitForReply(t, env).Text)
	env.muc.mu.Lock()
	defer env.muc.mu.Unlock()
	assert.Equal(t, task.ListInput{Project: "work", Limit: 10}, env.muc.listInput)
}

func TestHandleList_Empty(t *testing.T) {
	env := newTestEnv(t)

	sendWebhook(env.engine, "/list")
	assert.Equal(t, "No tasks yet.", waitForReply(t, env).Text)
}

func TestHandlePreview(t *testing.T) {
	env := newTestEnv(t)
	env.muc.previewOutput = task.PreviewOutput{Items: []task.PreviewItem{
		{Title: "Report", Project: "work"},
		{Title: "draft", Parent: "Report"},
	}}

	sendWebhook(env.engine, "/preview Report +work")
	assert.Equal(t, "- Report [work]\n- draft (under Report)", waitForReply(t, env).Text)
}

func TestHandlePreview_ArgumentsOnNextLine(t *testing.T) {
	env := newTestEnv(t)
	env.muc.previewOutput = task.PreviewOutput{Items: []task.PreviewItem{
		{Title: "Buy milk"},
		{Title: "oat", Parent: "Buy milk"},
	}}

	sendWebhook(env.engine, "/preview\nBuy milk\n  oat")
	assert.Equal(t, "- Buy milk\n- oat (under Buy milk)", waitForReply(t, env).Text)

	env.muc.mu.Lock()
	defer env.muc.mu.Unlock()
	assert.Equal(t, "Buy milk\n  oat", env.muc.previewInput.Text)
	assert.Empty(t, env.muc.bulkInput.RawText)
}

func TestHandlePreview_Usage(t *testing.T) {
	env := newTestEnv(t)

	sendWebhook(env.engine, "/preview")
	assert.Equal(t, "Usage: /preview <text>", waitForReply(t, env).Text)
}
