package http

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/middleware"
	"task-quickadd/pkg/response"
)

// QuickAdd godoc
// @Summary     Quick-add a task
// @Description Parses a date, time and project out of one line of text and stores the task.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      false "Caller ID"
// @Param       body      body   quickAddReq true  "Task text"
// @Success     200 {object} quickAddResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}

// CreateBulk godoc
// @Summary     Quick-add several tasks
// @Description One task per line. Indented lines become subtasks of the line above them.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Caller ID"
// @Param       body      body   bulkReq true  "Tasks, one per line"
// @Success     200 {object} bulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No tasks found"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/quick-add/bulk [POST]
func (h *handler) CreateBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateBulk(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBulk: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newBulkResp(output))
}

// Preview godoc
// @Summary     Preview quick-add parsing
// @Description Shows how text would be split into tasks, dates and projects without storing anything.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Text and optional reference time"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/quick-add/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, input)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's newest tasks.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "Caller ID"
// @Param       project   query  string false "Filter by project"
// @Param       limit     query  int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.OK(c, newTaskResp(output, ""))
}

func (h *handler) renderError(c *gin.Context, err error) {
	if httpErr, ok := h.mapError(err); ok {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c)
}
