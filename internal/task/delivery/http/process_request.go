package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processQuickAddReq(c *gin.Context) (quickAddReq, error) {
	var req quickAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processBulkReq(c *gin.Context) (bulkReq, error) {
	var req bulkReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}
