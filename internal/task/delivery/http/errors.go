package http

import (
	"errors"
	"net/http"

	"task-quickadd/internal/task"
	"task-quickadd/pkg/response"
)

// mapError translates use-case errors into HTTP errors. Unknown errors are
// reported as internal.
func (h *handler) mapError(err error) (*response.HTTPError, bool) {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return response.NewValidationError(task.ErrEmptyInput.Error()), true
	case errors.Is(err, task.ErrNoTasksParsed):
		return response.NewHTTPError(http.StatusUnprocessableEntity, task.ErrNoTasksParsed.Error()), true
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error()), true
	case errors.Is(err, task.ErrTaskCreate):
		return response.NewHTTPError(http.StatusBadGateway, task.ErrTaskCreate.Error()), true
	default:
		return nil, false
	}
}
