package telegram

import (
	"errors"

	"task-quickadd/internal/task"
)

var errInvalidSecret = errors.New("invalid webhook secret")

// errorMessage returns a user-facing reply for a use-case error.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrNoTasksParsed):
		return "I couldn't find a task in that message."
	case errors.Is(err, task.ErrTaskCreate):
		return "The task store is unavailable right now. Please try again later."
	default:
		return "Something went wrong while handling your message. Please try again."
	}
}
