package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrNoTasksParsed = errors.New("no tasks parsed from input")
	ErrTaskCreate    = errors.New("failed to create task")
	ErrTaskNotFound  = errors.New("task not found")
)
