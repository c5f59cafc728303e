package repository

import "time"

// CreateOptions holds the parameters for storing a task.
type CreateOptions struct {
	UserID   string
	Title    string
	Project  string
	ParentID string
	DueDate  *time.Time
}

// DetailOptions holds the parameters for loading one task.
type DetailOptions struct {
	ID     string
	UserID string // Empty skips the owner check
}

// ListOptions holds the parameters for listing tasks.
type ListOptions struct {
	UserID  string // Empty lists every user's tasks
	Project string // Empty lists every project
	Limit   int    // Zero means DefaultListLimit
}

const DefaultListLimit = 50
