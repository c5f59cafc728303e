package model

// Scope identifies who a request is made for.
type Scope struct {
	UserID   string
	Username string
	Source   Source
}

// Source is the delivery a request came in through.
type Source string

const (
	SourceHTTP     Source = "http"
	SourceTelegram Source = "telegram"
)
