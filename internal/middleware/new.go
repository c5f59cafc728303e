// Package middleware holds the gin middlewares shared by every route.
package middleware

import (
	"time"

	"task-quickadd/pkg/log"
)

// Config tunes the middlewares.
type Config struct {
	RequestsPerMinute int           // Per client; zero disables rate limiting
	Burst             int           // Defaults to a tenth of RequestsPerMinute, at least 1
	MaxClients        int           // Tracked clients; defaults to 1000
	ClientTTL         time.Duration // Idle time before a client is forgotten; defaults to 5m
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMinute > 0 {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
