package middleware

import (
	"bookme/pkg/log"
)

// Config carries the settings the middlewares need.
type Config struct {
	AdminToken string
	Limiter    Limiter
	// FailOpen lets requests through when the limiter backend errors.
	FailOpen bool
}

type Middleware struct {
	l          log.Logger
	adminToken string
	limiter    Limiter
	failOpen   bool
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:          l,
		adminToken: cfg.AdminToken,
		limiter:    cfg.Limiter,
		failOpen:   cfg.FailOpen,
	}
}
