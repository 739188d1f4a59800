package middleware

import (
	"github.com/Kenyi45/task-manager/pkg/jwtauth"
	"github.com/Kenyi45/task-manager/pkg/log"
)

// Middleware bundles the handlers that wrap domain routes.
type Middleware struct {
	l      log.Logger
	tokens *jwtauth.Manager
}

func New(l log.Logger, tokens *jwtauth.Manager) Middleware {
	return Middleware{
		l:      l,
		tokens: tokens,
	}
}
