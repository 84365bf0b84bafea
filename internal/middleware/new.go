package middleware

import "expense-assistant/pkg/log"

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
