// Package middleware provides the HTTP middleware stack: request
// identification, logging, panic recovery, CORS, body limits, and path
// normalization.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes a middleware stack around a terminal handler.
type System interface {
	// Use appends a middleware to the stack. The first registered
	// middleware is the outermost wrapper.
	Use(mw Middleware)

	// Apply wraps the handler with the registered stack.
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: []Middleware{}}
}

func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
