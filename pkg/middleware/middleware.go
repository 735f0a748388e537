// Package middleware provides the HTTP middleware shared by the API and app
// modules: request ids, request logging, and CORS.
package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps a handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered middleware chain. The first middleware added is the
// outermost, so it sees the request first and the response last.
type Stack struct {
	chain []Middleware
}

// Use appends mw to the end of the chain.
func (s *Stack) Use(mw ...Middleware) {
	s.chain = append(s.chain, mw...)
}

// Apply wraps handler with every middleware in the chain.
func (s *Stack) Apply(handler http.Handler) http.Handler {
	for _, mw := range slices.Backward(s.chain) {
		handler = mw(handler)
	}
	return handler
}
