package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one sees the request first.
// Nil entries are skipped, which lets callers switch a layer off by config.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range reversed(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}

func reversed(mws []Middleware) []Middleware {
	out := make([]Middleware, len(mws))
	for i, mw := range mws {
		out[len(mws)-1-i] = mw
	}
	return out
}
