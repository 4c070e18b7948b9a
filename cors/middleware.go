package cors

import (
	"maps"
	"net/http"
	"sync/atomic"

	"github.com/ThorstenHans/spin-contrib-http/internal/headers"
)

// A Middleware applies a CORS policy to the handlers it wraps.
// Call its [*Middleware.Wrap] method to apply it to a [http.Handler].
//
// The zero value is ready to use but is a mere "passthrough" middleware,
// i.e. a middleware that simply delegates to the handler(s) it wraps.
// To obtain a proper CORS middleware, call [NewMiddleware].
//
// A Middleware must not be copied after first use.
//
// Middleware are safe for concurrent use by multiple goroutines;
// in particular, a Middleware can be reconfigured (via
// [*Middleware.Reconfigure]) even as it is processing requests.
type Middleware struct {
	cfg atomic.Pointer[Config]
}

// NewMiddleware creates a CORS middleware that behaves in accordance
// with cfg. Construction cannot fail. If cfg is nil, the resulting
// middleware is a passthrough.
//
// The middleware holds its own copy of cfg.
func NewMiddleware(cfg *Config) *Middleware {
	var m Middleware
	m.cfg.Store(cfg.Clone())
	return &m
}

// Reconfigure swaps m's policy for cfg.
// If cfg is nil, it turns m into a passthrough middleware.
func (m *Middleware) Reconfigure(cfg *Config) {
	m.cfg.Store(cfg.Clone())
}

// Config returns a copy of m's current policy,
// or nil if m is a passthrough middleware.
func (m *Middleware) Config() *Config {
	return m.cfg.Load().Clone()
}

// Wrap applies the CORS middleware to the specified handler.
//
// The resulting handler short-circuits CORS-preflight requests from
// allowed origins with a 405 (Method Not Allowed) status and the
// applicable CORS response headers; it attaches those headers to the
// responses of other CORS requests from allowed origins and otherwise
// leaves requests and responses untouched.
func (m *Middleware) Wrap(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := m.cfg.Load()
		if cfg == nil { // passthrough middleware
			h.ServeHTTP(w, r)
			return
		}
		d := cfg.EvaluateRequest(r)
		if !d.IsCORS {
			h.ServeHTTP(w, r)
			return
		}
		resHdrs := w.Header()
		if cfg.origins.IsExact() {
			// When a single origin is allowed, the response depends on
			// the request's Origin header; Web caches need to know.
			// See https://fetch.spec.whatwg.org/#cors-protocol-and-http-caches.
			//
			// Note that we must add rather than set a Vary header here,
			// because outer middleware may have already added/set a
			// Vary header, which we wouldn't want to clobber.
			resHdrs.Add(headers.Vary, headers.Origin)
		}
		// d.Headers is freshly allocated for each request, so copying
		// its entries does not share any mutable state across requests.
		maps.Copy(resHdrs, d.Headers)
		if d.IsPreflight {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, r)
	})
}
