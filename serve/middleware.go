package serve

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
)

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// NoopAdapter passes the request on untouched.
func NoopAdapter(h http.Handler) http.Handler { return h }

// Chain glues the set of adapters to the handler.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	// NOTE: loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// CORS sets "Access-Control-Allow" style headers on a response for requests from origin.
//
// If origin is blank, NoopAdapter returns and this middleware does nothing.
func CORS(origin string) Adapter {
	if origin == "" {
		return NoopAdapter
	}

	return handlers.CORS(
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		}),
	)
}

// RequestID stashes a new uuid as the navigation ID of the request.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), waymark.NavigationIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// LogRequest logs the request's method, requested URL and originating IP address
// using l.
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l logger.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data := map[string]any{"navigation_id": waymark.NavigationIDFromContext(r.Context())}
			if ip, ok := r.Context().Value(waymark.IPAddrKey).(string); ok {
				data["ip"] = ip
			}

			l.Info(r.Method+" "+r.URL.RequestURI(), &logger.LogContext{Data: data})
			h.ServeHTTP(w, r)
		})
	}
}
