package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKeyRequestID struct{}

const requestIDHeader = "X-Request-Id"

// RequestIDFromContext returns the request id, or "" outside a request scope.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return v
}

// RequestID assigns every request an id, reusing the incoming header if set.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, rid)
			ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
