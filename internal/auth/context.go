package auth

import (
	"context"
	"net/http"

	"google.golang.org/grpc/metadata"
)

type ctxKey int

const userKey ctxKey = iota

const (
	UserHeader   = "X-User-Id"
	UserMetadata = "x-user-id"
)

// WithUser returns a context carrying the caller identity recorded on writes.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// GetUserID returns the caller identity set by the transport middleware,
// falling back to incoming gRPC metadata. Empty when the caller is anonymous.
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(userKey).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(UserMetadata); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// Middleware copies the identity header of HTTP requests into the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := r.Header.Get(UserHeader); user != "" {
			r = r.WithContext(WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}
