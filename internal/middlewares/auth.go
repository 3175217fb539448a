package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

// SessionReader resolves the user bound to the request's session.
type SessionReader interface {
	UserID(r *http.Request) (int64, bool)
}

type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// RequireSession returns a middleware that lets through only requests with
// an active session and redirects everything else to the login page.
// The user id is put into the request context for the handlers.
func RequireSession(reader SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := reader.UserID(r)
			if !ok {
				logger.Log.Debugw("no active session", "uri", r.RequestURI)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user id stored by RequireSession.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
