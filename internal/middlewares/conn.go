package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

// ConnMiddleware scopes a database connection to each request. The connection
// is acquired on first use through GetConnFromContext and released when the
// request ends, whether the handler returns or panics.
func ConnMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := &connScope{db: db}
			defer scope.release()

			ctx := context.WithValue(r.Context(), connKey, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type connKeyType struct{}

var connKey = connKeyType{}

// connScope holds the lazily acquired connection of a single request.
// A request is served by one goroutine, so no locking is needed.
type connScope struct {
	db   *sqlx.DB
	conn *sqlx.Conn
}

func (s *connScope) acquire(ctx context.Context) (*sqlx.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.db.Connx(ctx)
	if err != nil {
		logger.Log.Errorw("failed to acquire connection", "error", err)
		return nil, err
	}
	s.conn = conn
	return conn, nil
}

func (s *connScope) release() {
	if s.conn == nil {
		return
	}
	if err := s.conn.Close(); err != nil {
		logger.Log.Errorw("failed to release connection", "error", err)
	}
	s.conn = nil
}

// GetConnFromContext returns the connection scoped to the request carried by
// ctx, acquiring it on first call. It returns nil and no error when ctx does
// not belong to a request wrapped by ConnMiddleware.
func GetConnFromContext(ctx context.Context) (*sqlx.Conn, error) {
	scope, ok := ctx.Value(connKey).(*connScope)
	if !ok {
		return nil, nil
	}
	return scope.acquire(ctx)
}
