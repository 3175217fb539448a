package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

// ConnGetter returns the connection scoped to the current request.
// A nil connection with no error means the pool should be used.
type ConnGetter func(ctx context.Context) (*sqlx.Conn, error)

// querier is satisfied by both *sqlx.DB and *sqlx.Conn.
type querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	Rebind(query string) string
}

func executor(ctx context.Context, db *sqlx.DB, getConn ConnGetter) (querier, error) {
	if getConn != nil {
		conn, err := getConn(ctx)
		if err != nil {
			return nil, err
		}
		if conn != nil {
			return conn, nil
		}
	}
	return db, nil
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
