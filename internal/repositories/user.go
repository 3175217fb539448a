package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/database"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
)

// UserReadRepository reads users.
type UserReadRepository struct {
	db      *sqlx.DB
	getConn ConnGetter
}

func NewUserReadRepository(db *sqlx.DB, getConn ConnGetter) *UserReadRepository {
	return &UserReadRepository{db: db, getConn: getConn}
}

// GetByUsername returns the user with the given name, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, hash
		FROM users
		WHERE username = ?
	`
	return r.get(ctx, query, username)
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, hash
		FROM users
		WHERE id = ?
	`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	q, err := executor(ctx, r.db, r.getConn)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = sqlx.GetContext(ctx, q, &user, q.Rebind(query), arg)
	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository creates users.
type UserWriteRepository struct {
	db      *sqlx.DB
	getConn ConnGetter
}

func NewUserWriteRepository(db *sqlx.DB, getConn ConnGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, getConn: getConn}
}

// Save inserts a user and returns its id. A taken username yields an error
// wrapping database.ErrUniqueViolation; existing rows are never overwritten.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, hash)
		VALUES (?, ?)
		RETURNING id
	`

	q, err := executor(ctx, r.db, r.getConn)
	if err != nil {
		return 0, err
	}

	var id int64
	err = q.QueryRowxContext(ctx, q.Rebind(query), username, passwordHash).Scan(&id)

	// The hash is deliberately left out of the log.
	logQuery(query, []any{username}, id, err)

	if database.IsUniqueViolation(err) {
		return 0, fmt.Errorf("%w: username %q", database.ErrUniqueViolation, username)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
