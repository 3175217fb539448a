package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		topic TEXT,
		date TEXT,
		private_notes TEXT,
		status TEXT DEFAULT 'Planned',
		FOREIGN KEY(course_id) REFERENCES courses(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_user_id ON courses(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lessons_course_id ON lessons(course_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		id BIGSERIAL PRIMARY KEY,
		course_id BIGINT NOT NULL REFERENCES courses(id),
		title TEXT NOT NULL,
		topic TEXT,
		date TEXT,
		private_notes TEXT,
		status TEXT DEFAULT 'Planned'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_user_id ON courses(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lessons_course_id ON lessons(course_id)`,
}

// courseColumns were added to courses after the first release.
var courseColumns = []struct {
	name string
	typ  string
}{
	{"weekdays", "TEXT"},
	{"time", "TEXT"},
	{"mode", "TEXT"},
	{"platform", "TEXT"},
}

// Migrate creates the schema and adds any missing columns.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if err := CreateSchema(ctx, db); err != nil {
		return err
	}
	added, err := AddMissingColumns(ctx, db)
	if err != nil {
		return err
	}
	if len(added) > 0 {
		logger.Log.Infow("added columns", "table", "courses", "columns", added)
	}
	return nil
}

// CreateSchema creates the users, courses and lessons tables if they do not exist.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case DriverSQLite:
		stmts = sqliteSchema
	case DriverPostgres:
		stmts = postgresSchema
	default:
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// AddMissingColumns adds the optional course columns that are not present yet
// and returns the names of the columns it added. A column that cannot be
// added is logged and skipped.
func AddMissingColumns(ctx context.Context, db *sqlx.DB) ([]string, error) {
	existing, err := tableColumns(ctx, db, "courses")
	if err != nil {
		return nil, err
	}

	var added []string
	for _, col := range courseColumns {
		if existing[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE courses ADD COLUMN %s %s", col.name, col.typ)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Warnw("failed to add column", "table", "courses", "column", col.name, "error", err)
			continue
		}
		added = append(added, col.name)
	}
	return added, nil
}

func tableColumns(ctx context.Context, db *sqlx.DB, table string) (map[string]bool, error) {
	var query string
	switch db.DriverName() {
	case DriverSQLite:
		query = `SELECT name FROM pragma_table_info(?)`
	case DriverPostgres:
		query = `SELECT column_name FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = ?`
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	var names []string
	if err := db.SelectContext(ctx, &names, db.Rebind(query), table); err != nil {
		return nil, fmt.Errorf("list columns of %s: %w", table, err)
	}

	columns := make(map[string]bool, len(names))
	for _, n := range names {
		columns[n] = true
	}
	return columns, nil
}
