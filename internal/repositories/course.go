package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
)

// CourseReadRepository reads courses. Every query is scoped to an owner.
type CourseReadRepository struct {
	db      *sqlx.DB
	getConn ConnGetter
}

func NewCourseReadRepository(db *sqlx.DB, getConn ConnGetter) *CourseReadRepository {
	return &CourseReadRepository{db: db, getConn: getConn}
}

// ListByUserID returns all courses owned by userID in creation order.
func (r *CourseReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Course, error) {
	const query = `
		SELECT id, user_id, name, description, weekdays, time, mode, platform
		FROM courses
		WHERE user_id = ?
		ORDER BY id
	`

	q, err := executor(ctx, r.db, r.getConn)
	if err != nil {
		return nil, err
	}

	courses := []models.Course{}
	err = sqlx.SelectContext(ctx, q, &courses, q.Rebind(query), userID)
	logQuery(query, []any{userID}, len(courses), err)

	if err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByIDAndUserID returns the course only if it exists and belongs to userID.
// A course owned by someone else is reported exactly like a missing one: nil.
func (r *CourseReadRepository) GetByIDAndUserID(ctx context.Context, courseID, userID int64) (*models.Course, error) {
	const query = `
		SELECT id, user_id, name, description, weekdays, time, mode, platform
		FROM courses
		WHERE id = ? AND user_id = ?
	`

	q, err := executor(ctx, r.db, r.getConn)
	if err != nil {
		return nil, err
	}

	var course models.Course
	err = sqlx.GetContext(ctx, q, &course, q.Rebind(query), courseID, userID)
	logQuery(query, []any{courseID, userID}, course.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseWriteRepository creates courses.
type CourseWriteRepository struct {
	db      *sqlx.DB
	getConn ConnGetter
}

func NewCourseWriteRepository(db *sqlx.DB, getConn ConnGetter) *CourseWriteRepository {
	return &CourseWriteRepository{db: db, getConn: getConn}
}

// Save inserts course and returns the new id.
func (r *CourseWriteRepository) Save(ctx context.Context, course *models.Course) (int64, error) {
	const query = `
		INSERT INTO courses (user_id, name, description, weekdays, time, mode, platform)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{
		course.UserID, course.Name, course.Description,
		course.Weekdays, course.Time, course.Mode, course.Platform,
	}

	q, err := executor(ctx, r.db, r.getConn)
	if err != nil {
		return 0, err
	}

	var id int64
	err = q.QueryRowxContext(ctx, q.Rebind(query), args...).Scan(&id)
	logQuery(query, args, id, err)

	if err != nil {
		return 0, err
	}
	return id, nil
}
