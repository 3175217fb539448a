package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
)

// LessonReadRepository reads lessons. Callers must have verified that the
// acting user owns the parent course.
type LessonReadRepository struct {
	db      *sqlx.DB
	getConn ConnGetter
}

func NewLessonReadRepository(db *sqlx.DB, getConn ConnGetter) *LessonReadRepository {
	return &LessonReadRepository{db: db, getConn: getConn}
}

// ListByCourseID returns the lessons of a course ordered by date.
func (r *LessonReadRepository) ListByCourseID(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	const query = `
		SELECT id, course_id, title, topic, COALESCE(date, '') AS date,
		       private_notes, COALESCE(status, 'Planned') AS status
		FROM lessons
		WHERE course_id = ?
		ORDER BY date, id
	`

	q, err := executor(ctx, r.db, r.getConn)
	if err != nil {
		return nil, err
	}

	lessons := []models.Lesson{}
	err = sqlx.SelectContext(ctx, q, &lessons, q.Rebind(query), courseID)
	logQuery(query, []any{courseID}, len(lessons), err)

	if err != nil {
		return nil, err
	}
	return lessons, nil
}

// LessonWriteRepository creates lessons.
type LessonWriteRepository struct {
	db      *sqlx.DB
	getConn ConnGetter
}

func NewLessonWriteRepository(db *sqlx.DB, getConn ConnGetter) *LessonWriteRepository {
	return &LessonWriteRepository{db: db, getConn: getConn}
}

// Save inserts lesson and returns the new id. An empty status is stored as Planned.
func (r *LessonWriteRepository) Save(ctx context.Context, lesson *models.Lesson) (int64, error) {
	const query = `
		INSERT INTO lessons (course_id, title, topic, date, private_notes, status)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	status := lesson.Status
	if status == "" {
		status = models.LessonStatusPlanned
	}
	args := []any{lesson.CourseID, lesson.Title, lesson.Topic, lesson.Date, lesson.PrivateNotes, status}

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
