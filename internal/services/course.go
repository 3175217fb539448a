package services

//go:generate mockgen -source=course.go -destination=course_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
)

// CourseReader defines owner-scoped reads of courses.
type CourseReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Course, error)
	GetByIDAndUserID(ctx context.Context, courseID int64, userID int64) (*models.Course, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, course *models.Course) (int64, error)
}

// LessonReader defines read-only operations for lessons.
type LessonReader interface {
	ListByCourseID(ctx context.Context, courseID int64) ([]models.Lesson, error)
}

// LessonWriter defines write operations for lessons.
type LessonWriter interface {
	Save(ctx context.Context, lesson *models.Lesson) (int64, error)
}

// CourseService manages courses and their lessons on behalf of a user.
// Every method takes the acting user's id explicitly.
type CourseService struct {
	courseReader CourseReader
	courseWriter CourseWriter
	lessonReader LessonReader
	lessonWriter LessonWriter
}

// NewCourseService creates a new CourseService instance.
func NewCourseService(
	courseReader CourseReader,
	courseWriter CourseWriter,
	lessonReader LessonReader,
	lessonWriter LessonWriter,
) *CourseService {
	return &CourseService{
		courseReader: courseReader,
		courseWriter: courseWriter,
		lessonReader: lessonReader,
		lessonWriter: lessonWriter,
	}
}

// ListCourses returns the courses owned by userID.
func (svc *CourseService) ListCourses(ctx context.Context, userID int64) ([]models.Course, error) {
	courses, err := svc.courseReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "user_id", userID, "err", err)
		return nil, err
	}
	return courses, nil
}

// CreateCourse validates req and stores a course owned by userID.
func (svc *CourseService) CreateCourse(ctx context.Context, userID int64, req models.CreateCourseRequest) (int64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	courseID, err := svc.courseWriter.Save(ctx, &models.Course{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Weekdays:    req.Weekdays,
		Time:        req.Time,
		Mode:        req.Mode,
		Platform:    req.Platform,
	})
	if err != nil {
		logger.Log.Errorw("failed to save course", "user_id", userID, "err", err)
		return 0, err
	}

	return courseID, nil
}

// GetOwnedCourse returns the course if userID owns it. Missing and foreign
// courses are both reported as ErrCourseNotFound.
func (svc *CourseService) GetOwnedCourse(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	course, err := svc.courseReader.GetByIDAndUserID(ctx, courseID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "user_id", userID, "err", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// GetCourse returns an owned course together with its lessons ordered by date.
func (svc *CourseService) GetCourse(ctx context.Context, userID, courseID int64) (*models.Course, []models.Lesson, error) {
	course, err := svc.GetOwnedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, nil, err
	}

	lessons, err := svc.lessonReader.ListByCourseID(ctx, course.ID)
	if err != nil {
		logger.Log.Errorw("failed to list lessons", "course_id", course.ID, "err", err)
		return nil, nil, err
	}

	return course, lessons, nil
}

// AddLesson stores a planned lesson under an owned course. Ownership is
// checked before the form is validated.
func (svc *CourseService) AddLesson(ctx context.Context, userID, courseID int64, req models.AddLessonRequest) (int64, error) {
	course, err := svc.GetOwnedCourse(ctx, userID, courseID)
	if err != nil {
		return 0, err
	}

	if err := validateRequest(req); err != nil {
		return 0, err
	}

	lessonID, err := svc.lessonWriter.Save(ctx, &models.Lesson{
		CourseID:     course.ID,
		Title:        req.Title,
		Topic:        req.Topic,
		Date:         req.Date,
		PrivateNotes: req.PrivateNotes,
		Status:       models.LessonStatusPlanned,
	})
	if err != nil {
		logger.Log.Errorw("failed to save lesson", "course_id", course.ID, "err", err)
		return 0, err
	}

	return lessonID, nil
}
