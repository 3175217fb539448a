package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// CourseViewer defines the interface that the service must implement.
type CourseViewer interface {
	GetCourse(ctx context.Context, userID, courseID int64) (*models.Course, []models.Lesson, error)
}

// NewCourseHandler shows an owned course with its lessons. Courses of other
// users are answered exactly like missing ones.
func NewCourseHandler(svc CourseViewer, sess Sessioner, v Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		courseID, ok := parseCourseID(w, r)
		if !ok {
			return
		}

		course, lessons, err := svc.GetCourse(r.Context(), userID, courseID)
		if err != nil {
			writeError(w, r, err, http.StatusBadRequest)
			return
		}

		render(w, r, sess, v, views.PageCourse, views.Page{
			Authenticated: true,
			Course:        course,
			Lessons:       lessons,
		})
	}
}
