package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// CourseLister defines the interface that the service must implement.
type CourseLister interface {
	ListCourses(ctx context.Context, userID int64) ([]models.Course, error)
}

// NewDashboardHandler lists the courses of the logged in user.
func NewDashboardHandler(svc CourseLister, sess Sessioner, v Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		courses, err := svc.ListCourses(r.Context(), userID)
		if err != nil {
			writeError(w, r, err, http.StatusBadRequest)
			return
		}

		render(w, r, sess, v, views.PageDashboard, views.Page{
			Authenticated: true,
			Courses:       courses,
		})
	}
}
