package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// CourseCreator defines the interface that the service must implement.
type CourseCreator interface {
	CreateCourse(ctx context.Context, userID int64, req models.CreateCourseRequest) (int64, error)
}

// NewCreateCourseHandler shows the new class form and creates classes owned
// by the logged in user.
func NewCreateCourseHandler(svc CourseCreator, sess Sessioner, v Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		if r.Method != http.MethodPost {
			render(w, r, sess, v, views.PageCreateClass, views.Page{Authenticated: true})
			return
		}
		if !parseForm(w, r) {
			return
		}

		_, err := svc.CreateCourse(r.Context(), userID, models.CreateCourseRequest{
			Name:        r.PostForm.Get("name"),
			Description: optional(r, "description"),
			Weekdays:    optional(r, "weekdays"),
			Time:        optional(r, "time"),
			Mode:        optional(r, "mode"),
			Platform:    optional(r, "platform"),
		})
		if err != nil {
			writeError(w, r, err, http.StatusBadRequest)
			return
		}

		if err := sess.AddFlash(w, r, "Class created successfully!"); err != nil {
			logger.Log.Errorw("failed to add flash", "err", err)
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
