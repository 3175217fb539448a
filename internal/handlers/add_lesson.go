package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// LessonAdder defines the interface that the service must implement.
type LessonAdder interface {
	GetOwnedCourse(ctx context.Context, userID, courseID int64) (*models.Course, error)
	AddLesson(ctx context.Context, userID, courseID int64, req models.AddLessonRequest) (int64, error)
}

// NewAddLessonHandler shows the lesson form of an owned course and adds
// lessons to it.
func NewAddLessonHandler(svc LessonAdder, sess Sessioner, v Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		courseID, ok := parseCourseID(w, r)
		if !ok {
			return
		}

		if r.Method != http.MethodPost {
			course, err := svc.GetOwnedCourse(r.Context(), userID, courseID)
			if err != nil {
				writeError(w, r, err, http.StatusBadRequest)
				return
			}
			render(w, r, sess, v, views.PageAddLesson, views.Page{
				Authenticated: true,
				Course:        course,
			})
			return
		}
		if !parseForm(w, r) {
			return
		}

		_, err := svc.AddLesson(r.Context(), userID, courseID, models.AddLessonRequest{
			Title:        r.PostForm.Get("title"),
			Date:         r.PostForm.Get("date"),
			Topic:        optional(r, "topic"),
			PrivateNotes: optional(r, "private_notes"),
		})
		if err != nil {
			writeError(w, r, err, http.StatusBadRequest)
			return
		}

		if err := sess.AddFlash(w, r, "Lesson added successfully!"); err != nil {
			logger.Log.Errorw("failed to add flash", "err", err)
		}
		http.Redirect(w, r, fmt.Sprintf("/course/%d", courseID), http.StatusFound)
	}
}
