package handlers

//go:generate mockgen -destination=mock.go -package=handlers . Registerer,Loginer,Sessioner,CourseLister,CourseCreator,CourseViewer,LessonAdder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-lesson-planner/internal/services"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// CourseIDParam is the URL parameter holding the course id.
const CourseIDParam = "courseID"

// Sessioner defines the session operations the handlers need.
type Sessioner interface {
	Start(w http.ResponseWriter, r *http.Request, userID int64) error
	Clear(w http.ResponseWriter, r *http.Request) error
	AddFlash(w http.ResponseWriter, r *http.Request, msg string) error
	Flashes(w http.ResponseWriter, r *http.Request) ([]string, error)
}

// Renderer writes an HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page views.Page) error
}

// render attaches the pending flash messages to page and writes it with 200.
func render(w http.ResponseWriter, r *http.Request, sess Sessioner, v Renderer, name string, page views.Page) {
	flashes, err := sess.Flashes(w, r)
	if err != nil {
		logger.Log.Errorw("failed to read flashes", "err", err)
	}
	page.Flashes = flashes

	if err := v.Render(w, http.StatusOK, name, page); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeError answers with the status matching err. Validation failures use
// validationStatus.
func writeError(w http.ResponseWriter, r *http.Request, err error, validationStatus int) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Message, validationStatus)
	case errors.Is(err, services.ErrInvalidCredentials):
		http.Error(w, "invalid username and/or password", http.StatusForbidden)
	case errors.Is(err, services.ErrUserAlreadyExists):
		http.Error(w, "username taken", http.StatusBadRequest)
	case errors.Is(err, services.ErrCourseNotFound):
		http.Error(w, "Course not found", http.StatusNotFound)
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"err", err,
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// parseForm parses the request body and reports a 400 when it is malformed.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// optional returns the submitted value of key, or nil when the field was
// not submitted at all.
func optional(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// currentUserID returns the acting user, redirecting to login when the request did
// not pass through the session gate.
func currentUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
	}
	return id, ok
}

// parseCourseID parses the course id from the URL. Anything but an integer is
// answered with 404.
func parseCourseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, CourseIDParam), 10, 64)
	if err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}
