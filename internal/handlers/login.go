package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (int64, error)
}

// NewLoginHandler forgets any current session, then shows the login form or
// authenticates the submitted credentials. Every failure is a 403.
func NewLoginHandler(svc Loginer, sess Sessioner, v Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sess.Clear(w, r); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			render(w, r, sess, v, views.PageLogin, views.Page{})
			return
		}
		if !parseForm(w, r) {
			return
		}

		userID, err := svc.Login(r.Context(), models.LoginRequest{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		})
		if err != nil {
			writeError(w, r, err, http.StatusForbidden)
			return
		}

		if err := sess.Start(w, r, userID); err != nil {
			logger.Log.Errorw("failed to start session", "user_id", userID, "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
