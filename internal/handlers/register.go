package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)
}

// NewRegisterHandler shows the registration form and creates accounts.
// A successful registration logs the new user in and redirects home.
func NewRegisterHandler(svc Registerer, sess Sessioner, v Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			render(w, r, sess, v, views.PageRegister, views.Page{})
			return
		}
		if !parseForm(w, r) {
			return
		}

		userID, err := svc.Register(r.Context(), models.RegisterRequest{
			Username:     r.PostForm.Get("username"),
			Password:     r.PostForm.Get("password"),
			Confirmation: r.PostForm.Get("confirmation"),
		})
		if err != nil {
			writeError(w, r, err, http.StatusBadRequest)
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
