package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

// NewLogoutHandler forgets the session and redirects to the login page.
func NewLogoutHandler(sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sess.Clear(w, r); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
