// Package session binds authenticated users to browser sessions on top of
// gorilla/sessions stores.
package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

const userIDKey = "user_id"

// Manager reads and writes the session named name in store.
type Manager struct {
	store sessions.Store
	name  string
}

// NewManager creates a new Manager instance.
func NewManager(store sessions.Store, name string) *Manager {
	return &Manager{store: store, name: name}
}

// Start discards any session the request carries and issues a new one
// holding only userID. The new session never reuses the previous id.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request, userID int64) error {
	if err := m.Clear(w, r); err != nil {
		return err
	}

	// New rather than Get: the registry still holds the cleared session.
	session, err := m.store.New(r, m.name)
	if err != nil {
		logger.Log.Debugw("previous session not restored", "err", err)
	}
	session.ID = ""
	session.IsNew = true
	session.Values = map[interface{}]interface{}{userIDKey: userID}

	return m.store.Save(r, w, session)
}

// Clear removes the session record and expires the cookie. It is a no-op
// for requests without a session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	if _, err := r.Cookie(m.name); errors.Is(err, http.ErrNoCookie) {
		return nil
	}

	session, err := m.store.Get(r, m.name)
	if err != nil {
		logger.Log.Debugw("clearing undecodable session", "err", err)
	}
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1

	return m.store.Save(r, w, session)
}

// UserID returns the id of the user bound to the request's session.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, m.name)
	if err != nil || session.IsNew {
		return 0, false
	}
	id, ok := session.Values[userIDKey].(int64)
	return id, ok
}

// AddFlash queues a message to be shown on the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		logger.Log.Debugw("flash on fresh session", "err", err)
	}
	session.AddFlash(msg)
	return m.store.Save(r, w, session)
}

// Flashes returns and removes the queued messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		logger.Log.Debugw("no flashes on undecodable session", "err", err)
		return nil, nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	if err := m.store.Save(r, w, session); err != nil {
		return nil, err
	}

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs, nil
}
