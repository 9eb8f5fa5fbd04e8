package ioweb

import (
	"net/http"
	"sync"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/selection"
	"github.com/google/uuid"
)

const sessionCookie = "emodeldb_session"

// session holds the per-user state that survives between requests: the
// selection. Filters live in the URL so they are bookmarkable. The mutex
// also serializes exports within one session.
type session struct {
	mu  sync.Mutex
	sel *selection.Selection
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (st *sessionStore) get(id string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		return s
	}
	s := &session{sel: selection.New()}
	st.sessions[id] = s
	return s
}

// ensureSession returns the session of the request, creating a new one
// (and setting its cookie) for first-time visitors.
func (s *Server) ensureSession(
	w http.ResponseWriter,
	r *http.Request,
) *session {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return s.sessions.get(c.Value)
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.sessions.get(id)
}
