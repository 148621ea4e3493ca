package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/logging"
)

// session is one browser's state: the collection it loaded.
type session struct {
	mu         sync.Mutex // serializes the lazy load
	collection *core.Collection
	lastSeen   time.Time
}

// sessionStore maps session IDs to sessions. Its mutex guards the map and
// lastSeen only; loaded collections are read-only.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// newSessionStore starts a janitor that drops sessions idle for longer
// than ttl.
func newSessionStore(ttl time.Duration) *sessionStore {
	st := &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go st.janitor(janitorInterval(ttl))
	return st
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	return interval
}

// get returns the session for id, creating it if needed, and marks it used.
func (st *sessionStore) get(id string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		sess = &session{}
		st.sessions[id] = sess
	}
	sess.lastSeen = st.now()
	return sess
}

// drop forgets the session so its next request reloads the collection.
func (st *sessionStore) drop(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// len reports the number of live sessions.
func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// sweep removes sessions idle past the TTL and returns how many it removed.
func (st *sessionStore) sweep() int {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *sessionStore) janitor(interval time.Duration) {
	defer close(st.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			if n := st.sweep(); n > 0 {
				logging.WithFields(context.Background(), "component", "sessions").Debug("expired sessions", "count", n)
			}
		}
	}
}

// close stops the janitor and waits for it to exit.
func (st *sessionStore) close() {
	st.once.Do(func() { close(st.stop) })
	<-st.done
}

// withSession makes sure every request carries a session cookie and puts
// the session ID in the request context for handlers and logs.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := s.cfg.Session.CookieName

		id := ""
		if c, err := r.Cookie(name); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     name,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(logging.WithSession(r.Context(), id)))
	})
}
