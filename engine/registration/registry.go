package registration

import "sync"

type sessionEntry struct {
	mu      sync.Mutex
	session *Session
}

// Registry owns session lifecycle and enforces per-session mutual
// exclusion: two concurrent turns for the same session id run serially,
// while turns for distinct ids proceed in parallel. Sessions are created
// lazily and live for the life of the process; there is no eviction.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*sessionEntry)}
}

func (r *Registry) entry(id string) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		e = &sessionEntry{session: NewSession(id)}
		r.entries[id] = e
	}
	return e
}

// Do runs fn with exclusive access to the session for id, creating the
// session on first reference. The session must not escape fn.
func (r *Registry) Do(id string, fn func(*Session)) {
	e := r.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Len reports how many sessions exist.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
