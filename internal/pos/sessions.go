package pos

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out one Session per operator terminal, keyed by an
// opaque id. Sessions share nothing with each other.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	store    TransactionStore
}

func NewRegistry(store TransactionStore) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

func (r *Registry) Create() (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	s := NewSession(r.store)
	r.sessions[id] = s
	return id, s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
