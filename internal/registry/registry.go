package registry

import (
	"errors"
	"sync"
	"time"

	"interviewflow/internal/model"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry is the in-memory session store. Sessions live for the
// process lifetime; there is no eviction or expiry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*model.Session),
	}
}

// Create registers a new session with a fresh id and the given fixed
// question sequence.
func (r *Registry) Create(role string, questions []model.Question) *model.Session {
	session := &model.Session{
		ID:        uuid.New().String(),
		Role:      role,
		Questions: questions,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

// Get returns the session for id, or ErrSessionNotFound.
func (r *Registry) Get(id string) (*model.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
