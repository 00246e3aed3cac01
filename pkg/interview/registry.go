package interview

import (
	"sync"
	"time"

	"ai-interview-be/internal/pkg/logger"
)

// Registry tracks live interview sessions with a capacity cap and an idle
// TTL. It is constructed once in the container and injected wherever
// sessions are needed.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*State

	maxSessions  int
	ttl          time.Duration
	maxQuestions int
	historyLimit int

	log logger.ILogger
}

func NewRegistry(maxSessions int, ttl time.Duration, maxQuestions, historyLimit int, log logger.ILogger) *Registry {
	return &Registry{
		sessions:     make(map[string]*State),
		maxSessions:  maxSessions,
		ttl:          ttl,
		maxQuestions: maxQuestions,
		historyLimit: historyLimit,
		log:          log,
	}
}

// CreateSession registers a fresh State under sessionID. Expired sessions
// are swept first; if the registry is still at capacity, the oldest
// sessions are evicted until the new one fits.
func (r *Registry) CreateSession(sessionID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	// 1. Sweep idle sessions past their TTL
	for id, s := range r.sessions {
		if s.ExpiredAt(now, r.ttl) {
			delete(r.sessions, id)
			r.log.Info("Registry", "Evicted expired session", map[string]interface{}{"session_id": id})
		}
	}

	// 2. Evict oldest until the new session fits under the cap
	for len(r.sessions) >= r.maxSessions {
		oldestID := ""
		var oldestStart time.Time
		for id, s := range r.sessions {
			if oldestID == "" || s.StartedAt.Before(oldestStart) {
				oldestID = id
				oldestStart = s.StartedAt
			}
		}
		if oldestID == "" {
			break
		}
		delete(r.sessions, oldestID)
		r.log.Warn("Registry", "Evicted oldest session at capacity", map[string]interface{}{
			"session_id": oldestID,
			"capacity":   r.maxSessions,
		})
	}

	state := NewState(sessionID, r.maxQuestions, r.historyLimit)
	r.sessions[sessionID] = state
	return state
}

// GetSession returns the State for sessionID if it exists and has not
// expired. An expired session is evicted on access.
func (r *Registry) GetSession(sessionID string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if s.ExpiredAt(time.Now(), r.ttl) {
		delete(r.sessions, sessionID)
		r.log.Info("Registry", "Evicted expired session on access", map[string]interface{}{"session_id": sessionID})
		return nil, false
	}
	return s, true
}

// RemoveSession drops the session if present. Removing an unknown id is
// not an error.
func (r *Registry) RemoveSession(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
