package memory

import (
	"time"

	"github.com/harshil12345000/certifyr-sub001/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live conversation state in process memory.
// Expired sessions are rebuilt empty on the next turn; the database
// copy of the chat history is the durable record.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for an hour are dropped, sweep every 10 minutes
	return &SessionRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
