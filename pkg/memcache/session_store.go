package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"easytrip/internal/models/response_models"
)

// Session is the in-memory record of one conversation. It is created lazily
// on the first turn for an unseen key and mutated on every turn. Turns for
// the same key are assumed to arrive one at a time; the store itself is
// goroutine-safe, individual sessions are not.
type Session struct {
	ID      string
	Mode    string // "", "itinerary", "destinations", "support"
	History []string

	Origin        string
	Destination   string
	Vibe          string
	SceneTags     string
	Goals         string
	Accommodation string
	MovieWord     string

	ExpectingOrigin      bool
	ExpectingTravelStyle bool
	ExpectingRefine      string // which refinement answer the next turn carries
	RefineStep           int
	AskedAnother         bool
	Ready                bool
	Ended                bool

	Result            *response_models.ItineraryDocument
	PendingSuggestion *response_models.PendingSuggestion
	PendingAddition   *response_models.PendingAddition
}

type SessionStore interface {
	// GetOrCreate returns the session for key, creating a fresh one when the
	// key is unseen. The second result reports whether it was just created.
	GetOrCreate(key string) (*Session, bool)

	Get(key string) (*Session, bool)

	// Put refreshes the session's eviction deadline. Sessions are stored by
	// pointer, so field mutations are visible without calling Put.
	Put(key string, session *Session)
}

type sessionStore struct {
	cache *gocache.Cache
}

// NewSessionStore builds a store whose entries expire after ttl of
// inactivity. Idle-session eviction bounds memory for the process lifetime.
func NewSessionStore(ttl time.Duration) SessionStore {
	return &sessionStore{
		cache: gocache.New(ttl, ttl/2),
	}
}

func (s *sessionStore) GetOrCreate(key string) (*Session, bool) {
	if existing, ok := s.Get(key); ok {
		return existing, false
	}
	session := &Session{ID: key}
	s.cache.SetDefault(key, session)
	return session, true
}

func (s *sessionStore) Get(key string) (*Session, bool) {
	value, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	return value.(*Session), true
}

func (s *sessionStore) Put(key string, session *Session) {
	s.cache.SetDefault(key, session)
}
