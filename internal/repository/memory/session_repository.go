package memory

import (
	"time"

	"smartbyte-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionCache keeps hot chat sessions in process memory keyed by session
// key, saving a database round trip on every turn of an active conversation.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Sessions idle for an hour fall out; expired entries purge every 10
	// minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionCache{
		cache: c,
	}
}

func (r *SessionCache) Save(session *entity.ChatSession) {
	r.cache.Set(session.SessionKey, session, cache.DefaultExpiration)
}

func (r *SessionCache) Get(sessionKey string) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *SessionCache) Delete(sessionKey string) {
	r.cache.Delete(sessionKey)
}
