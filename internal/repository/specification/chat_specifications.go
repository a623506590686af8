package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionKey filters chat sessions by their caller-chosen key
type BySessionKey struct {
	SessionKey string
}

func (s BySessionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_key = ?", s.SessionKey)
}

// BySessionId filters messages or recommendations to one session
type BySessionId struct {
	SessionId uuid.UUID
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

// OldestFirst orders by creation time ascending, conversation order
type OldestFirst struct{}

func (s OldestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
