package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one customer conversation. SessionKey is the caller-chosen
// identifier; CustomerType is the last archetype classified for the session.
type ChatSession struct {
	Id           uuid.UUID
	SessionKey   string
	CustomerType string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
