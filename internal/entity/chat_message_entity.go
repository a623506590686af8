package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn persisted on a session. Role follows the LLM
// convention: user, assistant or system.
type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
