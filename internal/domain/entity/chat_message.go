package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is an archived chat message. The archive stores it as-is.
type ChatMessage struct {
	ID       uuid.UUID `json:"id"`
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}
