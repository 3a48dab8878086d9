package repository

import (
	"context"

	"monitoring/internal/domain/entity"
)

// ChatRepository is an opaque archive of chat messages keyed by their generated ID.
type ChatRepository interface {
	// Append stores a message. The message ID must already be set.
	Append(ctx context.Context, message *entity.ChatMessage) error

	// ListAll returns every archived message, oldest first.
	ListAll(ctx context.Context) ([]*entity.ChatMessage, error)
}
