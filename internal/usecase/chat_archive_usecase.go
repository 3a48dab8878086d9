package usecase

import (
	"context"

	"monitoring/internal/domain/entity"
)

// ChatMessageInput is the content of a chat message to archive.
type ChatMessageInput struct {
	Sender   string
	Receiver string
	Content  string
}

// ChatArchiveUsecase stores and lists chat messages without interpreting them.
type ChatArchiveUsecase interface {
	// Append archives a message under a newly generated ID.
	Append(ctx context.Context, input *ChatMessageInput) (*entity.ChatMessage, error)

	// ListAll returns every archived message.
	ListAll(ctx context.Context) ([]*entity.ChatMessage, error)
}
