package memory

import (
	"context"
	"sync"

	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/repository"
)

type chatRepository struct {
	mu       sync.RWMutex
	messages []entity.ChatMessage
}

// NewChatRepository creates an empty in-memory chat archive.
func NewChatRepository() repository.ChatRepository {
	return &chatRepository{}
}

// Append stores a copy of the message.
func (repo *chatRepository) Append(_ context.Context, message *entity.ChatMessage) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.messages = append(repo.messages, *message)

	return nil
}

// ListAll returns copies of every message in append order.
func (repo *chatRepository) ListAll(_ context.Context) ([]*entity.ChatMessage, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	messages := make([]*entity.ChatMessage, 0, len(repo.messages))
	for idx := range repo.messages {
		message := repo.messages[idx]
		messages = append(messages, &message)
	}

	return messages, nil
}
