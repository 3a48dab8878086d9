package impl

import (
	"context"
	"time"

	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/repository"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type chatArchiveService struct {
	chatRepo repository.ChatRepository
	now      func() time.Time
}

// NewChatArchiveService creates a new chat archive service instance
func NewChatArchiveService(chatRepo repository.ChatRepository) usecase.ChatArchiveUsecase {
	return &chatArchiveService{
		chatRepo: chatRepo,
		now:      time.Now,
	}
}

// Append archives a message under a newly generated ID
func (s *chatArchiveService) Append(ctx context.Context, input *usecase.ChatMessageInput) (*entity.ChatMessage, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate message ID")
	}

	message := &entity.ChatMessage{
		ID:       id,
		Sender:   input.Sender,
		Receiver: input.Receiver,
		Content:  input.Content,
		SentAt:   s.now().UTC(),
	}

	if err := s.chatRepo.Append(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to append chat message")
	}

	return message, nil
}

// ListAll returns every archived message
func (s *chatArchiveService) ListAll(ctx context.Context) ([]*entity.ChatMessage, error) {
	messages, err := s.chatRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return messages, nil
}
