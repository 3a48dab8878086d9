package postgres

import (
	"context"

	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/domain/repository"
	"monitoring/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Append stores a chat message.
func (repo *chatRepository) Append(ctx context.Context, message *entity.ChatMessage) error {
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Create(fromChatMessageDomain(message)).Error; err != nil {
		return classifyWriteError(err, "failed to append chat message")
	}

	return nil
}

// ListAll returns every stored chat message in send order.
func (repo *chatRepository) ListAll(ctx context.Context) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Order("sent_at ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list chat messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.ChatMessage{
			ID:       messageM.ID,
			Sender:   messageM.Sender,
			Receiver: messageM.Receiver,
			Content:  messageM.Content,
			SentAt:   messageM.SentAt,
		})
	}

	return messages, nil
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	return &model.ChatMessageModel{
		ID:       data.ID,
		Sender:   data.Sender,
		Receiver: data.Receiver,
		Content:  data.Content,
		SentAt:   data.SentAt,
	}
}
