package impl

import (
	"context"
	"testing"
	"time"

	"monitoring/internal/domain/entity"
	mockRepo "monitoring/internal/mocks/repository"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatArchiveService(t *testing.T) (*chatArchiveService, *mockRepo.MockChatRepository) {
	chatRepo := mockRepo.NewMockChatRepository(t)
	service := NewChatArchiveService(chatRepo).(*chatArchiveService)
	service.now = func() time.Time {
		return time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC+8", 8*60*60))
	}

	return service, chatRepo
}

func TestChatArchiveService_Append(t *testing.T) {
	service, chatRepo := createTestChatArchiveService(t)
	ctx := context.Background()

	var stored *entity.ChatMessage
	chatRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Run(func(_ context.Context, message *entity.ChatMessage) {
			stored = message
		}).
		Return(nil)

	message, err := service.Append(ctx, &usecase.ChatMessageInput{
		Sender:   "alice",
		Receiver: "bob",
		Content:  "hello",
	})
	require.NoError(t, err)
	require.NotNil(t, message)

	assert.NotEqual(t, uuid.Nil, message.ID)
	assert.Equal(t, "alice", message.Sender)
	assert.Equal(t, "bob", message.Receiver)
	assert.Equal(t, "hello", message.Content)
	assert.Equal(t, time.UTC, message.SentAt.Location())
	assert.True(t, message.SentAt.Equal(time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)))
	assert.Same(t, stored, message)
}

func TestChatArchiveService_Append_GeneratesDistinctIDs(t *testing.T) {
	service, chatRepo := createTestChatArchiveService(t)
	ctx := context.Background()

	chatRepo.EXPECT().Append(ctx, mock.Anything).Return(nil).Times(2)

	first, err := service.Append(ctx, &usecase.ChatMessageInput{Sender: "a", Receiver: "b", Content: "1"})
	require.NoError(t, err)
	second, err := service.Append(ctx, &usecase.ChatMessageInput{Sender: "a", Receiver: "b", Content: "2"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestChatArchiveService_Append_RepositoryError(t *testing.T) {
	service, chatRepo := createTestChatArchiveService(t)
	ctx := context.Background()

	chatRepo.EXPECT().Append(ctx, mock.Anything).Return(errors.New("database error"))

	message, err := service.Append(ctx, &usecase.ChatMessageInput{Sender: "a", Receiver: "b", Content: "c"})
	require.Error(t, err)
	assert.Nil(t, message)
	assert.Contains(t, err.Error(), "failed to append chat message")
}

func TestChatArchiveService_ListAll(t *testing.T) {
	service, chatRepo := createTestChatArchiveService(t)
	ctx := context.Background()

	messages := []*entity.ChatMessage{
		{ID: uuid.New(), Sender: "a", Receiver: "b", Content: "first"},
		{ID: uuid.New(), Sender: "b", Receiver: "a", Content: "second"},
	}
	chatRepo.EXPECT().ListAll(ctx).Return(messages, nil)

	result, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, messages, result)
}

func TestChatArchiveService_ListAll_Error(t *testing.T) {
	service, chatRepo := createTestChatArchiveService(t)
	ctx := context.Background()

	chatRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("database error"))

	result, err := service.ListAll(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list chat messages")
}
