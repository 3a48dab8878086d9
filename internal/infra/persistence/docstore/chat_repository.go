// Package docstore archives chat messages in a Go CDK document collection.
package docstore

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"monitoring/config"
	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/memdocstore" // registers mem://
	"gocloud.dev/gcerrors"
)

// DefaultCollectionURL keeps the archive in process memory, keyed by "id".
const DefaultCollectionURL = "mem://chat_messages/id"

// chatDocument is the stored shape of a chat message.
type chatDocument struct {
	ID       string    `docstore:"id"`
	Sender   string    `docstore:"sender"`
	Receiver string    `docstore:"receiver"`
	Content  string    `docstore:"content"`
	SentAt   time.Time `docstore:"sent_at"`
}

type chatRepository struct {
	coll *docstore.Collection
}

// Params holds dependencies for the docstore chat repository
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewChatRepository opens the configured collection and closes it on stop
func NewChatRepository(params Params) (repository.ChatRepository, error) {
	collectionURL := DefaultCollectionURL
	if params.Config.Archive != nil && params.Config.Archive.CollectionURL != "" {
		collectionURL = params.Config.Archive.CollectionURL
	}

	coll, err := docstore.OpenCollection(params.Ctx, collectionURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open chat collection %s", redact(collectionURL))
	}

	params.Logger.Info("Chat archive opened", slog.String("collection", redact(collectionURL)))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(coll.Close())
		},
	})

	return NewChatRepositoryWithCollection(coll), nil
}

// NewChatRepositoryWithCollection wraps an already opened collection
func NewChatRepositoryWithCollection(coll *docstore.Collection) repository.ChatRepository {
	return &chatRepository{coll: coll}
}

// Append stores a chat message. Reusing an ID fails like any other store error.
func (repo *chatRepository) Append(ctx context.Context, message *entity.ChatMessage) error {
	doc := &chatDocument{
		ID:       message.ID.String(),
		Sender:   message.Sender,
		Receiver: message.Receiver,
		Content:  message.Content,
		SentAt:   message.SentAt.UTC(),
	}

	if err := repo.coll.Create(ctx, doc); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.NewDatabaseExecuteError(err, "chat message "+doc.ID+" already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat message")
	}

	return nil
}

// ListAll returns every stored chat message in send order.
func (repo *chatRepository) ListAll(ctx context.Context) ([]*entity.ChatMessage, error) {
	iter := repo.coll.Query().Get(ctx)
	defer iter.Stop()

	var messages []*entity.ChatMessage
	for {
		var doc chatDocument
		err := iter.Next(ctx, &doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list chat messages")
		}

		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "stored chat message has invalid id")
		}

		messages = append(messages, &entity.ChatMessage{
			ID:       id,
			Sender:   doc.Sender,
			Receiver: doc.Receiver,
			Content:  doc.Content,
			SentAt:   doc.SentAt,
		})
	}

	// Collections do not all support ordering, so sort here.
	slices.SortStableFunc(messages, func(a, b *entity.ChatMessage) int {
		if c := a.SentAt.Compare(b.SentAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	if messages == nil {
		messages = []*entity.ChatMessage{}
	}

	return messages, nil
}

func isAlreadyExists(err error) bool {
	return gcerrors.Code(err) == gcerrors.AlreadyExists
}

// redact drops credentials and query options from a collection URL before logging.
func redact(collectionURL string) string {
	if scheme, rest, ok := strings.Cut(collectionURL, "://"); ok {
		if _, host, hasUser := strings.Cut(rest, "@"); hasUser {
			rest = host
		}
		rest, _, _ = strings.Cut(rest, "?")

		return scheme + "://" + rest
	}

	return collectionURL
}
