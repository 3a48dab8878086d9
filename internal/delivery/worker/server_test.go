package worker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"monitoring/internal/delivery/worker/handler"
	"monitoring/internal/domain/entity"
	"monitoring/internal/infra/messaging"
	"monitoring/internal/infra/metrics"
	mockUsecase "monitoring/internal/mocks/usecase"
	"monitoring/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// channelSubscriber feeds queued messages to the handler until ctx ends.
type channelSubscriber struct {
	messages chan *messaging.Message

	mu      sync.Mutex
	results []error
}

func (s *channelSubscriber) Receive(ctx context.Context, h messaging.Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-s.messages:
			err := h(ctx, msg)
			s.mu.Lock()
			s.results = append(s.results, err)
			s.mu.Unlock()
		}
	}
}

func (s *channelSubscriber) Close() error { return nil }

func (s *channelSubscriber) handled() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.results)
}

func newTestHandler(t *testing.T) (*handler.LifecycleHandler, *mockUsecase.MockDeviceLifecycleUsecase) {
	lifecycleUC := mockUsecase.NewMockDeviceLifecycleUsecase(t)

	return handler.NewLifecycleHandler(handler.LifecycleHandlerParams{
		LifecycleUC: lifecycleUC,
		Metrics:     metrics.New(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), lifecycleUC
}

func TestWorkerServer_ServeDispatchesUntilStop(t *testing.T) {
	h, lifecycleUC := newTestHandler(t)
	lifecycleUC.EXPECT().
		Handle(mock.Anything, usecase.DeviceCommand{Intent: entity.IntentDelete, Payload: "{}"}).
		Return(&usecase.DeviceCommandResult{Intent: entity.IntentDelete}, nil)

	sub := &channelSubscriber{messages: make(chan *messaging.Message, 1)}
	lc := fxtest.NewLifecycle(t)

	srv, err := NewServer(ServerParams{
		Lc:         lc,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Subscriber: sub,
		Handler:    h,
	})
	require.NoError(t, err)
	lc.RequireStart()

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(context.Background()) }()

	sub.messages <- &messaging.Message{Intent: entity.IntentDelete, Data: []byte("{}"), Source: messaging.SourceNATS}
	assert.Eventually(t, func() bool { return sub.handled() == 1 }, time.Second, 10*time.Millisecond)

	lc.RequireStop()
	require.NoError(t, <-serveErr)
}

func TestWorkerServer_NoSubscriber(t *testing.T) {
	h, _ := newTestHandler(t)
	lc := fxtest.NewLifecycle(t)

	srv, err := NewServer(ServerParams{
		Lc:      lc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Handler: h,
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, srv.Serve(context.Background()))
	lc.RequireStop()
}
