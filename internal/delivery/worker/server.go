// Package worker runs the pull subscriber that feeds device lifecycle messages to the processor.
package worker

import (
	"context"
	"log/slog"

	"monitoring/internal/delivery"
	"monitoring/internal/delivery/worker/handler"
	"monitoring/internal/domain/lifecycle"
	"monitoring/internal/infra/messaging"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	subscriber messaging.Subscriber
	handler    *handler.LifecycleHandler
	logger     *slog.Logger

	stopped context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	Subscriber messaging.Subscriber `optional:"true"`
	Handler    *handler.LifecycleHandler
}

// NewServer creates the subscriber delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	stopped, cancel := context.WithCancel(context.Background())
	srv := &workerServer{
		subscriber: params.Subscriber,
		handler:    params.Handler,
		logger:     params.Logger,
		stopped:    stopped,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve receives until the application stops. Without a pull subscriber it returns immediately.
func (s *workerServer) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.subscriber == nil {
		s.logger.Info("Worker idle: no pull subscriber configured")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopReceiving := context.AfterFunc(s.stopped, cancel)
	defer stopReceiving()

	s.logger.Info("Starting message worker")
	if err := s.subscriber.Receive(ctx, s.handler.Handle); err != nil && !errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}

	return nil
}

// stop cancels receiving and waits for in-flight handlers to return
func (s *workerServer) stop(ctx context.Context) error {
	s.cancel()
	if s.subscriber == nil {
		return nil
	}

	s.logger.Info("Shutting down message worker")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "worker did not stop in time")
	}
}
