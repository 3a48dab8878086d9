// Package handler turns transport messages into device lifecycle commands.
package handler

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "monitoring/internal/delivery/context"
	"monitoring/internal/domain/constants"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/infra/messaging"
	"monitoring/internal/infra/metrics"
	"monitoring/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LifecycleHandler dispatches inbound messages to the device lifecycle usecase and
// decides whether the transport should acknowledge them
type LifecycleHandler struct {
	lifecycleUC usecase.DeviceLifecycleUsecase
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// LifecycleHandlerParams holds dependencies for the LifecycleHandler
type LifecycleHandlerParams struct {
	fx.In

	LifecycleUC usecase.DeviceLifecycleUsecase
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewLifecycleHandler creates a new lifecycle message handler
func NewLifecycleHandler(params LifecycleHandlerParams) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleUC: params.LifecycleUC,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// Classify maps a processing error to a message outcome.
// Input that can never succeed is rejected; everything else is retried.
func Classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeProcessed
	case domainerrors.IsPermanentFailure(err):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeRetry
	}
}

// Handle implements messaging.Handler. Rejected messages are acknowledged so they are not redelivered.
func (h *LifecycleHandler) Handle(ctx context.Context, msg *messaging.Message) error {
	ctx, logger := deliverycontext.Scope(ctx, h.logger, msg.Attributes[constants.AttributeRequestID],
		slog.String("intent", msg.Intent.String()),
		slog.String("source", msg.Source),
		slog.String("message_id", msg.ID),
	)

	start := time.Now()
	result, err := h.lifecycleUC.Handle(ctx, usecase.DeviceCommand{
		Intent:  msg.Intent,
		Payload: string(msg.Data),
	})
	outcome := Classify(err)

	if h.metrics != nil {
		h.metrics.ObserveMessage(msg.Intent.String(), msg.Source, outcome, time.Since(start))
	}

	switch outcome {
	case metrics.OutcomeProcessed:
		attrs := []any{}
		if result != nil && result.Record != nil {
			attrs = append(attrs, slog.String("device_id", result.Record.ID.String()))
		}
		logger.Debug("[Worker] Message processed", attrs...)

		return nil

	case metrics.OutcomeRejected:
		logger.Warn("[Worker] Message rejected", slog.Any("error", err))

		return nil

	default:
		logger.Error("[Worker] Message processing failed, will retry", slog.Any("error", err))

		return errors.Wrap(err, "retryable message failure")
	}
}
