package handler

import (
	"log/slog"
	"net/http"

	"monitoring/internal/delivery/api/response"
	"monitoring/internal/delivery/api/validator"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatArchiveUsecase
	Logger *slog.Logger
}

// ChatHandler serves the chat archive
type ChatHandler struct {
	chatUC usecase.ChatArchiveUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// AppendMessageRequest is the body of POST /api/v1/chat/messages
type AppendMessageRequest struct {
	Sender   string `json:"sender" validate:"required,max=255"`
	Receiver string `json:"receiver" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
}

// AppendMessage archives one chat message
func (h *ChatHandler) AppendMessage(c echo.Context) error {
	var req AppendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, domainerrors.ErrInvalidInput, nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, domainerrors.ErrValidationFailed, validator.FieldErrors(err))
	}

	message, err := h.chatUC.Append(c.Request().Context(), &usecase.ChatMessageInput{
		Sender:   req.Sender,
		Receiver: req.Receiver,
		Content:  req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// ListMessages returns the whole archive. Mounted for admins only.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	messages, err := h.chatUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}
