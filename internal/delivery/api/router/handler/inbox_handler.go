package handler

import (
	"log/slog"
	"net/http"

	"socialdesk/internal/delivery/api/response"
	"socialdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InboxHandlerParams holds dependencies for InboxHandler, injected by Fx.
type InboxHandlerParams struct {
	fx.In

	InboxUC usecase.InboxUsecase
	Logger  *slog.Logger
}

// InboxHandler serves conversations to the owner.
type InboxHandler struct {
	inboxUC usecase.InboxUsecase
	logger  *slog.Logger
}

func NewInboxHandler(params InboxHandlerParams) *InboxHandler {
	return &InboxHandler{
		inboxUC: params.InboxUC,
		logger:  params.Logger,
	}
}

// SendMessageRequest is an owner reply.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (h *InboxHandler) ListConversations(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	limit, offset := pagination(c)
	conversations, err := h.inboxUC.ListConversations(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversations)
}

func (h *InboxHandler) GetConversation(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	conversationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	conversation, err := h.inboxUC.GetConversation(c.Request().Context(), userID, conversationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversation)
}

// SendMessage replies through the Graph API. A reply that was sent but not stored answers 207.
func (h *InboxHandler) SendMessage(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	conversationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req SendMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	message, err := h.inboxUC.SendMessage(c.Request().Context(), userID, conversationID, req.Text)
	if message == nil {
		return response.HandleResult(c, http.StatusCreated, nil, err)
	}

	return response.HandleResult(c, http.StatusCreated, message, err)
}

// PromoteProspect turns the conversation's prospect into a customer.
func (h *InboxHandler) PromoteProspect(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	conversationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req usecase.PromoteInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.inboxUC.PromoteProspect(c.Request().Context(), userID, conversationID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}
