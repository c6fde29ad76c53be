package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/constants"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxConversationMessages = 500
	storeOutboundStep       = "store_outbound_message"
)

type inboxService struct {
	txManager      repository.TransactionManager
	conversations  repository.ConversationRepository
	messages       repository.MessageRepository
	connectionRepo repository.SocialConnectionRepository
	graph          service.MetaGraphClient
	messagingTag   string
	logger         *slog.Logger
	now            func() time.Time
}

// InboxServiceParams holds dependencies for InboxService, injected by Fx.
type InboxServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	ConnectionRepo   repository.SocialConnectionRepository
	Graph            service.MetaGraphClient
	Config           *config.Config
	Logger           *slog.Logger
}

func NewInboxService(params InboxServiceParams) usecase.InboxUsecase {
	tag := constants.DefaultMessagingTag
	if params.Config != nil && params.Config.Meta != nil && params.Config.Meta.MessagingTag != "" {
		tag = params.Config.Meta.MessagingTag
	}

	return &inboxService{
		txManager:      params.TxManager,
		conversations:  params.ConversationRepo,
		messages:       params.MessageRepo,
		connectionRepo: params.ConnectionRepo,
		graph:          params.Graph,
		messagingTag:   tag,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *inboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *inboxService) OnInboundMessage(ctx context.Context, msg usecase.InboundMessage) (usecase.InboundResult, error) {
	if msg.PageID == "" || msg.CustomerPlatformID == "" || msg.PlatformMessageID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("page id, sender id and message id are required")
	}
	if !msg.Platform.IsValid() || msg.Platform == entity.PlatformManual {
		return "", domainerrors.ErrValidationFailed.WithDetails("unsupported platform")
	}

	connection, err := srv.connectionRepo.FindByPageID(ctx, msg.PageID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			srv.log(ctx).Warn("Inbound message for an unknown page dropped",
				slog.String("pageID", msg.PageID),
				slog.String("mid", msg.PlatformMessageID),
			)

			return usecase.InboundDropped, nil
		}

		return "", errors.Wrap(err, "failed to resolve page owner")
	}

	result := usecase.InboundStored
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var customerID *uuid.UUID
		customer, err := repos.CustomerRepo().FindByPlatformUser(ctx, connection.UserID, msg.Platform, msg.CustomerPlatformID)
		switch {
		case err == nil:
			customerID = &customer.ID
		case !errors.Is(err, repository.ErrCustomerNotFound):
			return err
		}

		conversation, err := repos.ConversationRepo().Upsert(ctx, &entity.Conversation{
			UserID:                connection.UserID,
			Platform:              msg.Platform,
			PageID:                msg.PageID,
			ParticipantPlatformID: msg.CustomerPlatformID,
			CustomerID:            customerID,
			LastMessageAt:         msg.Timestamp,
		})
		if err != nil {
			return err
		}

		err = repos.MessageRepo().Create(ctx, &entity.Message{
			UserID:            connection.UserID,
			ConversationID:    conversation.ID,
			PlatformMessageID: msg.PlatformMessageID,
			Direction:         entity.MessageDirectionInbound,
			Text:              msg.Text,
			SentAt:            msg.Timestamp,
		})
		if errors.Is(err, repository.ErrDuplicateMessage) {
			result = usecase.InboundDuplicate

			return nil
		}
		if err != nil {
			return err
		}

		return repos.ConversationRepo().Touch(ctx, conversation.ID, msg.Timestamp)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to store inbound message")
	}

	if result == usecase.InboundDuplicate {
		srv.log(ctx).Debug("Duplicate inbound message ignored", slog.String("mid", msg.PlatformMessageID))
	}

	return result, nil
}

func (srv *inboxService) ProcessWebhookEvent(ctx context.Context, payload json.RawMessage) (*usecase.WebhookReport, error) {
	messages, skipped, err := normalizeWebhook(payload)
	if err != nil {
		return nil, err
	}

	report := &usecase.WebhookReport{Skipped: skipped}
	for _, msg := range messages {
		result, err := srv.OnInboundMessage(ctx, msg)
		if err != nil {
			return report, err
		}

		switch result {
		case usecase.InboundStored:
			report.Stored++
		case usecase.InboundDuplicate:
			report.Duplicates++
		case usecase.InboundDropped:
			report.Dropped++
		}
	}

	return report, nil
}

func (srv *inboxService) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Conversation, error) {
	conversations, err := srv.conversations.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to list conversations")
	}

	return conversations, nil
}

func (srv *inboxService) GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversations.FindByID(ctx, userID, conversationID)
	if err != nil {
		return nil, translateError(err, "failed to get conversation")
	}

	messages, err := srv.messages.ListByConversation(ctx, conversation.ID, maxConversationMessages)
	if err != nil {
		return nil, translateError(err, "failed to list messages")
	}

	conversation.Messages = make([]entity.Message, 0, len(messages))
	for _, m := range messages {
		conversation.Messages = append(conversation.Messages, *m)
	}

	return conversation, nil
}

func (srv *inboxService) SendMessage(ctx context.Context, userID, conversationID uuid.UUID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message text is required")
	}

	conversation, err := srv.conversations.FindByID(ctx, userID, conversationID)
	if err != nil {
		return nil, translateError(err, "failed to load conversation")
	}

	connection, err := srv.connectionRepo.FindByPageID(ctx, conversation.PageID)
	if err != nil && !errors.Is(err, repository.ErrConnectionNotFound) {
		return nil, errors.Wrap(err, "failed to load social connection")
	}
	if connection == nil || connection.UserID != userID {
		return nil, domainerrors.ErrMetaNotConnected
	}

	result, err := srv.graph.SendMessage(ctx, service.SendMessageRequest{
		AccessToken: connection.AccessToken,
		RecipientID: conversation.ParticipantPlatformID,
		Text:        text,
		Tag:         srv.messagingTag,
	})
	if err != nil {
		srv.log(ctx).Error("Meta message send failed",
			slog.Any("conversationID", conversation.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrMetaSendFailed
	}

	messageID := result.MessageID
	if messageID == "" {
		messageID = "local-" + uuid.NewString()
	}

	message := &entity.Message{
		UserID:            userID,
		ConversationID:    conversation.ID,
		PlatformMessageID: messageID,
		Direction:         entity.MessageDirectionOutbound,
		Text:              text,
		SentAt:            srv.now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.MessageRepo().Create(ctx, message); err != nil && !errors.Is(err, repository.ErrDuplicateMessage) {
			return err
		}

		return repos.ConversationRepo().Touch(ctx, conversation.ID, message.SentAt)
	})
	if err != nil {
		srv.log(ctx).Error("Message sent but not stored",
			slog.Any("conversationID", conversation.ID),
			slog.String("mid", messageID),
			slog.Any("error", err),
		)

		return message, domainerrors.NewPartialConsistencyWarning(conversation.ID, storeOutboundStep, err)
	}

	return message, nil
}

func (srv *inboxService) PromoteProspect(
	ctx context.Context,
	userID, conversationID uuid.UUID,
	input usecase.PromoteInput,
) (*entity.Customer, error) {
	var customer *entity.Customer
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		conversation, err := repos.ConversationRepo().FindByID(ctx, userID, conversationID)
		if err != nil {
			return err
		}
		if !conversation.IsProspect() {
			return domainerrors.ErrInvalidState.WithDetails("conversation is already linked to a customer")
		}

		// A customer may already exist for this sender, e.g. promoted from another page.
		existing, err := repos.CustomerRepo().FindByPlatformUser(ctx, userID, conversation.Platform, conversation.ParticipantPlatformID)
		switch {
		case err == nil:
			customer = existing
		case errors.Is(err, repository.ErrCustomerNotFound):
			customer = &entity.Customer{
				UserID:         userID,
				FullName:       prospectName(input.FullName, conversation),
				Phone:          strings.TrimSpace(input.Phone),
				Address:        strings.TrimSpace(input.Address),
				Platform:       conversation.Platform,
				PlatformUserID: &conversation.ParticipantPlatformID,
			}
			if err := repos.CustomerRepo().Create(ctx, customer); err != nil {
				return err
			}
		default:
			return err
		}

		return repos.ConversationRepo().LinkCustomer(ctx, conversation.ID, customer.ID)
	})
	if err != nil {
		return nil, translateError(err, "failed to promote prospect")
	}

	srv.log(ctx).Info("Prospect promoted", slog.Any("conversationID", conversationID), slog.Any("customerID", customer.ID))

	return customer, nil
}

func prospectName(requested string, conversation *entity.Conversation) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	if conversation.ParticipantName != "" {
		return conversation.ParticipantName
	}

	return "Prospect " + conversation.ParticipantPlatformID
}
