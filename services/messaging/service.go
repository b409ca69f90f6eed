package messaging

import (
	"context"
	"encoding/json"
	"time"

	messageRepo "brandconnect/database/repository/message"
	"brandconnect/models"
	"brandconnect/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// chatChannel is the Redis pub/sub channel fanning chat events out to
// every API instance, so a recipient connected elsewhere still gets
// their realtime delivery.
const chatChannel = "chat:events"

// MessagingService manages conversations and chat messages.
type MessagingService interface {
	// OpenConversation returns the client<->creative thread, creating
	// it on first contact.
	OpenConversation(clientID, creativeID string) (*models.Conversation, error)
	ListConversations(accountID string) ([]models.Conversation, error)
	// Send persists a message and fans it out for realtime delivery.
	Send(senderID, conversationID, body string) (*models.Message, error)
	History(accountID, conversationID string, limit int) ([]models.Message, error)
	MarkRead(accountID, conversationID string) error
}

// DefaultMessagingService is the production implementation.
type DefaultMessagingService struct {
	Repo   messageRepo.MessageRepository
	Hub    *Hub
	PubSub *redis.Client
}

func (s *DefaultMessagingService) OpenConversation(clientID, creativeID string) (*models.Conversation, error) {
	conv, err := s.Repo.GetOrCreateConversation(clientID, creativeID)
	if err != nil {
		return nil, utils.Transport("messaging.OpenConversation", err)
	}
	return conv, nil
}

func (s *DefaultMessagingService) ListConversations(accountID string) ([]models.Conversation, error) {
	convs, err := s.Repo.ListConversations(accountID)
	if err != nil {
		return nil, utils.Transport("messaging.ListConversations", err)
	}
	return convs, nil
}

// participant reports whether the account belongs to the conversation
// and resolves the other party.
func participant(conv *models.Conversation, accountID string) (other string, ok bool) {
	switch accountID {
	case conv.ClientID:
		return conv.CreativeID, true
	case conv.CreativeID:
		return conv.ClientID, true
	default:
		return "", false
	}
}

func (s *DefaultMessagingService) Send(senderID, conversationID, body string) (*models.Message, error) {
	if body == "" {
		return nil, utils.Invalid("body", "must not be empty")
	}
	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	recipient, ok := participant(conv, senderID)
	if !ok {
		return nil, utils.ErrNotFound
	}

	msg := &models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		SentAt:         time.Now(),
	}
	if err := s.Repo.AppendMessage(msg); err != nil {
		return nil, utils.Transport("messaging.Send", err)
	}

	event := models.ChatEvent{
		Type:           "message",
		ConversationID: conversationID,
		MessageID:      msg.ID,
		SenderID:       senderID,
		RecipientID:    recipient,
		Body:           body,
		SentAt:         msg.SentAt,
	}
	s.publish(event)
	return msg, nil
}

func (s *DefaultMessagingService) History(accountID, conversationID string, limit int) ([]models.Message, error) {
	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if _, ok := participant(conv, accountID); !ok {
		return nil, utils.ErrNotFound
	}
	msgs, err := s.Repo.ListMessages(conversationID, limit)
	if err != nil {
		return nil, utils.Transport("messaging.History", err)
	}
	return msgs, nil
}

func (s *DefaultMessagingService) MarkRead(accountID, conversationID string) error {
	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return err
	}
	if _, ok := participant(conv, accountID); !ok {
		return utils.ErrNotFound
	}
	if err := s.Repo.MarkRead(conversationID, accountID); err != nil {
		return utils.Transport("messaging.MarkRead", err)
	}
	return nil
}

func (s *DefaultMessagingService) publish(event models.ChatEvent) {
	logger := utils.GetLogger()
	if s.PubSub == nil {
		// Single-instance deployment: deliver locally.
		s.Hub.Deliver(event)
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn("failed to marshal chat event", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.PubSub.Publish(ctx, chatChannel, payload).Err(); err != nil {
		logger.Warn("chat fan-out failed, delivering locally", zap.Error(err))
		s.Hub.Deliver(event)
	}
}

// RunFanout subscribes to the chat channel and hands every event to the
// local hub until the context is cancelled.
func (s *DefaultMessagingService) RunFanout(ctx context.Context) {
	if s.PubSub == nil {
		return
	}
	logger := utils.GetLogger()
	sub := s.PubSub.Subscribe(ctx, chatChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var event models.ChatEvent
			if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
				logger.Warn("bad chat event on channel", zap.Error(err))
				continue
			}
			s.Hub.Deliver(event)
		}
	}
}
