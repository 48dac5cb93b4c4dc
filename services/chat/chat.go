package chat

import (
	"context"
	"encoding/json"
	"time"

	messageRepo "qserve/database/repository/message"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/services/notification"
	"qserve/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	inboxCachePrefix = "inbox:"
	inboxCacheTTL    = 30 * time.Second
)

// ConversationID derives the order-independent identifier of the
// conversation between two users.
func ConversationID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// ChatService handles direct messaging and the inbox view.
type ChatService interface {
	SendMessage(senderID, receiverID, content string) (*models.Message, error)
	GetConversation(selfID, otherID string) ([]models.Message, error)
	GetUserConversations(selfID string) ([]models.ConversationView, error)
}

// DefaultChatService is the production implementation. Cache is optional;
// with a nil client every inbox read hits the store.
type DefaultChatService struct {
	Repo         messageRepo.MessageRepository
	Users        userRepo.UserRepository
	Cache        *redis.Client
	Notification notification.NotificationService
}

// SendMessage persists the message and refreshes both participants' inbox
// rows. Only the recipient's unread count grows.
func (s *DefaultChatService) SendMessage(senderID, receiverID, content string) (*models.Message, error) {
	if content == "" {
		return nil, utils.E(utils.CodeValidation, "message content is required")
	}
	if senderID == receiverID {
		return nil, utils.E(utils.CodeValidation, "cannot message yourself")
	}

	receiver, err := s.Users.GetByID(receiverID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to resolve receiver", err)
	}
	if receiver == nil {
		return nil, utils.E(utils.CodeNotFound, "receiver not found")
	}

	msg := models.Message{
		ID:             uuid.New().String(),
		ConversationID: ConversationID(senderID, receiverID),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
		Type:           "text",
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.InsertMessage(&msg); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to send message", err)
	}

	last := models.LastMessage{Content: content, SenderID: senderID, Timestamp: msg.CreatedAt}
	if err := s.Repo.UpsertSummary(senderID, receiverID, msg.ConversationID, last, 0); err != nil {
		utils.GetLogger().Error("chat: failed to upsert sender summary", zap.Error(err))
	}
	if err := s.Repo.UpsertSummary(receiverID, senderID, msg.ConversationID, last, 1); err != nil {
		utils.GetLogger().Error("chat: failed to upsert receiver summary", zap.Error(err))
	}

	s.invalidateInbox(senderID)
	s.invalidateInbox(receiverID)

	s.Notification.Notify(receiverID, "New message", content,
		map[string]string{"conversationId": msg.ConversationID, "senderId": senderID})

	return &msg, nil
}

// GetConversation fetches the conversation oldest-first and, as a side
// effect of the read, marks every message addressed to the caller as read.
func (s *DefaultChatService) GetConversation(selfID, otherID string) ([]models.Message, error) {
	convID := ConversationID(selfID, otherID)

	msgs, err := s.Repo.ListByConversation(convID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch conversation", err)
	}

	if _, err := s.Repo.MarkRead(convID, selfID); err != nil {
		utils.GetLogger().Error("chat: failed to mark messages read", zap.Error(err))
	}
	if err := s.Repo.ResetUnread(selfID, convID); err != nil {
		utils.GetLogger().Error("chat: failed to reset unread count", zap.Error(err))
	}
	s.invalidateInbox(selfID)

	return msgs, nil
}

// GetUserConversations returns the caller's inbox, most recent first, with
// each counterpart's identity resolved.
func (s *DefaultChatService) GetUserConversations(selfID string) ([]models.ConversationView, error) {
	if cached := s.cachedInbox(selfID); cached != nil {
		return cached, nil
	}

	summaries, err := s.Repo.ListSummaries(selfID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch conversations", err)
	}

	views := make([]models.ConversationView, 0, len(summaries))
	for _, sum := range summaries {
		view := models.ConversationView{ConversationSummary: sum}
		if u, err := s.Users.GetByID(sum.CounterpartID); err == nil && u != nil {
			view.CounterpartName = u.Name
			view.CounterpartImage = u.ProfileImage
		}
		views = append(views, view)
	}

	s.storeInbox(selfID, views)
	return views, nil
}

func (s *DefaultChatService) cachedInbox(userID string) []models.ConversationView {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, inboxCachePrefix+userID).Result()
	if err != nil {
		return nil
	}
	var views []models.ConversationView
	if err := json.Unmarshal([]byte(raw), &views); err != nil {
		return nil
	}
	return views
}

func (s *DefaultChatService) storeInbox(userID string, views []models.ConversationView) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, inboxCachePrefix+userID, raw, inboxCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("chat: failed to cache inbox", zap.Error(err))
	}
}

func (s *DefaultChatService) invalidateInbox(userID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, inboxCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("chat: failed to invalidate inbox cache", zap.Error(err))
	}
}
