package notification

import (
	"context"
	"time"

	userRepo "qserve/database/repository/user"
	"qserve/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService delivers push notifications to user devices. Delivery
// is best-effort: failures are logged, never surfaced to the caller.
type NotificationService interface {
	Notify(userID, title, body string, data map[string]string)
}

// DefaultNotificationService sends via Firebase Cloud Messaging.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// Notify pushes a notification to the user's registered device, if any.
func (s *DefaultNotificationService) Notify(userID, title, body string, data map[string]string) {
	logger := utils.GetLogger()

	if utils.FCMClient == nil {
		return
	}

	user, err := s.Users.GetByID(userID)
	if err != nil || user == nil || user.FCMToken == "" {
		if err != nil {
			logger.Warn("notification: failed to resolve user", zap.String("userID", userID), zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("notification: push delivery failed", zap.String("userID", userID), zap.Error(err))
	}
}
