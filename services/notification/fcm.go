package notification

import (
	"context"
	"fmt"

	creativeRepo "brandconnect/database/repository/creative"
	userRepo "brandconnect/database/repository/user"
	"brandconnect/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService sends pushes over Firebase Cloud
// Messaging, looking up each account's registered device token.
type DefaultNotificationService struct {
	Users     userRepo.UserRepository
	Creatives creativeRepo.CreativeRepository
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("notification: account has no registered device token")
	}
	if utils.FCMClient == nil {
		// Pushes are disabled in this deployment; log and move on so
		// callers never fail on a notification.
		utils.GetLogger().Info("push skipped (FCM disabled)",
			zap.String("title", title), zap.String("body", body))
		return nil
	}
	msg := &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: failed to send push: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) PushToUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("notification: could not find user %s: %w", userID, err)
	}
	return s.send(ctx, u.FCMToken, title, body, data)
}

func (s *DefaultNotificationService) PushToCreative(ctx context.Context, creativeID, title, body string, data map[string]string) error {
	c, err := s.Creatives.GetByID(creativeID)
	if err != nil {
		return fmt.Errorf("notification: could not find creative %s: %w", creativeID, err)
	}
	return s.send(ctx, c.FCMToken, title, body, data)
}
