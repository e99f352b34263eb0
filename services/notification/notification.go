package notification

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	notificationRepo "github.com/odacaict/domee.ro/database/repository/notification"
	userRepo "github.com/odacaict/domee.ro/database/repository/user"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

// DefaultNotificationService implements NotificationService over the Mongo
// notification store and FCM. A nil FCM client disables push delivery.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
	FCM   *messaging.Client
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, message, ntype string, data map[string]string) error {
	notif := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(notif); err != nil {
		return err
	}

	// Push is best-effort on top of the stored row.
	if err := s.SendPush(ctx, userID, title, message, data); err != nil {
		utils.GetLogger().Warn("push delivery failed",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if s.FCM == nil {
		return nil
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to resolve push target: %w", err)
	}
	if user.FCMToken == "" || !user.Preferences.Notifications {
		return nil
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) GetUserNotifications(userID string) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID)
}

func (s *DefaultNotificationService) MarkRead(id string) error {
	return s.Repo.MarkRead(id)
}

func (s *DefaultNotificationService) ClearAll(userID string) error {
	return s.Repo.ClearByUser(userID)
}
