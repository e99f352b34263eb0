package notification

import (
	"context"

	"github.com/odacaict/domee.ro/models"
)

// NotificationService persists in-app notifications and pushes them to the
// user's device when one is registered.
type NotificationService interface {
	// Notify stores a notification row and attempts push delivery.
	Notify(ctx context.Context, userID, title, message, ntype string, data map[string]string) error
	// SendPush delivers without persisting; used by the reminder worker.
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
	GetUserNotifications(userID string) ([]models.Notification, error)
	MarkRead(id string) error
	ClearAll(userID string) error
}
