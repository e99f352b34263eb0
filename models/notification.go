package models

import "time"

const (
	NotificationTypeBooking  = "booking"
	NotificationTypePayment  = "payment"
	NotificationTypeReview   = "review"
	NotificationTypeReminder = "reminder"
)

// Notification is a persisted in-app message; push delivery through FCM is
// best-effort on top of it.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"userId" json:"user_id"`
	Title     string            `bson:"title" json:"title"`
	Message   string            `bson:"message" json:"message"`
	Type      string            `bson:"type" json:"type"`
	Read      bool              `bson:"read" json:"read"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"created_at"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	UserID     string `json:"userId"`
	ProviderID string `json:"providerId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
