package models

import "time"

// Review is customer feedback attached to a completed booking. A provider may
// publish a single response.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"booking_id"`
	UserID     string    `bson:"userId" json:"user_id"`
	ProviderID string    `bson:"providerId" json:"provider_id"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment" json:"comment"`
	Response   string    `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}
