package models

import "time"

// Payment records one settlement attempt for a booking.
type Payment struct {
	ID             string    `bson:"id" json:"id"`
	BookingID      string    `bson:"bookingId" json:"booking_id"`
	Amount         float64   `bson:"amount" json:"amount"`
	Currency       string    `bson:"currency" json:"currency"`
	Method         string    `bson:"method" json:"method"` // card | crypto
	Status         string    `bson:"status" json:"status"`
	TransactionID  string    `bson:"transactionId,omitempty" json:"transaction_id,omitempty"`
	IntentID       string    `bson:"paymentIntentId,omitempty" json:"payment_intent_id,omitempty"`
	PlatformFee    float64   `bson:"platformFee,omitempty" json:"platform_fee,omitempty"`
	ProviderPayout float64   `bson:"providerPayout,omitempty" json:"provider_payout,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// PaymentIntentRequest is the client ask for a Stripe payment intent.
type PaymentIntentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Currency  string `json:"currency"`
}
