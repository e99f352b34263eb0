package models

import "time"

// Booking status lifecycle: pending → confirmed → completed, with cancelled
// reachable from pending/confirmed. Only cancellation frees the slot.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking is one committed appointment. Date is a "2006-01-02" calendar date
// and Time the "HH:MM" slot start; Duration denormalizes the service length
// in minutes so conflict checks never need a service lookup.
type Booking struct {
	ID         string  `bson:"id" json:"id"`
	UserID     string  `bson:"userId" json:"user_id"`
	ProviderID string  `bson:"providerId" json:"provider_id"`
	ServiceID  string  `bson:"serviceId" json:"service_id"`
	Date       string  `bson:"date" json:"date"`
	Time       string  `bson:"time" json:"time"`
	Duration   int     `bson:"duration" json:"duration"`
	Status     string  `bson:"status" json:"status"`
	TotalPrice float64 `bson:"totalPrice" json:"total_price"`

	PaymentStatus string `bson:"paymentStatus" json:"payment_status"`
	PaymentMethod string `bson:"paymentMethod,omitempty" json:"payment_method,omitempty"`
	PaymentIntent string `bson:"paymentIntentId,omitempty" json:"payment_intent_id,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`

	// Active mirrors "status is not cancelled". It backs the partial unique
	// slot index, so it must be flipped off exactly when the booking is
	// cancelled; completed appointments keep occupying their slot.
	Active bool `bson:"active" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// IsLive reports whether the appointment is still upcoming; cancellation and
// reminders only apply to live bookings.
func (b *Booking) IsLive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// BookingInterval is the minimal occupied-time view of a booking used by the
// availability calculator.
type BookingInterval struct {
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}
