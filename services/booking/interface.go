package booking

import (
	"context"

	"github.com/odacaict/domee.ro/models"
)

// ReserveRequest is one customer's ask for a specific slot.
type ReserveRequest struct {
	ProviderID    string `json:"provider_id" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required"`
	UserID        string `json:"user_id"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

// SchedulingEngine is the booking core: availability reads and the
// conflict-safe reservation write path.
type SchedulingEngine interface {
	// GetAvailableSlots computes the slot grid for one provider/service/date.
	GetAvailableSlots(ctx context.Context, providerID, serviceID, date string) ([]models.TimeSlot, error)
	// Reserve validates the requested slot against current availability and
	// commits a pending booking; at most one concurrent caller can win a slot.
	Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error)

	GetBooking(id string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	GetProviderBookings(providerID string) ([]models.Booking, error)

	// Cancel frees the slot; allowed from pending or confirmed.
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	// Confirm marks the booking paid and confirmed; allowed from pending.
	Confirm(ctx context.Context, id string) (*models.Booking, error)
	// Complete is the manual provider action after the appointment took place.
	Complete(ctx context.Context, id string) (*models.Booking, error)
}
