package bookingRepo

import (
	"context"

	"github.com/odacaict/domee.ro/models"
)

// BookingRepository defines the persistence surface of the reservation path.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetLiveByProviderDate returns the non-cancelled bookings occupying
	// slots for a provider on the given date.
	GetLiveByProviderDate(providerID, date string) ([]models.Booking, error)
	// GetByUser returns a customer's bookings, newest date first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByProvider returns a provider's bookings, newest date first.
	GetByProvider(providerID string) ([]models.Booking, error)
	// Reserve inserts a new booking. It fails with ErrSlotTaken when another
	// non-cancelled booking already holds the same (provider, date, time).
	Reserve(ctx context.Context, booking *models.Booking) error
	// UpdateStatus transitions a booking's status, keeping the slot-holding
	// flag in step.
	UpdateStatus(id, status string) (*models.Booking, error)
	// SetPaymentState records payment progress on a booking.
	SetPaymentState(id, paymentStatus, paymentIntentID string) error
}
