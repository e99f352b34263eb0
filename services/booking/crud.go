package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	bookingRepo "github.com/odacaict/domee.ro/database/repository/booking"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

func (se *DefaultSchedulingEngine) GetBooking(id string) (*models.Booking, error) {
	return se.getByID(id)
}

func (se *DefaultSchedulingEngine) getByID(id string) (*models.Booking, error) {
	bk, err := se.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return bk, nil
}

func (se *DefaultSchedulingEngine) GetUserBookings(userID string) ([]models.Booking, error) {
	return se.Repo.GetByUser(userID)
}

func (se *DefaultSchedulingEngine) GetProviderBookings(providerID string) ([]models.Booking, error) {
	return se.Repo.GetByProvider(providerID)
}

// Cancel frees the slot. Completed bookings already happened and stay as they
// are; cancelling twice is a no-op error.
func (se *DefaultSchedulingEngine) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	current, err := se.getByID(id)
	if err != nil {
		return nil, err
	}
	if !current.IsLive() {
		return nil, fmt.Errorf("cannot cancel a %s booking: %w", current.Status, ErrInvalidTransition)
	}

	updated, err := se.Repo.UpdateStatus(id, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	se.notifyStatus(ctx, updated, "Booking cancelled",
		fmt.Sprintf("Your appointment on %s at %s was cancelled.", updated.Date, updated.Time))
	return updated, nil
}

// Confirm records a successful payment: pending → confirmed, paid.
func (se *DefaultSchedulingEngine) Confirm(ctx context.Context, id string) (*models.Booking, error) {
	current, err := se.getByID(id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("cannot confirm a %s booking: %w", current.Status, ErrInvalidTransition)
	}

	if err := se.Repo.SetPaymentState(id, models.PaymentStatusPaid, ""); err != nil {
		return nil, err
	}
	updated, err := se.Repo.UpdateStatus(id, models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	se.notifyStatus(ctx, updated, "Booking confirmed",
		fmt.Sprintf("Your appointment on %s at %s is confirmed.", updated.Date, updated.Time))
	return updated, nil
}

// Complete is triggered by the provider once the appointment took place.
// There is no automatic time-based transition.
func (se *DefaultSchedulingEngine) Complete(ctx context.Context, id string) (*models.Booking, error) {
	current, err := se.getByID(id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.BookingStatusConfirmed {
		return nil, fmt.Errorf("cannot complete a %s booking: %w", current.Status, ErrInvalidTransition)
	}
	return se.Repo.UpdateStatus(id, models.BookingStatusCompleted)
}

func (se *DefaultSchedulingEngine) notifyStatus(ctx context.Context, booking *models.Booking, title, msg string) {
	if se.Notification == nil {
		return
	}
	if err := se.Notification.Notify(ctx, booking.UserID, title, msg, models.NotificationTypeBooking, map[string]string{
		"bookingId": booking.ID,
		"status":    booking.Status,
	}); err != nil {
		utils.GetLogger().Warn("status notification failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
