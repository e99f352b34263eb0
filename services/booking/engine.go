package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "github.com/odacaict/domee.ro/database/repository/booking"
	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	serviceRepo "github.com/odacaict/domee.ro/database/repository/service"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/availability"
	"github.com/odacaict/domee.ro/services/notification"
	"github.com/odacaict/domee.ro/utils"
)

// slotLockTTL bounds how long a reservation may hold its per-day lock.
const slotLockTTL = 5 * time.Second

// DefaultSchedulingEngine implements SchedulingEngine over the Mongo
// repositories, with a per-(provider, date) lock serializing the
// check-then-insert of Reserve. The partial unique slot index backs it up at
// the storage layer, so a lost lock can still not double-book.
type DefaultSchedulingEngine struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	ServiceRepo  serviceRepo.ServiceRepository
	Locks        SlotLocker
	Notification notification.NotificationService
	Reminders    ReminderScheduler

	// Now is injectable so availability cutoffs are testable; nil means
	// time.Now.
	Now func() time.Time
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

func (se *DefaultSchedulingEngine) GetAvailableSlots(ctx context.Context, providerID, serviceID, date string) ([]models.TimeSlot, error) {
	svc, provider, err := se.loadServiceAndProvider(providerID, serviceID)
	if err != nil {
		return nil, err
	}

	live, err := se.Repo.GetLiveByProviderDate(providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s on %s: %w", providerID, date, err)
	}

	return availability.ComputeAvailableSlots(
		provider.WorkingHours, date, svc.Duration,
		occupiedIntervals(live), availability.DefaultGranularity, se.now(),
	)
}

func (se *DefaultSchedulingEngine) Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	svc, provider, err := se.loadServiceAndProvider(req.ProviderID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// Serialize all reservation attempts against this provider's day. The
	// availability check and the insert below form one critical section.
	release, err := se.Locks.Acquire(ctx, slotLockKey(req.ProviderID, req.Date), slotLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire reservation lock: %w", err)
	}
	defer release()

	live, err := se.Repo.GetLiveByProviderDate(req.ProviderID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s on %s: %w", req.ProviderID, req.Date, err)
	}

	free, err := availability.SlotAvailable(
		provider.WorkingHours, req.Date, req.Time, svc.Duration,
		occupiedIntervals(live), se.now(),
	)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotConflict
	}

	now := se.now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		ProviderID:    req.ProviderID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      svc.Duration,
		Status:        models.BookingStatusPending,
		TotalPrice:    svc.Price,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := se.Repo.Reserve(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	logger.Info("booking reserved",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	// Side channels are best-effort; the reservation already committed.
	se.notifyBooked(ctx, booking, svc)
	se.scheduleReminder(booking, svc)

	return booking, nil
}

func (se *DefaultSchedulingEngine) loadServiceAndProvider(providerID, serviceID string) (*models.Service, *models.Provider, error) {
	svc, err := se.ServiceRepo.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, nil, fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
		}
		return nil, nil, err
	}
	if !svc.Active {
		return nil, nil, ErrServiceInactive
	}
	if svc.ProviderID != providerID {
		return nil, nil, fmt.Errorf("service %s does not belong to provider %s: %w", serviceID, providerID, ErrNotFound)
	}

	provider, err := se.ProviderRepo.GetByID(providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, nil, fmt.Errorf("provider %s: %w", providerID, ErrNotFound)
		}
		return nil, nil, err
	}
	return svc, provider, nil
}

func (se *DefaultSchedulingEngine) notifyBooked(ctx context.Context, booking *models.Booking, svc *models.Service) {
	if se.Notification == nil {
		return
	}
	msg := fmt.Sprintf("Your %s appointment on %s at %s is pending payment.", svc.Name, booking.Date, booking.Time)
	if err := se.Notification.Notify(ctx, booking.UserID, "Booking created", msg, models.NotificationTypeBooking, map[string]string{
		"bookingId": booking.ID,
	}); err != nil {
		utils.GetLogger().Warn("booking notification failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (se *DefaultSchedulingEngine) scheduleReminder(booking *models.Booking, svc *models.Service) {
	if se.Reminders == nil {
		return
	}
	if err := se.Reminders.ScheduleBookingReminder(booking, svc.Name); err != nil {
		utils.GetLogger().Warn("reminder scheduling failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func slotLockKey(providerID, date string) string {
	return "resv:" + providerID + ":" + date
}

func occupiedIntervals(bookings []models.Booking) []models.BookingInterval {
	intervals := make([]models.BookingInterval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, models.BookingInterval{Time: b.Time, Duration: b.Duration})
	}
	return intervals
}
