package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/odacaict/domee.ro/models"
)

// TypeReminderSend is the asynq task type consumed by the reminder worker.
const TypeReminderSend = "reminder:send"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 2 * time.Hour

// ReminderScheduler enqueues appointment reminders for later delivery.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking, serviceName string) error
}

// AsynqReminderScheduler schedules reminders on the shared Redis-backed
// asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking *models.Booking, serviceName string) error {
	appointment, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for booking %s: %w", booking.ID, err)
	}

	fireAt := appointment.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		// Too close to the appointment; nothing to remind.
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		ProviderID: booking.ProviderID,
		Title:      "Upcoming appointment",
		Body:       fmt.Sprintf("Your %s appointment is at %s today.", serviceName, booking.Time),
		FireDate:   fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
