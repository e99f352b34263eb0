// Package cron runs background workers alongside the API server.
package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/odacaict/domee.ro/config"
	bookingRepo "github.com/odacaict/domee.ro/database/repository/booking"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/booking"
	"github.com/odacaict/domee.ro/services/notification"
	"github.com/odacaict/domee.ro/utils"
)

// InitReminderWorker starts the asynq worker that delivers appointment
// reminders. It runs in the background and retries startup with backoff.
func InitReminderWorker(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeReminderSend, handleReminderTask(notifSvc, bookings))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker could not be started")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// handleReminderTask fires a push for an upcoming appointment. Bookings that
// were cancelled after scheduling are skipped silently.
func handleReminderTask(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		bk, err := bookings.GetByID(p.BookingID)
		if err != nil {
			utils.GetLogger().Warn("reminder fired for unknown booking",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return nil
		}
		if !bk.IsLive() {
			return nil
		}

		data := map[string]string{
			"bookingId": p.BookingID,
			"fireDate":  p.FireDate,
		}
		if err := notifSvc.SendPush(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			utils.GetLogger().Error("failed to deliver reminder push",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
