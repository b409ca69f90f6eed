package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"brandconnect/config"
	"brandconnect/models"
	"brandconnect/services/booking"
	"brandconnect/services/notification"

	"github.com/hibiken/asynq"
)

// NewReminderClient builds the asynq client bookings enqueue reminders
// through.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(booking.TypeBookingReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		body := fmt.Sprintf("Your booking on %s starts at %s.", p.Date, p.StartTime)
		data := map[string]string{
			"event":     "booking_reminder",
			"bookingId": p.BookingID,
		}

		if err := notifSvc.PushToUser(ctx, p.ClientID, "Upcoming booking", body, data); err != nil {
			log.Printf("[ReminderHandler] client push failed for booking %s: %v", p.BookingID, err)
		}
		if err := notifSvc.PushToCreative(ctx, p.CreativeID, "Upcoming booking", body, data); err != nil {
			log.Printf("[ReminderHandler] creative push failed for booking %s: %v", p.BookingID, err)
		}
		return nil
	}
}
