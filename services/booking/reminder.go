package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"brandconnect/models"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder is the asynq task type for booking reminders.
const TypeBookingReminder = "booking:reminder"

// ReminderLeadTime is how far before the booking start the reminder
// push goes out.
const ReminderLeadTime = time.Hour

// ReminderScheduler enqueues delayed reminder tasks for confirmed
// bookings. The worker in cron/ delivers them.
type ReminderScheduler struct {
	Client *asynq.Client
}

// Schedule enqueues a reminder to fire at the given instant. Reminders
// for bookings starting too soon are dropped rather than fired late.
func (s *ReminderScheduler) Schedule(payload models.ReminderPayload, at time.Time) error {
	if s == nil || s.Client == nil {
		return nil
	}
	if time.Until(at) <= 0 {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReminder, body)
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(at), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// ReminderAt computes when the reminder for a booking should fire.
func ReminderAt(date, startTime string) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking start: %w", err)
	}
	return start.Add(-ReminderLeadTime), nil
}
