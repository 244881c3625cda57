package tasks

import (
	"context"
	"fmt"
	"time"

	"nafis/config"
	"nafis/models"
	"nafis/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// AsynqReminderScheduler queues appointment reminders on the Redis-backed
// task queue; the cron worker delivers them when they fire.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler over the configured queue DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// ScheduleReminder enqueues a reminder 24 hours ahead of the appointment.
// Appointments closer than that get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, b models.Booking) error {
	starts, err := b.StartsAt(time.Local)
	if err != nil {
		return fmt.Errorf("tasks: bad appointment time on booking %s: %w", b.ID, err)
	}

	fireAt := starts.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Info("Appointment too soon for a reminder",
			zap.String("booking_id", b.ID), zap.Time("starts", starts))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   b.ID,
		Name:        b.Contact.Name,
		Email:       b.Contact.Email,
		ServiceName: b.Service.Name,
		Date:        b.Date,
		Time:        b.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}

	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("tasks: enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
