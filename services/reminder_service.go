// services/reminder_service.go
package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
	"wavebarber-backend/schedule"
)

// reminder24hHour is the local hour at which the day-before reminder fires.
const reminder24hHour = 12

type ReminderService struct {
	db       *gorm.DB
	notifier *Notifier
	cron     *cron.Cron
}

func NewReminderService(db *gorm.DB, notifier *Notifier) *ReminderService {
	return &ReminderService{
		db:       db,
		notifier: notifier,
		cron:     cron.New(),
	}
}

// StartScheduler runs the reminder scan every 15 minutes.
func (s *ReminderService) StartScheduler() {
	s.cron.AddFunc("*/15 * * * *", func() {
		s.ProcessReminders(time.Now())
	})
	s.cron.Start()
	config.Log.Info().Msg("reminder scheduler started")
}

func (s *ReminderService) Stop() {
	s.cron.Stop()
}

// ProcessReminders sends the 24h and 2h reminders that have come due for
// confirmed appointments.
func (s *ReminderService) ProcessReminders(now time.Time) {
	var pending []models.Appointment
	err := s.db.
		Where("status = ?", models.StatusConfirmed).
		Where("reminder_24h_sent = ? OR reminder_2h_sent = ?", false, false).
		Find(&pending).Error
	if err != nil {
		config.Log.Error().Err(err).Msg("failed to fetch appointments for reminders")
		return
	}

	for _, appointment := range pending {
		at := schedule.ParseDateLabel(appointment.Date, appointment.Time, now)
		if at.IsZero() || at.Before(now) {
			continue
		}

		if !appointment.Reminder24hSent && due24h(at, now) {
			s.dispatch(appointment, models.NotificationReminder24h, "reminder_24h_sent")
		}
		if !appointment.Reminder2hSent && due2h(at, now) {
			s.dispatch(appointment, models.NotificationReminder2h, "reminder_2h_sent")
		}
	}
}

// The day-before reminder fires at noon the previous day.
func due24h(appointmentAt, now time.Time) bool {
	fireAt := time.Date(appointmentAt.Year(), appointmentAt.Month(), appointmentAt.Day(),
		reminder24hHour, 0, 0, 0, appointmentAt.Location()).AddDate(0, 0, -1)
	return !now.Before(fireAt)
}

func due2h(appointmentAt, now time.Time) bool {
	return !now.Before(appointmentAt.Add(-2 * time.Hour))
}

func (s *ReminderService) dispatch(appointment models.Appointment, kind, sentColumn string) {
	s.notifier.SendReminder(appointment, kind)

	if err := s.db.Model(&models.Appointment{}).
		Where("id = ?", appointment.ID).
		Update(sentColumn, true).Error; err != nil {
		config.Log.Error().Err(err).
			Str("appointment", appointment.ID.String()).
			Msg("failed to mark reminder sent")
	}
}
