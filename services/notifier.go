// services/notifier.go
package services

import (
	"os"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
	"wavebarber-backend/utils"
)

// Notifier sends WhatsApp/SMS messages through Twilio and records every
// attempt in the notification log. Send failures never propagate to the
// booking flow.
type Notifier struct {
	db      *gorm.DB
	client  *twilio.RestClient
	enabled bool
}

func NewNotifier(db *gorm.DB) *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	n := &Notifier{
		db:      db,
		enabled: accountSid != "" && authToken != "",
	}
	if n.enabled {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	} else {
		config.Log.Warn().Msg("twilio credentials missing, notifications disabled")
	}
	return n
}

// SendConfirmation dispatches the booking confirmation. Called once per
// successful creation, from a goroutine.
func (n *Notifier) SendConfirmation(appointment models.Appointment) {
	n.send(appointment, models.NotificationConfirmation, ConfirmationMessage(appointment))
}

// SendReminder dispatches a scheduled reminder of the given kind.
func (n *Notifier) SendReminder(appointment models.Appointment, kind string) {
	var message string
	switch kind {
	case models.NotificationReminder24h:
		message = Reminder24hMessage(appointment)
	case models.NotificationReminder2h:
		message = Reminder2hMessage(appointment)
	default:
		return
	}
	n.send(appointment, kind, message)
}

func (n *Notifier) send(appointment models.Appointment, kind, message string) {
	if !n.enabled {
		config.Log.Debug().
			Str("kind", kind).
			Str("appointment", appointment.ID.String()).
			Msg("notification skipped, twilio disabled")
		return
	}

	normalized := utils.NormalizePhoneForWhatsApp(appointment.CustomerPhone)

	channel := "sms"
	to := appointment.CustomerPhone
	if normalized != "" {
		channel = "whatsapp"
		to = "whatsapp:+" + normalized
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		config.Log.Error().Err(err).
			Str("phone", appointment.CustomerPhone).
			Str("kind", kind).
			Msg("failed to send message")
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		config.Log.Info().
			Str("sid", *resp.Sid).
			Str("kind", kind).
			Msg("message sent")
	}

	entry := models.NotificationLog{
		AppointmentID: appointment.ID,
		Kind:          kind,
		Channel:       channel,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := n.db.Create(&entry).Error; err != nil {
		config.Log.Error().Err(err).Msg("failed to log notification")
	}
}
