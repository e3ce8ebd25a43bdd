// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification kinds.
const (
	NotificationConfirmation = "confirmation"
	NotificationReminder24h  = "reminder_24h"
	NotificationReminder2h   = "reminder_2h"
)

type NotificationLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"appointmentId"`
	Kind          string    `gorm:"type:varchar(20)" json:"kind"`    // confirmation, reminder_24h, reminder_2h
	Channel       string    `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage  string    `gorm:"type:text" json:"errorMessage"`
	SentAt        time.Time `json:"sentAt"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
