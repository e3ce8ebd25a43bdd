package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses. Only StatusConfirmed occupies a slot for
// conflict-checking purposes.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// StatusLabels maps each status to the display text shown in the owner
// dashboard.
var StatusLabels = map[string]string{
	StatusConfirmed: "Confirmado",
	StatusCompleted: "Completado",
	StatusCancelled: "Cancelado",
	StatusNoShow:    "No asistió",
}

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s string) bool {
	_, ok := StatusLabels[s]
	return ok
}

// MaxCompanions limits how many additional names can share one slot.
const MaxCompanions = 2

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// Date is the formatted label of the resolved calendar date
	// ("viernes 1 de agosto"), frozen at creation time.
	Date string `gorm:"not null;index:idx_slot" json:"date"`
	// Time is the slot in "HH:MM".
	Time string `gorm:"not null;index:idx_slot" json:"time"`

	CustomerName  string     `gorm:"not null" json:"customerName"`
	Companions    StringList `gorm:"type:text" json:"companions"`
	CustomerPhone string     `gorm:"not null" json:"customerPhone"`
	CustomerEmail string     `json:"customerEmail"`
	Notes         string     `json:"notes"`

	// Service fields are copied by value; later catalog edits never
	// rewrite historical appointments.
	ServiceName     string  `gorm:"not null" json:"serviceName"`
	ServicePrice    float64 `gorm:"type:decimal(10,2);not null" json:"servicePrice"`
	ServiceDuration int     `json:"serviceDuration"` // in minutes
	ServiceIcon     string  `json:"serviceIcon"`

	Status string `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`

	Reminder24hSent bool `gorm:"column:reminder_24h_sent;default:false" json:"reminder24hSent"`
	Reminder2hSent  bool `gorm:"column:reminder_2h_sent;default:false" json:"reminder2hSent"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Initialize UUID before creating
func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// StringList stores a small list of names as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("type assertion to []byte failed")
}
