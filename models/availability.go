package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayAvailability is a singleton row holding the per-weekday enabled flags.
// A disabled day yields zero bookable slots regardless of configured ranges.
type DayAvailability struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Friday    bool      `gorm:"default:true" json:"friday"`
	Saturday  bool      `gorm:"default:true" json:"saturday"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomTimeRange is an owner-added booking window for one weekday, on top
// of the default operating hours. Start > End is rejected at save time.
type CustomTimeRange struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Day       string    `gorm:"type:varchar(10);not null;index" json:"day"` // "friday" or "saturday"
	Start     string    `gorm:"not null" json:"start"`                      // "HH:MM"
	End       string    `gorm:"column:end_time;not null" json:"end"`        // "HH:MM"
	CreatedAt time.Time `json:"createdAt"`
}

func (r *CustomTimeRange) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
