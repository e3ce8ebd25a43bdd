package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
	"wavebarber-backend/schedule"
	"wavebarber-backend/utils"
)

// DayOccupancy summarizes the next occurrence of one operating day.
type DayOccupancy struct {
	Date           string `json:"date"`
	TotalSlots     int    `json:"totalSlots"`
	Booked         int    `json:"booked"`
	BookedOnHour   int    `json:"bookedOnHour"`
	BookedOverflow int    `json:"bookedOverflow"`
}

// DashboardOverview is the owner landing view.
type DashboardOverview struct {
	TotalAppointments int                     `json:"totalAppointments"`
	Confirmed         int                     `json:"confirmed"`
	Completed         int                     `json:"completed"`
	Cancelled         int                     `json:"cancelled"`
	NoShow            int                     `json:"noShow"`
	Trashed           int64                   `json:"trashed"`
	Occupancy         map[string]DayOccupancy `json:"occupancy"`
}

// GetDashboardOverview aggregates booking counts and next-weekend
// occupancy for the owner dashboard.
func GetDashboardOverview(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	var trashed int64
	config.DB.Unscoped().Model(&models.Appointment{}).
		Where("deleted_at IS NOT NULL").Count(&trashed)

	overview := DashboardOverview{
		TotalAppointments: len(appointments),
		Trashed:           trashed,
		Occupancy:         map[string]DayOccupancy{},
	}
	for _, a := range appointments {
		switch a.Status {
		case models.StatusConfirmed:
			overview.Confirmed++
		case models.StatusCompleted:
			overview.Completed++
		case models.StatusCancelled:
			overview.Cancelled++
		case models.StatusNoShow:
			overview.NoShow++
		}
	}

	settings, ranges := loadAvailabilitySettings()
	now := time.Now()
	for _, day := range schedule.Weekdays {
		date := schedule.FormatDateLabel(schedule.NextOccurrence(day, now))
		slots := schedule.AvailableSlots(day, schedule.DefaultRanges[day], ranges[day], dayEnabled(settings, day))

		occupancy := DayOccupancy{Date: date, TotalSlots: len(slots)}
		for _, a := range appointments {
			// Cancelled and no-show bookings do not count as occupancy.
			if a.Date != date || a.Status == models.StatusCancelled || a.Status == models.StatusNoShow {
				continue
			}
			occupancy.Booked++
			if strings.HasSuffix(a.Time, ":00") {
				occupancy.BookedOnHour++
			} else {
				occupancy.BookedOverflow++
			}
		}
		overview.Occupancy[string(day)] = occupancy
	}

	c.JSON(http.StatusOK, overview)
}
