// controllers/availability.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
	"wavebarber-backend/schedule"
	"wavebarber-backend/utils"
)

// SlotView is one selectable slot in the customer widget.
type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Kind      string `json:"kind"` // regular or overflow
}

// DayView is one operating day with its resolved date and slot grid.
type DayView struct {
	Day      string     `json:"day"`
	Label    string     `json:"label"`
	Date     string     `json:"date"`
	IsClosed bool       `json:"isClosed"`
	Slots    []SlotView `json:"slots"`
}

// UpdateDayAvailabilityInput toggles the per-day enabled flags.
type UpdateDayAvailabilityInput struct {
	Friday   *bool `json:"friday"`
	Saturday *bool `json:"saturday"`
}

// CreateRangeInput adds a custom booking window to one day.
type CreateRangeInput struct {
	Day   string `json:"day" binding:"required,oneof=friday saturday"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// loadAvailabilitySettings reads the day flags and custom ranges. On store
// errors it falls back to the built-in defaults (both days open, stock
// hours) so a read failure never closes the shop.
func loadAvailabilitySettings() (models.DayAvailability, map[schedule.Weekday][]schedule.TimeRange) {
	settings := models.DayAvailability{Friday: true, Saturday: true}
	if err := config.DB.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			config.Log.Warn().Err(err).Msg("day availability read failed, using defaults")
		}
		settings = models.DayAvailability{Friday: true, Saturday: true}
	}

	ranges := map[schedule.Weekday][]schedule.TimeRange{}
	var rows []models.CustomTimeRange
	if err := config.DB.Order("created_at ASC").Find(&rows).Error; err != nil {
		config.Log.Warn().Err(err).Msg("custom ranges read failed, using defaults only")
		return settings, ranges
	}
	for _, row := range rows {
		r, err := schedule.ParseTimeRange(row.Start, row.End)
		if err != nil {
			// Validated at save time; a bad stored row is skipped.
			config.Log.Warn().Str("range", row.ID.String()).Err(err).Msg("skipping invalid stored range")
			continue
		}
		ranges[schedule.Weekday(row.Day)] = append(ranges[schedule.Weekday(row.Day)], r)
	}
	return settings, ranges
}

func dayEnabled(settings models.DayAvailability, day schedule.Weekday) bool {
	if day == schedule.Saturday {
		return settings.Saturday
	}
	return settings.Friday
}

// GetDays returns both operating days with their resolved dates and merged
// slot grids, each slot conflict-checked against confirmed appointments.
func GetDays(c *gin.Context) {
	settings, ranges := loadAvailabilitySettings()

	var confirmed []models.Appointment
	if err := config.DB.Where("status = ?", models.StatusConfirmed).
		Find(&confirmed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	now := time.Now()
	days := make([]DayView, 0, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		date := schedule.FormatDateLabel(schedule.NextOccurrence(day, now))
		enabled := dayEnabled(settings, day)

		slots := schedule.AvailableSlots(day, schedule.DefaultRanges[day], ranges[day], enabled)
		views := make([]SlotView, 0, len(slots))
		for _, slot := range slots {
			views = append(views, SlotView{
				Time:      slot.String(),
				Available: schedule.IsSlotAvailable(date, slot.String(), confirmed),
				Kind:      slot.Kind(),
			})
		}

		days = append(days, DayView{
			Day:      string(day),
			Label:    day.Label(),
			Date:     date,
			IsClosed: !enabled,
			Slots:    views,
		})
	}

	c.JSON(http.StatusOK, days)
}

// GetDayAvailability returns the enabled flags for the owner settings view.
func GetDayAvailability(c *gin.Context) {
	settings, _ := loadAvailabilitySettings()
	c.JSON(http.StatusOK, settings)
}

// UpdateDayAvailability toggles the enabled flag for one or both days.
func UpdateDayAvailability(c *gin.Context) {
	var input UpdateDayAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Friday == nil && input.Saturday == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	var settings models.DayAvailability
	err := config.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DayAvailability{Friday: true, Saturday: true}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.Friday != nil {
		settings.Friday = *input.Friday
	}
	if input.Saturday != nil {
		settings.Saturday = *input.Saturday
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update day availability")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GetCustomRanges lists the owner-added windows grouped by day.
func GetCustomRanges(c *gin.Context) {
	var rows []models.CustomTimeRange
	if err := config.DB.Order("created_at ASC").Find(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ranges")
		return
	}

	grouped := map[string][]models.CustomTimeRange{
		string(schedule.Friday):   {},
		string(schedule.Saturday): {},
	}
	for _, row := range rows {
		// Binding rejects other days at create time; a corrupted row
		// must not take the handler down.
		if _, ok := grouped[row.Day]; !ok {
			continue
		}
		grouped[row.Day] = append(grouped[row.Day], row)
	}

	c.JSON(http.StatusOK, grouped)
}

// CreateCustomRange adds a window after validating its order; an inverted
// range never reaches slot generation.
func CreateCustomRange(c *gin.Context) {
	var input CreateRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := schedule.ParseTimeRange(input.Start, input.End); err != nil {
		if errors.Is(err, schedule.ErrInvalidRange) {
			utils.RespondWithError(c, http.StatusBadRequest, "Range start cannot be after its end")
		} else {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format")
		}
		return
	}

	row := models.CustomTimeRange{
		Day:   input.Day,
		Start: input.Start,
		End:   input.End,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save range")
		return
	}

	c.JSON(http.StatusCreated, row)
}

// DeleteCustomRange removes an owner-added window.
func DeleteCustomRange(c *gin.Context) {
	rangeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid range ID format")
		return
	}

	result := config.DB.Where("id = ?", rangeUUID).Delete(&models.CustomTimeRange{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete range")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Range not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Range deleted"})
}
