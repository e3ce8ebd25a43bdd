package controllers

import (
	"errors"
	"fmt"
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

// Notifier is injected at startup so booking creation can fire the
// confirmation message without the controllers owning Twilio setup.
var Notifier interface {
	SendConfirmation(models.Appointment)
}

// CreateAppointmentInput defines the expected JSON structure for booking
// submission. The calendar date is resolved server-side from the weekday.
type CreateAppointmentInput struct {
	Day           string   `json:"day" binding:"required,oneof=friday saturday"`
	Time          string   `json:"time" binding:"required"`
	CustomerName  string   `json:"customerName" binding:"required"`
	Companions    []string `json:"companions"`
	CustomerPhone string   `json:"customerPhone" binding:"required"`
	CustomerEmail string   `json:"customerEmail"`
	Notes         string   `json:"notes"`
	ServiceSlug   string   `json:"serviceSlug" binding:"required"`
}

// UpdateAppointmentInput defines the expected JSON structure for owner
// edits. Nil fields are left untouched.
type UpdateAppointmentInput struct {
	Status        *string   `json:"status"`
	Time          *string   `json:"time"`
	Day           *string   `json:"day" binding:"omitempty,oneof=friday saturday"`
	CustomerName  *string   `json:"customerName"`
	Companions    *[]string `json:"companions"`
	CustomerPhone *string   `json:"customerPhone"`
	CustomerEmail *string   `json:"customerEmail"`
	Notes         *string   `json:"notes"`
}

// CreateAppointment handles booking submission from the customer widget.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if len(input.Companions) > models.MaxCompanions {
		utils.RespondWithError(c, http.StatusBadRequest,
			fmt.Sprintf("At most %d companions are allowed", models.MaxCompanions))
		return
	}
	slot, err := schedule.ParseTimeOfDay(input.Time)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format")
		return
	}

	var service models.Service
	if err := config.DB.Where("slug = ?", input.ServiceSlug).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	day := schedule.Weekday(input.Day)

	// The slot must be one the availability pipeline currently offers.
	settings, ranges := loadAvailabilitySettings()
	slots := schedule.AvailableSlots(day, schedule.DefaultRanges[day], ranges[day], dayEnabled(settings, day))
	if !containsSlot(slots, slot) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Slot is not bookable on that day")
		return
	}

	// Date is resolved once, at creation time, and stored as a label.
	date := schedule.FormatDateLabel(schedule.NextOccurrence(day, time.Now()))

	appointment := models.Appointment{
		Date:            date,
		Time:            slot.String(),
		CustomerName:    input.CustomerName,
		Companions:      models.StringList(input.Companions),
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		Notes:           input.Notes,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		ServiceDuration: service.Duration,
		ServiceIcon:     service.Icon,
		Status:          models.StatusConfirmed,
	}

	// Conflict check and insert run in one transaction; a partial unique
	// index on (date, time) for confirmed rows closes the residual race.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Appointment
		if err := tx.Where("date = ? AND time = ?", date, slot.String()).
			Find(&existing).Error; err != nil {
			return err
		}
		if !schedule.IsSlotAvailable(date, slot.String(), existing) {
			return errSlotTaken
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if isSlotConflict(err) {
			utils.RespondWithError(c, http.StatusConflict, "That slot has just been taken")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	if Notifier != nil {
		go Notifier.SendConfirmation(appointment)
	}

	c.JSON(http.StatusCreated, appointment)
}

var errSlotTaken = errors.New("slot already taken")

// isSlotConflict covers both ways a write can lose a slot: the
// in-transaction check, and the unique index catching a concurrent loser
// the check missed. The store translates its duplicate-key error.
func isSlotConflict(err error) bool {
	return errors.Is(err, errSlotTaken) || errors.Is(err, gorm.ErrDuplicatedKey)
}

// GetAppointments retrieves all active appointments, newest first.
// An optional ?status= filter narrows the list.
func GetAppointments(c *gin.Context) {
	query := config.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentUUID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment applies owner edits: status changes, contact fields,
// or moving the appointment to another slot.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentUUID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
			return
		}
		appointment.Status = *input.Status
	}
	if input.CustomerName != nil {
		appointment.CustomerName = *input.CustomerName
	}
	if input.Companions != nil {
		if len(*input.Companions) > models.MaxCompanions {
			utils.RespondWithError(c, http.StatusBadRequest,
				fmt.Sprintf("At most %d companions are allowed", models.MaxCompanions))
			return
		}
		appointment.Companions = models.StringList(*input.Companions)
	}
	if input.CustomerPhone != nil {
		if !utils.ValidatePhone(*input.CustomerPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		appointment.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		appointment.CustomerEmail = *input.CustomerEmail
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	newDate := appointment.Date
	newTime := appointment.Time
	if input.Day != nil {
		newDate = schedule.FormatDateLabel(schedule.NextOccurrence(schedule.Weekday(*input.Day), time.Now()))
	}
	if input.Time != nil {
		slot, err := schedule.ParseTimeOfDay(*input.Time)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format")
			return
		}
		newTime = slot.String()
	}

	moved := newDate != appointment.Date || newTime != appointment.Time
	if moved && appointment.Status == models.StatusConfirmed {
		var others []models.Appointment
		if err := config.DB.Where("date = ? AND time = ? AND id <> ?", newDate, newTime, appointment.ID).
			Find(&others).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if !schedule.IsSlotAvailable(newDate, newTime, others) {
			utils.RespondWithError(c, http.StatusConflict, "Target slot is already taken")
			return
		}
	}
	appointment.Date = newDate
	appointment.Time = newTime

	if err := config.DB.Save(&appointment).Error; err != nil {
		if isSlotConflict(err) {
			utils.RespondWithError(c, http.StatusConflict, "Target slot is already taken")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment soft deletes an appointment; it stays recoverable from
// the trash until purged.
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", appointmentUUID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment moved to trash"})
}

// GetTrashedAppointments lists soft-deleted appointments, most recently
// deleted first.
func GetTrashedAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve trash")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// RestoreAppointment clears the deleted marker, returning the appointment
// to the active list unchanged.
func RestoreAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Unscoped().Model(&models.Appointment{}).
		Where("id = ? AND deleted_at IS NOT NULL", appointmentUUID).
		Update("deleted_at", nil)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to restore appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found in trash")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment restored"})
}

// PurgeAppointment permanently erases a trashed appointment.
func PurgeAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", appointmentUUID).
		Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to purge appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found in trash")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment permanently deleted"})
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return uuid.Nil, false
	}
	return id, true
}

func containsSlot(slots []schedule.TimeOfDay, slot schedule.TimeOfDay) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
