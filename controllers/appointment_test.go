package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wavebarber-backend/config"
	"wavebarber-backend/models"
)

// setupTestDB points the package at an in-memory store for handler tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One connection: an in-memory database exists per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Appointment{},
		&models.Service{},
		&models.DayAvailability{},
		&models.CustomTimeRange{},
	))

	config.DB = db
	config.SetupLogger()
	gin.SetMode(gin.TestMode)
	return db
}

func testContext(t *testing.T, id string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	return c, w
}

func postAppointment(t *testing.T, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	c, w := testContext(t, "")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	CreateAppointment(c)
	return w
}

func TestSoftDeleteRestoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	original := models.Appointment{
		Date:            "viernes 1 de agosto",
		Time:            "18:00",
		CustomerName:    "Juan Pérez",
		Companions:      models.StringList{"Ana"},
		CustomerPhone:   "+5491122334455",
		CustomerEmail:   "juan@example.com",
		Notes:           "sin máquina arriba",
		ServiceName:     "Corte Clásico",
		ServicePrice:    10000,
		ServiceDuration: 30,
		ServiceIcon:     "✂️",
		Status:          models.StatusConfirmed,
	}
	require.NoError(t, db.Create(&original).Error)

	c, w := testContext(t, original.ID.String())
	DeleteAppointment(c)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone from the active list, present in the trash.
	var active []models.Appointment
	require.NoError(t, db.Find(&active).Error)
	assert.Empty(t, active)

	var trashed models.Appointment
	require.NoError(t, db.Unscoped().First(&trashed, "id = ?", original.ID).Error)
	assert.True(t, trashed.DeletedAt.Valid)

	c, w = testContext(t, original.ID.String())
	RestoreAppointment(c)
	require.Equal(t, http.StatusOK, w.Code)

	// Every field survives the cycle except the deleted marker and the
	// update timestamp the restore touches.
	var restored models.Appointment
	require.NoError(t, db.First(&restored, "id = ?", original.ID).Error)
	assert.False(t, restored.DeletedAt.Valid)
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Date, restored.Date)
	assert.Equal(t, original.Time, restored.Time)
	assert.Equal(t, original.CustomerName, restored.CustomerName)
	assert.Equal(t, original.Companions, restored.Companions)
	assert.Equal(t, original.CustomerPhone, restored.CustomerPhone)
	assert.Equal(t, original.CustomerEmail, restored.CustomerEmail)
	assert.Equal(t, original.Notes, restored.Notes)
	assert.Equal(t, original.ServiceName, restored.ServiceName)
	assert.Equal(t, original.ServicePrice, restored.ServicePrice)
	assert.Equal(t, original.ServiceDuration, restored.ServiceDuration)
	assert.Equal(t, original.ServiceIcon, restored.ServiceIcon)
	assert.Equal(t, original.Status, restored.Status)
	assert.WithinDuration(t, original.CreatedAt, restored.CreatedAt, time.Second)
}

func TestRestoreMissingAppointment(t *testing.T) {
	setupTestDB(t)

	c, w := testContext(t, "3e8b9a52-0000-4000-8000-0123456789ab")
	RestoreAppointment(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	db := setupTestDB(t)

	svc := models.DefaultServices[0]
	require.NoError(t, db.Create(&svc).Error)

	body := gin.H{
		"day":           "friday",
		"time":          "18:00",
		"customerName":  "Juan Pérez",
		"customerPhone": "+5491122334455",
		"serviceSlug":   svc.Slug,
	}

	first := postAppointment(t, body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postAppointment(t, body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestIsSlotConflict(t *testing.T) {
	assert.True(t, isSlotConflict(errSlotTaken))
	assert.True(t, isSlotConflict(fmt.Errorf("create: %w", errSlotTaken)))
	assert.True(t, isSlotConflict(gorm.ErrDuplicatedKey))
	assert.True(t, isSlotConflict(fmt.Errorf("save: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isSlotConflict(gorm.ErrRecordNotFound))
	assert.False(t, isSlotConflict(nil))
}

func TestConfirmedSlotUniqueIndex(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_confirmed_slot
		 ON appointments ("date", "time")
		 WHERE status = 'confirmed' AND deleted_at IS NULL`,
	).Error)

	first := models.Appointment{
		Date: "viernes 1 de agosto", Time: "18:00",
		CustomerName: "Juan", CustomerPhone: "+5491122334455",
		ServiceName: "Corte Clásico", ServicePrice: 10000,
		Status: models.StatusConfirmed,
	}
	require.NoError(t, db.Create(&first).Error)

	// A concurrent loser that slipped past the availability check is
	// stopped by the index and reported as a duplicate key.
	second := first
	second.ID = uuid.Nil
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Cancelled rows are outside the index and insert fine.
	third := first
	third.ID = uuid.Nil
	third.Status = models.StatusCancelled
	require.NoError(t, db.Create(&third).Error)
}
