package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wavebarber-backend/models"
)

func TestIsSlotAvailable(t *testing.T) {
	confirmed := models.Appointment{
		Date:   "viernes 1 de agosto",
		Time:   "18:00",
		Status: models.StatusConfirmed,
	}

	tests := []struct {
		name         string
		date         string
		slot         string
		appointments []models.Appointment
		want         bool
	}{
		{
			name: "empty snapshot is free",
			date: "viernes 1 de agosto",
			slot: "18:00",
			want: true,
		},
		{
			name:         "confirmed appointment blocks the slot",
			date:         "viernes 1 de agosto",
			slot:         "18:00",
			appointments: []models.Appointment{confirmed},
			want:         false,
		},
		{
			name:         "different time is free",
			date:         "viernes 1 de agosto",
			slot:         "19:00",
			appointments: []models.Appointment{confirmed},
			want:         true,
		},
		{
			name:         "same time on another date is free",
			date:         "sábado 2 de agosto",
			slot:         "18:00",
			appointments: []models.Appointment{confirmed},
			want:         true,
		},
		{
			name: "cancelled appointment frees the slot",
			date: "viernes 1 de agosto",
			slot: "18:00",
			appointments: []models.Appointment{
				{Date: "viernes 1 de agosto", Time: "18:00", Status: models.StatusCancelled},
			},
			want: true,
		},
		{
			name: "completed and no-show never block",
			date: "viernes 1 de agosto",
			slot: "18:00",
			appointments: []models.Appointment{
				{Date: "viernes 1 de agosto", Time: "18:00", Status: models.StatusCompleted},
				{Date: "viernes 1 de agosto", Time: "18:00", Status: models.StatusNoShow},
			},
			want: true,
		},
		{
			name: "duplicate confirmed bookings still report unavailable",
			date: "viernes 1 de agosto",
			slot: "18:00",
			appointments: []models.Appointment{
				confirmed,
				{Date: "viernes 1 de agosto", Time: "18:00", Status: models.StatusConfirmed},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSlotAvailable(tt.date, tt.slot, tt.appointments)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusChangeFlipsAvailability(t *testing.T) {
	appt := models.Appointment{
		Date:   "viernes 1 de agosto",
		Time:   "18:00",
		Status: models.StatusConfirmed,
	}

	assert.False(t, IsSlotAvailable(appt.Date, appt.Time, []models.Appointment{appt}))

	appt.Status = models.StatusCancelled
	assert.True(t, IsSlotAvailable(appt.Date, appt.Time, []models.Appointment{appt}))
}
