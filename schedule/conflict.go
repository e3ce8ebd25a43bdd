package schedule

import "wavebarber-backend/models"

// IsSlotAvailable reports whether the slot at date+time is free given a
// snapshot of appointments. Only confirmed appointments hold a slot;
// cancelled, completed and no-show ones free it for reuse. The check is an
// existence test: it does not assume date+time uniqueness upstream.
func IsSlotAvailable(date, slot string, appointments []models.Appointment) bool {
	for _, a := range appointments {
		if a.Date == date && a.Time == slot && a.Status == models.StatusConfirmed {
			return false
		}
	}
	return true
}
