package services

import (
	"fmt"
	"strings"

	"wavebarber-backend/models"
)

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full
	}
	return parts[0]
}

func formatPrice(price float64) string {
	// Whole pesos with a dot as thousands separator.
	n := int64(price)
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ConfirmationMessage builds the WhatsApp text sent right after a booking
// is created.
func ConfirmationMessage(a models.Appointment) string {
	return fmt.Sprintf("¡Hola %s! 👋\n\n"+
		"✅ Tu turno en *WAVE Barber* ha sido confirmado\n\n"+
		"💈 *Servicio:* %s\n"+
		"📅 *Fecha:* %s\n"+
		"🕐 *Hora:* %s\n"+
		"💵 *Precio:* $%s\n\n"+
		"📍 Te espero perri\n\n"+
		"_Si necesitas reprogramar, avisame cuanto antes_ 🙏",
		firstName(a.CustomerName), a.ServiceName, a.Date, a.Time, formatPrice(a.ServicePrice))
}

// Reminder24hMessage builds the day-before reminder text.
func Reminder24hMessage(a models.Appointment) string {
	return fmt.Sprintf("¡Hola %s! 👋\n\n"+
		"⏰ *Recordatorio:* Mañana tienes tu turno en *WAVE Barber*\n\n"+
		"💈 *Servicio:* %s\n"+
		"📅 *Fecha:* %s\n"+
		"🕐 *Hora:* %s\n\n"+
		"¡Te esperamos! 💈✨\n\n"+
		"_Si no podes asistir, avísame con tiempo_ 🙏",
		firstName(a.CustomerName), a.ServiceName, a.Date, a.Time)
}

// Reminder2hMessage builds the same-day reminder text.
func Reminder2hMessage(a models.Appointment) string {
	return fmt.Sprintf("¡Hola %s! 👋\n\n"+
		"🔔 *¡Tu turno es en 2 horas!*\n\n"+
		"💈 *Servicio:* %s\n"+
		"🕐 *Hora:* %s\n\n"+
		"📍 Ya estoy preparando todo para atenderte\n\n"+
		"¡Nos vemos pronto! 💈✨",
		firstName(a.CustomerName), a.ServiceName, a.Time)
}
