package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Weekday is one of the two operating days. The shop never schedules on
// any other day of the week.
type Weekday string

const (
	Friday   Weekday = "friday"
	Saturday Weekday = "saturday"
)

// Weekdays lists the operating days in calendar order.
var Weekdays = []Weekday{Friday, Saturday}

// ValidWeekday reports whether s names an operating day.
func ValidWeekday(s string) bool {
	return s == string(Friday) || s == string(Saturday)
}

func (d Weekday) timeWeekday() time.Weekday {
	if d == Saturday {
		return time.Saturday
	}
	return time.Friday
}

// Label returns the Spanish display name of the day.
func (d Weekday) Label() string {
	if d == Saturday {
		return "Sábado"
	}
	return "Viernes"
}

// A reference instant that already falls on the target weekday resolves to
// that same date: same-day booking stays open for the whole day. Changing
// this to 7 would skip to the following week instead.
const sameDayOffset = 0

// NextOccurrence resolves the calendar date of the next occurrence of the
// given weekday, counting from ref. The result is normalized to midnight
// in ref's location so it can be combined with any TimeOfDay.
func NextOccurrence(day Weekday, ref time.Time) time.Time {
	delta := (int(day.timeWeekday()) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = sameDayOffset
	}
	target := ref.AddDate(0, 0, delta)
	year, month, d := target.Date()
	return time.Date(year, month, d, 0, 0, 0, 0, ref.Location())
}

var spanishWeekdays = []string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// monthIndex covers the common "setiembre" spelling too.
var monthIndex = func() map[string]int {
	m := make(map[string]int, len(spanishMonths)+1)
	for i, name := range spanishMonths {
		m[name] = i
	}
	m["setiembre"] = 8
	return m
}()

// FormatDateLabel renders a date the way appointments store it:
// "viernes 1 de agosto". The label carries no year.
func FormatDateLabel(t time.Time) string {
	return fmt.Sprintf("%s %d de %s",
		spanishWeekdays[int(t.Weekday())], t.Day(), spanishMonths[int(t.Month())-1])
}

var dateLabelRe = regexp.MustCompile(`(\d{1,2})\s+de\s+([a-záéíóúñ]+)`)

// pastThreshold drives the year reconstruction below: a candidate date more
// than six months in the past is assumed to belong to the next year.
// A heuristic, not a guarantee; kept in one place so it is easy to audit.
const pastThreshold = 6 * 30 * 24 * time.Hour

// ParseDateLabel reconstructs a full timestamp from a stored date label and
// slot time. Labels carry day and month but no year, so the year is guessed
// relative to now using pastThreshold. Returns the zero time when the label
// does not parse.
func ParseDateLabel(label, slot string, now time.Time) time.Time {
	m := dateLabelRe.FindStringSubmatch(strings.ToLower(label))
	if m == nil {
		return time.Time{}
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}
	}
	monthIdx, ok := monthIndex[m[2]]
	if !ok {
		return time.Time{}
	}

	hour, minute := 0, 0
	if t, err := ParseTimeOfDay(slot); err == nil {
		hour, minute = t.Hour, t.Minute
	}

	candidate := time.Date(now.Year(), time.Month(monthIdx+1), day, hour, minute, 0, 0, now.Location())
	if candidate.Before(now.Add(-pastThreshold)) {
		candidate = time.Date(now.Year()+1, time.Month(monthIdx+1), day, hour, minute, 0, 0, now.Location())
	}
	return candidate
}
