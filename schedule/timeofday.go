// Package schedule holds the pure slot computations: resolving the next
// occurrence of an operating day, generating slot times for a range,
// merging default and custom ranges into a day's bookable slots, and
// checking a slot against existing appointments. Nothing here touches
// the database or the clock except where a reference instant is passed in.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a time range has start after end.
var ErrInvalidRange = errors.New("time range start is after end")

// TimeOfDay is a wall-clock time with minute granularity.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time format: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid hour: %w", err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid minute: %w", err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time out of range: %s", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TotalMinutes returns the minutes elapsed since midnight.
func (t TimeOfDay) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// AddMinutes returns the time m minutes after t. The result is not
// normalized past midnight; callers stay within one day.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	total := t.TotalMinutes() + m
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Slot kinds. Regular slots sit on the hourly grid; overflow slots
// ("sobreturnos") are the half-hour-aligned extras the owner opens for
// overbooking.
const (
	SlotRegular  = "regular"
	SlotOverflow = "overflow"
)

// Kind classifies a slot time by its alignment.
func (t TimeOfDay) Kind() string {
	if t.Minute == 0 {
		return SlotRegular
	}
	return SlotOverflow
}

// TimeRange is a booking window within one day, inclusive at both ends.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeRange builds a range and rejects start > end with ErrInvalidRange.
func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if end.Before(start) {
		return TimeRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// ParseTimeRange parses a "HH:MM"–"HH:MM" pair, validating order.
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}
