package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOccurrence(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		day  Weekday
		ref  time.Time
		want time.Time
	}{
		{
			name: "wednesday resolves to the coming friday",
			day:  Friday,
			ref:  time.Date(2025, 7, 30, 15, 0, 0, 0, loc), // Wednesday
			want: time.Date(2025, 8, 1, 0, 0, 0, 0, loc),
		},
		{
			name: "wednesday resolves to the coming saturday",
			day:  Saturday,
			ref:  time.Date(2025, 7, 30, 15, 0, 0, 0, loc),
			want: time.Date(2025, 8, 2, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday wraps to next friday",
			day:  Friday,
			ref:  time.Date(2025, 8, 3, 9, 0, 0, 0, loc), // Sunday
			want: time.Date(2025, 8, 8, 0, 0, 0, 0, loc),
		},
		{
			// Pinned policy: a reference already on the target weekday
			// keeps that same date, even late in the evening.
			name: "friday reference stays on the same friday",
			day:  Friday,
			ref:  time.Date(2025, 8, 1, 23, 30, 0, 0, loc),
			want: time.Date(2025, 8, 1, 0, 0, 0, 0, loc),
		},
		{
			name: "saturday reference stays on the same saturday",
			day:  Saturday,
			ref:  time.Date(2025, 8, 2, 8, 0, 0, 0, loc),
			want: time.Date(2025, 8, 2, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.day, tt.ref)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.day.timeWeekday(), got.Weekday())

			// Normalized to midnight so it combines with any TimeOfDay.
			h, m, s := got.Clock()
			assert.Zero(t, h)
			assert.Zero(t, m)
			assert.Zero(t, s)
		})
	}
}

func TestNextOccurrenceAlwaysMatchesWeekday(t *testing.T) {
	ref := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, day := range Weekdays {
		for offset := 0; offset < 14; offset++ {
			got := NextOccurrence(day, ref.AddDate(0, 0, offset))
			require.Equal(t, day.timeWeekday(), got.Weekday(),
				"day %s offset %d", day, offset)
		}
	}
}

func TestFormatDateLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), "viernes 1 de agosto"},
		{time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC), "sábado 2 de agosto"},
		{time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), "viernes 19 de diciembre"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDateLabel(tt.date))
	}
}

func TestParseDateLabel(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("round trip with slot time", func(t *testing.T) {
		got := ParseDateLabel("viernes 1 de agosto", "18:00", now)
		assert.Equal(t, time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC), got)
	})

	t.Run("recent past stays in the current year", func(t *testing.T) {
		got := ParseDateLabel("sábado 5 de julio", "10:00", now)
		assert.Equal(t, 2025, got.Year())
	})

	t.Run("far past rolls over to next year", func(t *testing.T) {
		// January seen from mid-August is more than six months back.
		got := ParseDateLabel("viernes 10 de enero", "18:00", now)
		assert.Equal(t, 2026, got.Year())
	})

	t.Run("alternate setiembre spelling", func(t *testing.T) {
		got := ParseDateLabel("viernes 5 de setiembre", "19:00", now)
		assert.Equal(t, time.September, got.Month())
	})

	t.Run("garbage label yields zero time", func(t *testing.T) {
		assert.True(t, ParseDateLabel("not a date", "18:00", now).IsZero())
	})

	t.Run("missing slot time defaults to midnight", func(t *testing.T) {
		got := ParseDateLabel("viernes 1 de agosto", "", now)
		assert.Equal(t, 0, got.Hour())
	})
}
