package schedule

import (
	"fmt"
	"sort"
)

// RegularStepMinutes is the grid for regular slots; overflow slots are
// opened through custom ranges starting on the half hour.
const RegularStepMinutes = 60

// DefaultRanges holds the stock operating hours per day. Saturday has a
// lunch gap, so its hours are two independent ranges.
var DefaultRanges = map[Weekday][]TimeRange{
	Friday: {
		{Start: TimeOfDay{Hour: 18}, End: TimeOfDay{Hour: 21}},
	},
	Saturday: {
		{Start: TimeOfDay{Hour: 10}, End: TimeOfDay{Hour: 13}},
		{Start: TimeOfDay{Hour: 14}, End: TimeOfDay{Hour: 21}},
	},
}

// Generate produces every slot time t with start <= t <= end on the
// stepMinutes grid anchored at start, both endpoints inclusive. It is
// deterministic and never consults the clock.
func Generate(start, end TimeOfDay, stepMinutes int) ([]TimeOfDay, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", stepMinutes)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	var slots []TimeOfDay
	for cursor := start; !end.Before(cursor); cursor = cursor.AddMinutes(stepMinutes) {
		slots = append(slots, cursor)
	}
	return slots, nil
}

// AvailableSlots merges a day's default operating hours, the owner's custom
// ranges, and the day-enabled flag into the final ordered slot list.
// A disabled day short-circuits to nil before any range work. Each range is
// generated independently so gaps between ranges are respected; overlapping
// ranges union without duplicates.
func AvailableSlots(day Weekday, defaults, custom []TimeRange, enabled bool) []TimeOfDay {
	if !enabled {
		return nil
	}

	seen := make(map[TimeOfDay]struct{})
	var slots []TimeOfDay
	for _, r := range append(append([]TimeRange{}, defaults...), custom...) {
		generated, err := Generate(r.Start, r.End, RegularStepMinutes)
		if err != nil {
			// Ranges are validated at save time; a bad one stored
			// anyway is skipped rather than poisoning the whole day.
			continue
		}
		for _, t := range generated {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			slots = append(slots, t)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}
