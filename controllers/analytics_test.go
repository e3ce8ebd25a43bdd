package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wavebarber-backend/schedule"
)

func TestGrowthPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "both zero", current: 0, previous: 0, want: 0},
		{name: "from zero to revenue", current: 5000, previous: 0, want: 100},
		{name: "doubled", current: 20000, previous: 10000, want: 100},
		{name: "halved is negative", current: 5000, previous: 10000, want: -50},
		{name: "flat", current: 10000, previous: 10000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, growthPercentage(tt.current, tt.previous), 0.001)
		})
	}
}

func TestContainsSlot(t *testing.T) {
	slots := []schedule.TimeOfDay{
		{Hour: 18}, {Hour: 19}, {Hour: 20}, {Hour: 21},
	}

	assert.True(t, containsSlot(slots, schedule.TimeOfDay{Hour: 19}))
	assert.False(t, containsSlot(slots, schedule.TimeOfDay{Hour: 19, Minute: 30}))
	assert.False(t, containsSlot(nil, schedule.TimeOfDay{Hour: 18}))
}
