package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkedHours(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		duration time.Duration
		want     float64
	}{
		{"full day", 8 * time.Hour, 8.0},
		{"half hour", 8*time.Hour + 30*time.Minute, 8.5},
		{"rounds to 2dp", 7*time.Hour + 59*time.Minute, 7.98},
		{"short session", 20 * time.Minute, 0.33},
		{"zero", 0, 0.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkedHours(base, base.Add(c.duration))
			assert.InDelta(t, c.want, got, 0.001)
		})
	}
}

func TestWorkedHours_RoundsHalfUp(t *testing.T) {
	in := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	// 9 minutes -> 0.15 hours exactly, 8 minutes -> 0.1333... -> 0.13
	assert.InDelta(t, 0.15, WorkedHours(in, in.Add(9*time.Minute)), 0.001)
	assert.InDelta(t, 0.13, WorkedHours(in, in.Add(8*time.Minute)), 0.001)
}
