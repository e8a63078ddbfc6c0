package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCeilMillisecond(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"whole millisecond unchanged", base.Add(7 * time.Millisecond), base.Add(7 * time.Millisecond)},
		{"one nanosecond over", base.Add(7*time.Millisecond + time.Nanosecond), base.Add(8 * time.Millisecond)},
		{"sub-millisecond", base.Add(999 * time.Microsecond), base.Add(time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ceilMillisecond(tt.in)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.False(t, got.Before(tt.in))
		})
	}
}

func TestNewContactMessage_CreatedAtUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2025, 3, 14, 11, 26, 53, 500, loc)

	msg := newContactMessage(validSubmission("jane"), now)
	assert.Equal(t, time.UTC, msg.CreatedAt.Location())
	assert.False(t, msg.CreatedAt.Before(now))
}
