package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"zero padded", time.Date(2026, 10, 16, 7, 5, 9, 0, time.Local), "07:05:09"},
		{"midnight", time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), "00:00:00"},
		{"24 hour", time.Date(2026, 1, 1, 23, 59, 59, 999999999, time.Local), "23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatConvertsToLocal(t *testing.T) {
	instant := time.Date(2026, 10, 16, 7, 5, 9, 0, time.Local)
	assert.Equal(t, "07:05:09", Format(instant.UTC()))
}
