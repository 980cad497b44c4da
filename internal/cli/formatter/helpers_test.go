package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "00:00"},
		{"under a minute", 42, "00:42"},
		{"25 minutes", 1500, "25:00"},
		{"mid countdown", 1439, "23:59"},
		{"exactly an hour", 3600, "1:00:00"},
		{"past an hour", 5025, "1:23:45"},
		{"negative clamps", -10, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clock(tt.seconds))
		})
	}
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, "45m", Minutes(45))
	assert.Equal(t, "1h", Minutes(60))
	assert.Equal(t, "2h 30m", Minutes(150))
	assert.Equal(t, "0m", Minutes(0))
}
