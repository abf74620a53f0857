package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"07:15", "07:15:00", true},
		{"07:15:30", "07:15:30", true},
		{"23:59:59", "23:59:59", true},
		{"7:15", "", false},
		{"24:00", "", false},
		{"07:60", "", false},
		{"noon", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeTime(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestSecondsOfDay(t *testing.T) {
	sec, ok := secondsOfDay("07:15:01")
	assert.True(t, ok)
	assert.Equal(t, 7*3600+15*60+1, sec)

	shortSec, ok := secondsOfDay("07:15")
	assert.True(t, ok)
	assert.Equal(t, 7*3600+15*60, shortSec)
	assert.Less(t, shortSec, sec)
}
