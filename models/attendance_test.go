package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{StatusHadir, StatusTerlambat, StatusSakit, StatusIjin, StatusAlpa} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	for _, s := range []AttendanceStatus{"", "hadir", "Present", "Bolos"} {
		assert.False(t, s.Valid(), "%q should be invalid", s)
	}
}
