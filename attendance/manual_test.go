package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/models"
)

func TestUpsertManual_InsertThenEditInPlace(t *testing.T) {
	f := newFixture("07:15")

	in := attendance.ManualEntry{
		StudentID: "1001",
		Date:      "2024-03-04",
		Status:    models.StatusIjin,
		Notes:     "acara keluarga",
	}
	first, err := f.svc.UpsertManual(in)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Editing the same day targets the same row, never a duplicate.
	in.Status = models.StatusSakit
	in.Notes = "demam"
	second, err := f.svc.UpsertManual(in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	third, err := f.svc.UpsertManual(in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)

	rows, err := f.ledger.Query("2024-03-04", "2024-03-04", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusSakit, rows[0].Status)
	assert.Equal(t, "demam", rows[0].Notes)
}

func TestUpsertManual_TimesAreNormalized(t *testing.T) {
	f := newFixture("07:15")

	rec, err := f.svc.UpsertManual(attendance.ManualEntry{
		StudentID: "1001",
		Date:      "2024-03-04",
		Status:    models.StatusHadir,
		CheckIn:   "07:05",
		CheckOut:  "15:01",
	})
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "07:05:00", *rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "15:01:00", *rec.CheckOut)
}

func TestUpsertManual_AcceptsEveryValidStatus(t *testing.T) {
	for _, status := range []models.AttendanceStatus{
		models.StatusHadir, models.StatusTerlambat, models.StatusSakit,
		models.StatusIjin, models.StatusAlpa,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture("07:15")
			rec, err := f.svc.UpsertManual(attendance.ManualEntry{
				StudentID: "1001",
				Date:      "2024-03-04",
				Status:    status,
			})
			require.NoError(t, err)
			assert.Equal(t, status, rec.Status)
		})
	}
}

func TestUpsertManual_Validation(t *testing.T) {
	f := newFixture("07:15")

	tests := []struct {
		name  string
		in    attendance.ManualEntry
		field string
	}{
		{"missing student", attendance.ManualEntry{Date: "2024-03-04", Status: models.StatusIjin}, "student_id"},
		{"missing date", attendance.ManualEntry{StudentID: "1001", Status: models.StatusIjin}, "date"},
		{"bogus status", attendance.ManualEntry{StudentID: "1001", Date: "2024-03-04", Status: "Bolos"}, "status"},
		{"bad check_in", attendance.ManualEntry{StudentID: "1001", Date: "2024-03-04", Status: models.StatusHadir, CheckIn: "morning"}, "check_in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpsertManual(tt.in)
			var verr attendance.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tt.field)
		})
	}
	// Nothing was persisted along the way.
	assert.Zero(t, f.ledger.Writes())
}

func TestUpsertManual_UnknownStudent(t *testing.T) {
	f := newFixture("07:15")

	_, err := f.svc.UpsertManual(attendance.ManualEntry{
		StudentID: "9999",
		Date:      "2024-03-04",
		Status:    models.StatusIjin,
	})
	assert.ErrorIs(t, err, attendance.ErrUnknownStudent)
	assert.Zero(t, f.ledger.Writes())
}
