package attendance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/database/inmem"
	"github.com/Afriels/Presensi-Fix/models"
)

type fixture struct {
	dir      *inmem.Directory
	ledger   *inmem.Ledger
	settings *inmem.Settings
	svc      *attendance.Service
}

func newFixture(lateTime string) *fixture {
	dir := inmem.NewDirectory()
	ledger := inmem.NewLedger()
	ledger.BindClasses(dir)
	settings := inmem.NewSettings("07:00", lateTime, "15:00")

	classID := "7a6f0f5e-8c7a-4f5f-9f8e-1f2a3b4c5d6e"
	dir.AddClass(models.Class{ID: classID, Name: "VII-A"})
	dir.AddStudent(models.Student{NIS: "1001", Name: "Budi Santoso", ClassID: &classID})
	dir.AddStudent(models.Student{NIS: "1002", Name: "Ani Lestari", ClassID: &classID})

	return &fixture{
		dir:      dir,
		ledger:   ledger,
		settings: settings,
		svc:      attendance.NewService(dir, ledger, settings),
	}
}

func TestResolveScan_AcceptedOnTime(t *testing.T) {
	f := newFixture("07:15")

	out, err := f.svc.ResolveScan("1001", "07:05:12", "2024-03-04")
	require.NoError(t, err)

	assert.Equal(t, attendance.ScanAccepted, out.Code)
	assert.Equal(t, models.StatusHadir, out.Status)
	assert.Equal(t, "07:05:12", out.CheckIn)
	require.NotNil(t, out.Student)
	assert.Equal(t, "Budi Santoso", out.Student.Name)
	require.NotNil(t, out.Class)
	assert.Equal(t, "VII-A", out.Class.Name)

	rec, err := f.ledger.Find("1001", "2024-03-04")
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "07:05:12", *rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, models.StatusHadir, rec.Status)
}

func TestResolveScan_FirstScanWins(t *testing.T) {
	f := newFixture("07:15")

	first, err := f.svc.ResolveScan("1001", "07:05:12", "2024-03-04")
	require.NoError(t, err)
	require.Equal(t, attendance.ScanAccepted, first.Code)
	writesAfterFirst := f.ledger.Writes()

	second, err := f.svc.ResolveScan("1001", "08:00:00", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, attendance.ScanAlreadyCheckedIn, second.Code)
	assert.Equal(t, "07:05:12", second.CheckIn)

	// Repeat scans never mutate the ledger.
	assert.Equal(t, writesAfterFirst, f.ledger.Writes())
	rec, err := f.ledger.Find("1001", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "07:05:12", *rec.CheckIn)
}

func TestResolveScan_LateBoundaryIsStrict(t *testing.T) {
	tests := []struct {
		name     string
		scanTime string
		want     models.AttendanceStatus
	}{
		{"before threshold", "07:14:59", models.StatusHadir},
		{"exactly at threshold", "07:15:00", models.StatusHadir},
		{"one second past", "07:15:01", models.StatusTerlambat},
		{"well past", "08:30:00", models.StatusTerlambat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("07:15:00")
			out, err := f.svc.ResolveScan("1001", tt.scanTime, "2024-03-04")
			require.NoError(t, err)
			require.Equal(t, attendance.ScanAccepted, out.Code)
			assert.Equal(t, tt.want, out.Status)
		})
	}
}

func TestResolveScan_ShortThresholdForm(t *testing.T) {
	// Settings store HH:MM; comparison still works at second resolution.
	f := newFixture("07:15")
	out, err := f.svc.ResolveScan("1001", "07:15:00", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, models.StatusHadir, out.Status)

	out, err = f.svc.ResolveScan("1002", "07:15:01", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, models.StatusTerlambat, out.Status)
}

func TestResolveScan_UnknownStudent(t *testing.T) {
	f := newFixture("07:15")

	out, err := f.svc.ResolveScan("no-such-id", "07:05:00", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, attendance.ScanUnknownStudent, out.Code)
	assert.Zero(t, f.ledger.Writes())
}

func TestResolveScan_ScanReplacesManualRecord(t *testing.T) {
	f := newFixture("07:15")

	// Staff entered Sakit in the morning, then the student showed up and
	// scanned. The scan takes precedence.
	manual, err := f.svc.UpsertManual(attendance.ManualEntry{
		StudentID: "1001",
		Date:      "2024-03-04",
		Status:    models.StatusSakit,
		Notes:     "demam",
	})
	require.NoError(t, err)
	require.Nil(t, manual.CheckIn)

	out, err := f.svc.ResolveScan("1001", "07:20:00", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, attendance.ScanAccepted, out.Code)
	assert.Equal(t, models.StatusTerlambat, out.Status)

	rec, err := f.ledger.Find("1001", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, models.StatusTerlambat, rec.Status)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "07:20:00", *rec.CheckIn)
	assert.Empty(t, rec.Notes)
}

func TestResolveScan_PersistenceFailureSurfaces(t *testing.T) {
	f := newFixture("07:15")
	boom := errors.New("connection reset")
	f.ledger.FailWrites = boom

	_, err := f.svc.ResolveScan("1001", "07:05:00", "2024-03-04")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, err = f.ledger.Find("1001", "2024-03-04")
	assert.ErrorIs(t, err, attendance.ErrNotFound)
}

func TestResolveScan_InputValidation(t *testing.T) {
	f := newFixture("07:15")

	tests := []struct {
		name            string
		nis, time, date string
	}{
		{"empty nis", "", "07:00:00", "2024-03-04"},
		{"bad date", "1001", "07:00:00", "04-03-2024"},
		{"bad time", "1001", "7 o'clock", "2024-03-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ResolveScan(tt.nis, tt.time, tt.date)
			var verr attendance.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Zero(t, f.ledger.Writes())
		})
	}
}
