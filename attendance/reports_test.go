package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/models"
)

func TestDailyReport_SynthesizesAbsentRows(t *testing.T) {
	f := newFixture("07:15")

	_, err := f.svc.ResolveScan("1001", "07:05:00", "2024-03-04")
	require.NoError(t, err)
	writes := f.ledger.Writes()

	rows, err := f.svc.DailyReport("2024-03-04", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by name: Ani before Budi.
	assert.Equal(t, "Ani Lestari", rows[0].Student.Name)
	assert.Equal(t, models.StatusAlpa, rows[0].Record.Status)
	assert.Equal(t, attendance.SynthesizedNote, rows[0].Record.Notes)
	assert.Empty(t, rows[0].Record.ID)
	assert.Nil(t, rows[0].Record.CheckIn)

	assert.Equal(t, "Budi Santoso", rows[1].Student.Name)
	assert.Equal(t, models.StatusHadir, rows[1].Record.Status)
	assert.Equal(t, "VII-A", rows[1].ClassName)

	// Synthesis is read-only: the report never writes, and a second call
	// returns the same thing.
	assert.Equal(t, writes, f.ledger.Writes())
	again, err := f.svc.DailyReport("2024-03-04", "")
	require.NoError(t, err)
	assert.Equal(t, rows, again)
	assert.Equal(t, writes, f.ledger.Writes())
}

func TestDailyReport_OrderNameThenNIS(t *testing.T) {
	f := newFixture("07:15")
	// Same display name, different NIS.
	f.dir.AddStudent(models.Student{NIS: "2002", Name: "Budi Santoso"})
	f.dir.AddStudent(models.Student{NIS: "0999", Name: "Budi Santoso"})

	rows, err := f.svc.DailyReport("2024-03-04", "")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Ani Lestari", rows[0].Student.Name)
	assert.Equal(t, "0999", rows[1].Student.NIS)
	assert.Equal(t, "1001", rows[2].Student.NIS)
	assert.Equal(t, "2002", rows[3].Student.NIS)
}

func TestDailyReport_ClassFilter(t *testing.T) {
	f := newFixture("07:15")
	otherClass := "b1e45c6d-0000-4000-8000-000000000001"
	f.dir.AddClass(models.Class{ID: otherClass, Name: "VIII-B"})
	f.dir.AddStudent(models.Student{NIS: "3001", Name: "Citra Dewi", ClassID: &otherClass})

	rows, err := f.svc.DailyReport("2024-03-04", otherClass)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Citra Dewi", rows[0].Student.Name)
	assert.Equal(t, "VIII-B", rows[0].ClassName)
}

func TestMonthlySummary_Counts(t *testing.T) {
	f := newFixture("07:15")

	seed := []struct {
		date   string
		status models.AttendanceStatus
	}{
		{"2024-03-04", models.StatusHadir},
		{"2024-03-05", models.StatusHadir},
		{"2024-03-06", models.StatusTerlambat},
		{"2024-03-07", models.StatusSakit},
		{"2024-04-01", models.StatusHadir}, // next month, excluded
	}
	for _, s := range seed {
		_, err := f.svc.UpsertManual(attendance.ManualEntry{
			StudentID: "1001",
			Date:      s.date,
			Status:    s.status,
		})
		require.NoError(t, err)
	}

	rows, err := f.svc.MonthlySummary("2024-03", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var budi attendance.MonthlyRow
	for _, r := range rows {
		if r.Student.NIS == "1001" {
			budi = r
		}
	}
	assert.Equal(t, attendance.StatusCounts{Hadir: 2, Terlambat: 1, Sakit: 1, Ijin: 0, Alpa: 0}, budi.Counts)

	// Students without records appear with zero counts; absences are not
	// derived from missing days (no school calendar exists).
	var ani attendance.MonthlyRow
	for _, r := range rows {
		if r.Student.NIS == "1002" {
			ani = r
		}
	}
	assert.Equal(t, attendance.StatusCounts{}, ani.Counts)
}

func TestReports_InvalidInputs(t *testing.T) {
	f := newFixture("07:15")

	_, err := f.svc.DailyReport("yesterday", "")
	var verr attendance.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = f.svc.MonthlySummary("March 2024", "")
	require.ErrorAs(t, err, &verr)
}
