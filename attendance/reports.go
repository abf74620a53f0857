package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/Afriels/Presensi-Fix/models"
)

// SynthesizedNote is the note attached to rows the daily report fills in for
// students with no record that day.
const SynthesizedNote = "Tanpa Keterangan"

// DailyRow pairs a student with their effective record for one date. When no
// row is persisted the record is synthesized as Alpa with no id; synthesis is
// read-only and never written back.
type DailyRow struct {
	Student   models.Student          `json:"student"`
	ClassName string                  `json:"class_name"`
	Record    models.AttendanceRecord `json:"record"`
}

// StatusCounts are per-status record counts for one student in a month. Alpa
// counts only explicitly persisted rows: with no school-calendar model there
// is no way to derive absences from missing days, so the monthly recap makes
// no claim about them.
type StatusCounts struct {
	Hadir     int `json:"hadir"`
	Terlambat int `json:"terlambat"`
	Sakit     int `json:"sakit"`
	Ijin      int `json:"ijin"`
	Alpa      int `json:"alpa"`
}

// MonthlyRow is one student's counts for the month.
type MonthlyRow struct {
	Student   models.Student `json:"student"`
	ClassName string         `json:"class_name"`
	Counts    StatusCounts   `json:"counts"`
}

// DailyReport lists every student (optionally one class) with their record
// for date, synthesizing Alpa rows for students who have none. Ordered by
// student name, ties broken by NIS.
func (s *Service) DailyReport(date, classID string) ([]DailyRow, error) {
	if !validDate(date) {
		return nil, ValidationError{"date": "date must be YYYY-MM-DD"}
	}

	students, err := s.dir.Students(classID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	records, err := s.ledger.Query(date, date, classID)
	if err != nil {
		return nil, fmt.Errorf("query records for %s: %w", date, err)
	}
	byStudent := make(map[string]models.AttendanceRecord, len(records))
	for _, r := range records {
		byStudent[r.StudentID] = r
	}
	classNames, err := s.classNames()
	if err != nil {
		return nil, err
	}

	rows := make([]DailyRow, 0, len(students))
	for _, st := range students {
		rec, ok := byStudent[st.NIS]
		if !ok {
			rec = models.AttendanceRecord{
				StudentID: st.NIS,
				Date:      date,
				Status:    models.StatusAlpa,
				Notes:     SynthesizedNote,
			}
		}
		rows = append(rows, DailyRow{Student: st, ClassName: classNames[deref(st.ClassID)], Record: rec})
	}
	sortByStudent(rows, func(r DailyRow) models.Student { return r.Student })
	return rows, nil
}

// MonthlySummary counts persisted records per student and status within
// yearMonth (YYYY-MM), optionally filtered by class.
func (s *Service) MonthlySummary(yearMonth, classID string) ([]MonthlyRow, error) {
	if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return nil, ValidationError{"month": "month must be YYYY-MM"}
	}

	students, err := s.dir.Students(classID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	// Dates are zero-padded strings, so a lexicographic range covers the
	// whole month.
	records, err := s.ledger.Query(yearMonth+"-01", yearMonth+"-31", classID)
	if err != nil {
		return nil, fmt.Errorf("query records for %s: %w", yearMonth, err)
	}
	counts := make(map[string]StatusCounts, len(students))
	for _, r := range records {
		c := counts[r.StudentID]
		switch r.Status {
		case models.StatusHadir:
			c.Hadir++
		case models.StatusTerlambat:
			c.Terlambat++
		case models.StatusSakit:
			c.Sakit++
		case models.StatusIjin:
			c.Ijin++
		case models.StatusAlpa:
			c.Alpa++
		}
		counts[r.StudentID] = c
	}
	classNames, err := s.classNames()
	if err != nil {
		return nil, err
	}

	rows := make([]MonthlyRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, MonthlyRow{Student: st, ClassName: classNames[deref(st.ClassID)], Counts: counts[st.NIS]})
	}
	sortByStudent(rows, func(r MonthlyRow) models.Student { return r.Student })
	return rows, nil
}

func (s *Service) classNames() (map[string]string, error) {
	classes, err := s.dir.Classes()
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	names := make(map[string]string, len(classes))
	for _, c := range classes {
		names[c.ID] = c.Name
	}
	return names, nil
}

func sortByStudent[T any](rows []T, student func(T) models.Student) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := student(rows[i]), student(rows[j])
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.NIS < b.NIS
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
