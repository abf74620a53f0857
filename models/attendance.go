package models

import "time"

// AttendanceStatus is the closed set of statuses a daily record can carry.
// Values are stored as-is, so they double as the display strings the
// frontend expects.
type AttendanceStatus string

const (
	StatusHadir     AttendanceStatus = "Hadir"     // on time
	StatusTerlambat AttendanceStatus = "Terlambat" // late
	StatusSakit     AttendanceStatus = "Sakit"     // sick
	StatusIjin      AttendanceStatus = "Ijin"      // excused
	StatusAlpa      AttendanceStatus = "Alpa"      // absent without notice
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusHadir, StatusTerlambat, StatusSakit, StatusIjin, StatusAlpa:
		return true
	default:
		return false
	}
}

// AttendanceRecord holds at most one row per (student, date). The unique
// index backs the first-scan-wins upsert in the ledger.
type AttendanceRecord struct {
	ID        string           `json:"id" gorm:"type:uuid;primaryKey"`
	StudentID string           `json:"student_id" gorm:"column:student_id;size:30;not null;uniqueIndex:idx_attendance_student_date,priority:1"`
	Date      string           `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_student_date,priority:2"` // YYYY-MM-DD
	CheckIn   *string          `json:"check_in" gorm:"size:8"`                                                          // HH:MM:SS
	CheckOut  *string          `json:"check_out" gorm:"size:8"`                                                         // HH:MM:SS, manual entry only
	Status    AttendanceStatus `json:"status" gorm:"size:20;not null"`
	Notes     string           `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
