// Package attendance owns the scan resolution and reporting rules. It talks
// to storage through narrow interfaces so the rules can be exercised without
// a database.
package attendance

import (
	"errors"
	"sort"
	"strings"

	"github.com/Afriels/Presensi-Fix/models"
)

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("attendance: not found")
	// ErrUnknownStudent is returned when an operation references a NIS with
	// no directory entry.
	ErrUnknownStudent = errors.New("attendance: unknown student")
	// ErrConflict is returned by the ledger when a concurrent writer landed a
	// check-in between our statement being planned and applied. Callers treat
	// it like an already-checked-in outcome.
	ErrConflict = errors.New("attendance: concurrent check-in")
)

// ValidationError reports per-field input problems before anything is
// persisted.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "attendance: invalid input: " + strings.Join(fields, ", ")
}

// Directory is the read-only view of students and classes.
type Directory interface {
	Student(nis string) (*models.Student, error)
	Students(classID string) ([]models.Student, error)
	Class(id string) (*models.Class, error)
	Classes() ([]models.Class, error)
}

// Thresholds are the configured times of day, HH:MM local wall clock.
type Thresholds struct {
	EntryTime string
	LateTime  string
	ExitTime  string
}

// Settings supplies the attendance thresholds.
type Settings interface {
	Thresholds() (Thresholds, error)
}

// Ledger stores at most one AttendanceRecord per (student, date).
type Ledger interface {
	// Find returns the record for (studentID, date), or ErrNotFound.
	Find(studentID, date string) (*models.AttendanceRecord, error)
	// CheckIn atomically inserts rec, or replaces an existing row for the
	// same (student, date) only when that row has no check-in yet. It
	// returns false when a check-in already exists, in which case nothing
	// was written.
	CheckIn(rec models.AttendanceRecord) (bool, error)
	// Upsert writes rec keyed by its surrogate id.
	Upsert(rec *models.AttendanceRecord) error
	// Query returns records with from <= date <= to, optionally filtered by
	// the students' class.
	Query(from, to, classID string) ([]models.AttendanceRecord, error)
	// Delete removes the record with the given id, or returns ErrNotFound.
	Delete(id string) error
}

// Service implements scan resolution, manual entry and reports on top of the
// storage ports.
type Service struct {
	dir      Directory
	ledger   Ledger
	settings Settings
}

func NewService(dir Directory, ledger Ledger, settings Settings) *Service {
	return &Service{dir: dir, ledger: ledger, settings: settings}
}

// DeleteRecord removes an attendance record by id.
func (s *Service) DeleteRecord(id string) error {
	if id == "" {
		return ValidationError{"id": "id is required"}
	}
	return s.ledger.Delete(id)
}
