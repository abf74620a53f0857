package attendance

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Afriels/Presensi-Fix/models"
)

// ScanCode classifies the outcome of a scan.
type ScanCode string

const (
	ScanAccepted         ScanCode = "accepted"
	ScanAlreadyCheckedIn ScanCode = "already_checked_in"
	ScanUnknownStudent   ScanCode = "unknown_student"
)

// ScanOutcome is what the scan screen displays: who scanned, which class,
// the resulting status and the check-in time. For ScanAlreadyCheckedIn,
// CheckIn carries the original (first) check-in time.
type ScanOutcome struct {
	Code    ScanCode                `json:"code"`
	Status  models.AttendanceStatus `json:"status,omitempty"`
	Student *models.Student         `json:"student,omitempty"`
	Class   *models.Class           `json:"class,omitempty"`
	CheckIn string                  `json:"check_in,omitempty"`
}

// ResolveScan converts one scan event into an attendance decision.
//
// The write is a single conditional upsert: it lands only when no check-in
// exists yet for (nis, today), so concurrent scans cannot both win. A prior
// manual record without a check-in (sick, excused) is replaced by the scan;
// a physical scan always takes precedence over a manual entry for that day.
func (s *Service) ResolveScan(nis, scanTime, today string) (*ScanOutcome, error) {
	verr := ValidationError{}
	if nis == "" {
		verr["nis"] = "nis is required"
	}
	if !validDate(today) {
		verr["date"] = "date must be YYYY-MM-DD"
	}
	normTime, ok := normalizeTime(scanTime)
	if !ok {
		verr["time"] = "time must be HH:MM or HH:MM:SS"
	}
	if len(verr) > 0 {
		return nil, verr
	}

	student, err := s.dir.Student(nis)
	if errors.Is(err, ErrNotFound) {
		return &ScanOutcome{Code: ScanUnknownStudent}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("look up student %q: %w", nis, err)
	}

	status, err := s.classify(normTime)
	if err != nil {
		return nil, err
	}

	rec := models.AttendanceRecord{
		ID:        uuid.NewString(),
		StudentID: student.NIS,
		Date:      today,
		CheckIn:   &normTime,
		Status:    status,
	}
	applied, err := s.ledger.CheckIn(rec)
	if err != nil && !errors.Is(err, ErrConflict) {
		return nil, fmt.Errorf("write check-in for %q on %s: %w", nis, today, err)
	}
	if !applied || errors.Is(err, ErrConflict) {
		// Someone (or an earlier scan) already checked in today; report the
		// original time and leave the ledger untouched.
		existing, ferr := s.ledger.Find(student.NIS, today)
		if ferr != nil {
			return nil, fmt.Errorf("read existing check-in for %q on %s: %w", nis, today, ferr)
		}
		out := &ScanOutcome{Code: ScanAlreadyCheckedIn, Status: existing.Status, Student: student}
		if existing.CheckIn != nil {
			out.CheckIn = *existing.CheckIn
		}
		s.attachClass(out, student)
		return out, nil
	}

	out := &ScanOutcome{Code: ScanAccepted, Status: status, Student: student, CheckIn: normTime}
	s.attachClass(out, student)
	return out, nil
}

// classify compares the scan time against the late threshold. The
// comparison is strict: a scan exactly at the threshold is still on time.
func (s *Service) classify(scanTime string) (models.AttendanceStatus, error) {
	th, err := s.settings.Thresholds()
	if err != nil {
		return "", fmt.Errorf("load thresholds: %w", err)
	}
	scanSec, _ := secondsOfDay(scanTime)
	lateSec, ok := secondsOfDay(th.LateTime)
	if !ok {
		return "", fmt.Errorf("invalid late threshold %q", th.LateTime)
	}
	if scanSec > lateSec {
		return models.StatusTerlambat, nil
	}
	return models.StatusHadir, nil
}

// attachClass fills the class for display; a missing class is not an error,
// students may be classless after a class is deleted.
func (s *Service) attachClass(out *ScanOutcome, student *models.Student) {
	if student.ClassID == nil {
		return
	}
	if class, err := s.dir.Class(*student.ClassID); err == nil {
		out.Class = class
	}
}
