package attendance

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Afriels/Presensi-Fix/models"
)

// ManualEntry is a staff-entered record for excused, sick or
// forgotten-card cases. Status is taken as given, no threshold math.
type ManualEntry struct {
	StudentID string
	Date      string
	Status    models.AttendanceStatus
	CheckIn   string // optional, HH:MM or HH:MM:SS
	CheckOut  string // optional
	Notes     string
}

// UpsertManual creates the record for (StudentID, Date) or edits the
// existing one in place, targeted by its surrogate id so the uniqueness
// invariant survives repeated edits.
func (s *Service) UpsertManual(in ManualEntry) (*models.AttendanceRecord, error) {
	verr := ValidationError{}
	if in.StudentID == "" {
		verr["student_id"] = "student_id is required"
	}
	if !validDate(in.Date) {
		verr["date"] = "date must be YYYY-MM-DD"
	}
	if !in.Status.Valid() {
		verr["status"] = "status must be one of Hadir, Terlambat, Sakit, Ijin, Alpa"
	}
	var checkIn, checkOut *string
	if in.CheckIn != "" {
		if norm, ok := normalizeTime(in.CheckIn); ok {
			checkIn = &norm
		} else {
			verr["check_in"] = "check_in must be HH:MM or HH:MM:SS"
		}
	}
	if in.CheckOut != "" {
		if norm, ok := normalizeTime(in.CheckOut); ok {
			checkOut = &norm
		} else {
			verr["check_out"] = "check_out must be HH:MM or HH:MM:SS"
		}
	}
	if len(verr) > 0 {
		return nil, verr
	}

	if _, err := s.dir.Student(in.StudentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnknownStudent
		}
		return nil, fmt.Errorf("look up student %q: %w", in.StudentID, err)
	}

	rec, err := s.ledger.Find(in.StudentID, in.Date)
	switch {
	case errors.Is(err, ErrNotFound):
		rec = &models.AttendanceRecord{ID: uuid.NewString(), StudentID: in.StudentID, Date: in.Date}
	case err != nil:
		return nil, fmt.Errorf("read record for %q on %s: %w", in.StudentID, in.Date, err)
	}

	rec.Status = in.Status
	rec.CheckIn = checkIn
	rec.CheckOut = checkOut
	rec.Notes = in.Notes
	if err := s.ledger.Upsert(rec); err != nil {
		return nil, fmt.Errorf("save record for %q on %s: %w", in.StudentID, in.Date, err)
	}
	return rec, nil
}
