// Package inmem holds in-memory implementations of the attendance storage
// ports. Tests use them to exercise the core without a database; the scan
// semantics mirror the SQL ledger's conditional upsert.
package inmem

import (
	"sort"
	"sync"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/models"
)

// Directory is an in-memory attendance.Directory.
type Directory struct {
	mu       sync.RWMutex
	students map[string]models.Student
	classes  map[string]models.Class
}

func NewDirectory() *Directory {
	return &Directory{
		students: map[string]models.Student{},
		classes:  map[string]models.Class{},
	}
}

var _ attendance.Directory = (*Directory)(nil)

func (d *Directory) AddStudent(st models.Student) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.students[st.NIS] = st
}

func (d *Directory) AddClass(c models.Class) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes[c.ID] = c
}

func (d *Directory) Student(nis string) (*models.Student, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	st, ok := d.students[nis]
	if !ok {
		return nil, attendance.ErrNotFound
	}
	return &st, nil
}

func (d *Directory) Students(classID string) ([]models.Student, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Student, 0, len(d.students))
	for _, st := range d.students {
		if classID != "" && (st.ClassID == nil || *st.ClassID != classID) {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NIS < out[j].NIS })
	return out, nil
}

func (d *Directory) Class(id string) (*models.Class, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.classes[id]
	if !ok {
		return nil, attendance.ErrNotFound
	}
	return &c, nil
}

func (d *Directory) Classes() ([]models.Class, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Class, 0, len(d.classes))
	for _, c := range d.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Ledger is an in-memory attendance.Ledger keyed by (student, date).
type Ledger struct {
	mu      sync.Mutex
	byKey   map[string]models.AttendanceRecord
	writes  int
	classOf func(studentID string) string

	// FailWrites, when set, makes every write fail with this error.
	FailWrites error
}

func NewLedger() *Ledger {
	return &Ledger{byKey: map[string]models.AttendanceRecord{}}
}

var _ attendance.Ledger = (*Ledger)(nil)

// BindClasses lets Query filter by class without a join; dir resolves a
// student's class id.
func (l *Ledger) BindClasses(dir *Directory) {
	l.classOf = func(studentID string) string {
		st, err := dir.Student(studentID)
		if err != nil || st.ClassID == nil {
			return ""
		}
		return *st.ClassID
	}
}

// Writes reports how many mutations landed, for asserting read-only paths.
func (l *Ledger) Writes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes
}

func key(studentID, date string) string { return studentID + "|" + date }

func (l *Ledger) Find(studentID, date string) (*models.AttendanceRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.byKey[key(studentID, date)]
	if !ok {
		return nil, attendance.ErrNotFound
	}
	return &rec, nil
}

func (l *Ledger) CheckIn(rec models.AttendanceRecord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWrites != nil {
		return false, l.FailWrites
	}
	k := key(rec.StudentID, rec.Date)
	if existing, ok := l.byKey[k]; ok {
		if existing.CheckIn != nil {
			return false, nil
		}
		// Replace a manual record without check-in, keeping its id.
		rec.ID = existing.ID
	}
	rec.CheckOut = nil
	rec.Notes = ""
	l.byKey[k] = rec
	l.writes++
	return true, nil
}

func (l *Ledger) Upsert(rec *models.AttendanceRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWrites != nil {
		return l.FailWrites
	}
	k := key(rec.StudentID, rec.Date)
	if existing, ok := l.byKey[k]; ok && existing.ID != rec.ID {
		return attendance.ErrConflict
	}
	l.byKey[k] = *rec
	l.writes++
	return nil
}

func (l *Ledger) Query(from, to, classID string) ([]models.AttendanceRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.AttendanceRecord
	for _, rec := range l.byKey {
		if rec.Date < from || rec.Date > to {
			continue
		}
		if classID != "" && (l.classOf == nil || l.classOf(rec.StudentID) != classID) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out, nil
}

func (l *Ledger) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWrites != nil {
		return l.FailWrites
	}
	for k, rec := range l.byKey {
		if rec.ID == id {
			delete(l.byKey, k)
			l.writes++
			return nil
		}
	}
	return attendance.ErrNotFound
}

// Settings serves fixed thresholds.
type Settings struct {
	T attendance.Thresholds
}

func NewSettings(entry, late, exit string) *Settings {
	return &Settings{T: attendance.Thresholds{EntryTime: entry, LateTime: late, ExitTime: exit}}
}

var _ attendance.Settings = (*Settings)(nil)

func (s *Settings) Thresholds() (attendance.Thresholds, error) { return s.T, nil }
