package database

import (
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/models"
)

// LedgerStore is the GORM-backed attendance.Ledger.
type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore { return &LedgerStore{db: db} }

var _ attendance.Ledger = (*LedgerStore)(nil)

func (s *LedgerStore) Find(studentID, date string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := s.db.First(&rec, "student_id = ? AND date = ?", studentID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendance.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckIn is one statement: INSERT ... ON CONFLICT (student_id, date)
// DO UPDATE ... WHERE check_in IS NULL. The row lands either as a new
// record or by replacing a manual record without a check-in; if a check-in
// already exists the statement affects zero rows and nothing changes.
// Being a single statement, two concurrent first scans cannot both win.
func (s *LedgerStore) CheckIn(rec models.AttendanceRecord) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"check_in":   rec.CheckIn,
			"check_out":  nil,
			"status":     rec.Status,
			"notes":      "",
			"updated_at": time.Now(),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "attendance_records.check_in IS NULL"},
		}},
	}).Create(&rec)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return false, attendance.ErrConflict
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *LedgerStore) Upsert(rec *models.AttendanceRecord) error {
	err := s.db.Save(rec).Error
	if isUniqueViolation(err) {
		return attendance.ErrConflict
	}
	return err
}

func (s *LedgerStore) Query(from, to, classID string) ([]models.AttendanceRecord, error) {
	tx := s.db.Model(&models.AttendanceRecord{}).
		Where("date >= ? AND date <= ?", from, to)
	if classID != "" {
		tx = tx.Joins("JOIN students s ON s.nis = attendance_records.student_id").
			Where("s.class_id = ?", classID)
	}
	var rows []models.AttendanceRecord
	if err := tx.Order("date ASC, student_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LedgerStore) Delete(id string) error {
	res := s.db.Delete(&models.AttendanceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return attendance.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (left over only when two writers race past the upsert guard).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
