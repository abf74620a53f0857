package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/models"
)

// SettingsStore serves the attendance thresholds and the academic-year
// active flag.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore { return &SettingsStore{db: db} }

var _ attendance.Settings = (*SettingsStore)(nil)

// Thresholds reads the singleton settings row; before staff save one, the
// defaults apply.
func (s *SettingsStore) Thresholds() (attendance.Thresholds, error) {
	var set models.AppSettings
	err := s.db.First(&set, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		set = models.DefaultSettings()
	} else if err != nil {
		return attendance.Thresholds{}, err
	}
	return attendance.Thresholds{
		EntryTime: set.EntryTime,
		LateTime:  set.LateTime,
		ExitTime:  set.ExitTime,
	}, nil
}

// ActivateYear flips the active academic year in one transaction so a
// failure cannot leave zero or two active years.
func (s *SettingsStore) ActivateYear(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AcademicYear{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.AcademicYear{}).
			Where("id = ?", id).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return attendance.ErrNotFound
		}
		return nil
	})
}
