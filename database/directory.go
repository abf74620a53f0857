package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/models"
)

// DirectoryStore is the GORM-backed attendance.Directory.
type DirectoryStore struct {
	db *gorm.DB
}

func NewDirectoryStore(db *gorm.DB) *DirectoryStore { return &DirectoryStore{db: db} }

var _ attendance.Directory = (*DirectoryStore)(nil)

func (s *DirectoryStore) Student(nis string) (*models.Student, error) {
	var st models.Student
	err := s.db.First(&st, "nis = ?", nis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendance.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *DirectoryStore) Students(classID string) ([]models.Student, error) {
	tx := s.db.Model(&models.Student{})
	if classID != "" {
		tx = tx.Where("class_id = ?", classID)
	}
	var rows []models.Student
	if err := tx.Order("name ASC, nis ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *DirectoryStore) Class(id string) (*models.Class, error) {
	var c models.Class
	err := s.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendance.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DirectoryStore) Classes() ([]models.Class, error) {
	var rows []models.Class
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
