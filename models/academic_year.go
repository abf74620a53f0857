package models

import "time"

const (
	SemesterGanjil = "Ganjil"
	SemesterGenap  = "Genap"
)

// AcademicYear labels a school year ("2023/2024") and semester. At most one
// row is active at a time; the swap is done in a single transaction.
type AcademicYear struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	Year     string `json:"year" gorm:"size:9;not null"`
	Semester string `json:"semester" gorm:"size:10;not null"` // Ganjil | Genap
	IsActive bool   `json:"is_active" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
