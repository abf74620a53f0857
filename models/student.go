package models

import "time"

// Student is keyed by NIS (Nomor Induk Siswa), the number printed on the
// ID card barcode. The NIS is immutable once created.
type Student struct {
	NIS      string  `json:"nis" gorm:"column:nis;primaryKey;size:30"`
	Name     string  `json:"name" gorm:"size:100;not null"`
	ClassID  *string `json:"class_id" gorm:"type:uuid;index"`
	PhotoURL string  `json:"photo_url" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
