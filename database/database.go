package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Afriels/Presensi-Fix/config"
	"github.com/Afriels/Presensi-Fix/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// The unique index on attendance_records (student_id, date) comes from
	// the model tags; it backs the first-scan-wins upsert in the ledger.
	if err := DB.AutoMigrate(
		&models.Class{},
		&models.Student{},
		&models.AttendanceRecord{},
		&models.AppSettings{},
		&models.AcademicYear{},
		&models.User{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
