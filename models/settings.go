package models

import "time"

// Default thresholds used until staff save their own settings.
const (
	DefaultEntryTime = "07:00"
	DefaultLateTime  = "07:15"
	DefaultExitTime  = "15:00"
)

// AppSettings is a singleton row (id = 1) holding the attendance time
// thresholds plus school branding. Times are local wall clock HH:MM.
type AppSettings struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	EntryTime  string `json:"entry_time" gorm:"size:5;not null"`
	LateTime   string `json:"late_time" gorm:"size:5;not null"`
	ExitTime   string `json:"exit_time" gorm:"size:5;not null"`
	AppName    string `json:"app_name" gorm:"size:100"`
	SchoolName string `json:"school_name" gorm:"size:100"`
	LogoURL    string `json:"logo_url" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSettings returns the singleton with its default thresholds.
func DefaultSettings() AppSettings {
	return AppSettings{
		ID:        1,
		EntryTime: DefaultEntryTime,
		LateTime:  DefaultLateTime,
		ExitTime:  DefaultExitTime,
	}
}
