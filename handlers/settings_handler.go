package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Afriels/Presensi-Fix/database"
	"github.com/Afriels/Presensi-Fix/models"
)

type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler { return &SettingsHandler{} }

// GET /settings — returns the saved singleton, or the defaults before the
// first save.
func (h *SettingsHandler) Get(c echo.Context) error {
	var set models.AppSettings
	err := database.DB.First(&set, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusOK, models.DefaultSettings())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, set)
}

type settingsPayload struct {
	EntryTime  string `json:"entry_time" validate:"required,len=5"`
	LateTime   string `json:"late_time" validate:"required,len=5"`
	ExitTime   string `json:"exit_time" validate:"required,len=5"`
	AppName    string `json:"app_name" validate:"max=100"`
	SchoolName string `json:"school_name" validate:"max=100"`
	LogoURL    string `json:"logo_url" validate:"omitempty,max=255"`
}

// PUT /settings — upserts the singleton row (id = 1).
func (h *SettingsHandler) Update(c echo.Context) error {
	var p settingsPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	for field, v := range map[string]string{"entry_time": p.EntryTime, "late_time": p.LateTime, "exit_time": p.ExitTime} {
		if !validTimeOfDay(v) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":  "VALIDATION_ERROR",
				"fields": map[string]string{field: "must be HH:MM"},
			})
		}
	}

	set := models.AppSettings{
		ID:         1,
		EntryTime:  p.EntryTime,
		LateTime:   p.LateTime,
		ExitTime:   p.ExitTime,
		AppName:    strings.TrimSpace(p.AppName),
		SchoolName: strings.TrimSpace(p.SchoolName),
		LogoURL:    strings.TrimSpace(p.LogoURL),
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&set).Error
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, set)
}

func validTimeOfDay(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh := (int(s[0]-'0'))*10 + int(s[1]-'0')
	mm := (int(s[3]-'0'))*10 + int(s[4]-'0')
	for _, r := range []byte{s[0], s[1], s[3], s[4]} {
		if r < '0' || r > '9' {
			return false
		}
	}
	return hh < 24 && mm < 60
}
