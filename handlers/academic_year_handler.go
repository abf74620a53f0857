package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/database"
	"github.com/Afriels/Presensi-Fix/models"
)

type AcademicYearHandler struct{}

func NewAcademicYearHandler() *AcademicYearHandler { return &AcademicYearHandler{} }

type academicYearPayload struct {
	Year     string `json:"year" validate:"required,max=9"`
	Semester string `json:"semester" validate:"required,oneof=Ganjil Genap"`
}

// GET /academic-years
func (h *AcademicYearHandler) List(c echo.Context) error {
	var items []models.AcademicYear
	if err := database.DB.Order("year DESC, semester ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /academic-years — the first year ever created becomes active.
func (h *AcademicYearHandler) Create(c echo.Context) error {
	var p academicYearPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}

	var count int64
	if err := database.DB.Model(&models.AcademicYear{}).Count(&count).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED"})
	}
	item := models.AcademicYear{
		ID:       uuid.NewString(),
		Year:     strings.TrimSpace(p.Year),
		Semester: p.Semester,
		IsActive: count == 0,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, item)
}

// PUT /academic-years/:id — edits label and semester only; the active flag
// moves through Activate.
func (h *AcademicYearHandler) Update(c echo.Context) error {
	var existing models.AcademicYear
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	var p academicYearPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	existing.Year = strings.TrimSpace(p.Year)
	existing.Semester = p.Semester
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// POST /academic-years/:id/activate — one transaction deactivates the
// previous year and activates this one, so a failure cannot leave zero or
// two active years.
func (h *AcademicYearHandler) Activate(c echo.Context) error {
	store := database.NewSettingsStore(database.DB)
	if err := store.ActivateYear(c.Param("id")); err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"activated": c.Param("id")})
}

// DELETE /academic-years/:id
func (h *AcademicYearHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.AcademicYear{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
