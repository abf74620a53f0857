package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/database"
	"github.com/Afriels/Presensi-Fix/models"
)

type AttendanceHandler struct {
	svc *attendance.Service
}

func NewAttendanceHandler(svc *attendance.Service) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// GET /attendance?start=YYYY-MM-DD&end=YYYY-MM-DD&nis=&statuses=Hadir,Terlambat&class_id=&q=
func (h *AttendanceHandler) List(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	nis := strings.TrimSpace(c.QueryParam("nis"))
	statuses := strings.TrimSpace(c.QueryParam("statuses"))
	classID := strings.TrimSpace(c.QueryParam("class_id"))
	q := strings.TrimSpace(c.QueryParam("q"))

	tx := database.DB.Model(&models.AttendanceRecord{})

	if start != "" && end != "" {
		tx = tx.Where("date >= ? AND date <= ?", start, end)
	}
	if nis != "" {
		tx = tx.Where("student_id = ?", nis)
	}
	if statuses != "" {
		if parts := splitCSV(statuses); len(parts) > 0 {
			tx = tx.Where("status IN ?", parts)
		}
	}
	if classID != "" || q != "" {
		tx = tx.Joins("JOIN students s ON s.nis = attendance_records.student_id")
		if classID != "" {
			tx = tx.Where("s.class_id = ?", classID)
		}
		if q != "" {
			like := "%" + strings.ToLower(q) + "%"
			tx = tx.Where("LOWER(s.nis) LIKE ? OR LOWER(s.name) LIKE ?", like, like)
		}
	}

	var rows []models.AttendanceRecord
	if err := tx.Order("date ASC, student_id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type manualMarkReq struct {
	NIS      string `json:"nis" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Status   string `json:"status" validate:"required"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Notes    string `json:"notes"`
}

// POST /attendance/manual — staff entry for sick/excused/forgotten-card
// cases. Status is taken as given; no late-threshold computation.
func (h *AttendanceHandler) ManualMark(c echo.Context) error {
	var req manualMarkReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rec, err := h.svc.UpsertManual(attendance.ManualEntry{
		StudentID: strings.TrimSpace(req.NIS),
		Date:      strings.TrimSpace(req.Date),
		Status:    models.AttendanceStatus(strings.TrimSpace(req.Status)),
		CheckIn:   strings.TrimSpace(req.CheckIn),
		CheckOut:  strings.TrimSpace(req.CheckOut),
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /attendance/:id
func (h *AttendanceHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteRecord(c.Param("id")); err != nil {
		return coreError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
