package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/Presensi-Fix/attendance"
)

type ReportHandler struct {
	svc *attendance.Service
}

func NewReportHandler(svc *attendance.Service) *ReportHandler { return &ReportHandler{svc: svc} }

// GET /reports/daily?date=YYYY-MM-DD&class_id=
func (h *ReportHandler) Daily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	rows, err := h.svc.DailyReport(date, strings.TrimSpace(c.QueryParam("class_id")))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"date": date, "rows": rows})
}

// GET /reports/monthly?month=YYYY-MM&class_id=
func (h *ReportHandler) Monthly(c echo.Context) error {
	month := strings.TrimSpace(c.QueryParam("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	rows, err := h.svc.MonthlySummary(month, strings.TrimSpace(c.QueryParam("class_id")))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"month": month, "rows": rows})
}

// GET /reports/daily/export — CSV in the layout the report screens print.
func (h *ReportHandler) ExportDaily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	rows, err := h.svc.DailyReport(date, strings.TrimSpace(c.QueryParam("class_id")))
	if err != nil {
		return coreError(c, err)
	}

	setCSVHeaders(c, fmt.Sprintf("laporan-harian-%s.csv", date))
	w := csv.NewWriter(c.Response())
	_ = w.Write([]string{"NIS", "Nama", "Kelas", "Status", "Jam Masuk", "Jam Pulang", "Keterangan"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.Student.NIS,
			r.Student.Name,
			r.ClassName,
			string(r.Record.Status),
			orDash(r.Record.CheckIn),
			orDash(r.Record.CheckOut),
			r.Record.Notes,
		})
	}
	w.Flush()
	return w.Error()
}

// GET /reports/monthly/export
func (h *ReportHandler) ExportMonthly(c echo.Context) error {
	month := strings.TrimSpace(c.QueryParam("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	rows, err := h.svc.MonthlySummary(month, strings.TrimSpace(c.QueryParam("class_id")))
	if err != nil {
		return coreError(c, err)
	}

	setCSVHeaders(c, fmt.Sprintf("rekap-bulanan-%s.csv", month))
	w := csv.NewWriter(c.Response())
	_ = w.Write([]string{"NIS", "Nama", "Kelas", "Hadir", "Terlambat", "Sakit", "Ijin", "Alpa"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.Student.NIS,
			r.Student.Name,
			r.ClassName,
			fmt.Sprint(r.Counts.Hadir),
			fmt.Sprint(r.Counts.Terlambat),
			fmt.Sprint(r.Counts.Sakit),
			fmt.Sprint(r.Counts.Ijin),
			fmt.Sprint(r.Counts.Alpa),
		})
	}
	w.Flush()
	return w.Error()
}

func setCSVHeaders(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
