package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/Presensi-Fix/attendance"
)

type ScanHandler struct {
	svc *attendance.Service
}

func NewScanHandler(svc *attendance.Service) *ScanHandler { return &ScanHandler{svc: svc} }

type scanReq struct {
	NIS  string `json:"nis" validate:"required"`
	Date string `json:"date"` // optional, defaults to the server's local date
	Time string `json:"time"` // optional, defaults to the server's local time
}

// POST /scan — called by the barcode/QR scanner devices.
// Result classes mirror the scan screen: success (checked in), warning
// (already checked in), error (unknown student).
func (h *ScanHandler) Scan(c echo.Context) error {
	var req scanReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	now := time.Now()
	if req.Date == "" {
		req.Date = now.Format("2006-01-02")
	}
	if req.Time == "" {
		req.Time = now.Format("15:04:05")
	}

	out, err := h.svc.ResolveScan(req.NIS, req.Time, req.Date)
	if err != nil {
		return coreError(c, err)
	}

	switch out.Code {
	case attendance.ScanUnknownStudent:
		return c.JSON(http.StatusNotFound, map[string]any{
			"result":  "error",
			"error":   "UNKNOWN_STUDENT",
			"message": fmt.Sprintf("Siswa dengan NIS %s tidak ditemukan.", req.NIS),
		})
	case attendance.ScanAlreadyCheckedIn:
		return c.JSON(http.StatusOK, map[string]any{
			"result":  "warning",
			"message": fmt.Sprintf("Siswa sudah absen masuk pada jam %s.", out.CheckIn),
			"outcome": out,
		})
	default:
		return c.JSON(http.StatusOK, map[string]any{
			"result":  "success",
			"message": fmt.Sprintf("Absensi %s tercatat: %s.", out.Student.Name, out.Status),
			"outcome": out,
		})
	}
}
