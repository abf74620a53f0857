package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/config"
	"github.com/Afriels/Presensi-Fix/handlers"
	"github.com/Afriels/Presensi-Fix/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, svc *attendance.Service) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	scan := handlers.NewScanHandler(svc)
	att := handlers.NewAttendanceHandler(svc)
	rep := handlers.NewReportHandler(svc)
	std := handlers.NewStudentHandler()
	cls := handlers.NewClassHandler()
	set := handlers.NewSettingsHandler()
	ay := handlers.NewAcademicYearHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/login", auth.Login)

	// ===== Scanner devices (static key) =====
	e.POST("/scan", scan.Scan, middlewares.RequireScanKey(cfg.ScanAPIKey))

	// ===== Staff (admin or teacher) =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	staff := e.Group("", authMW, middlewares.RequireRole("teacher", "admin"))

	staff.GET("/students", std.List)
	staff.GET("/students/:nis", std.Get)
	staff.GET("/classes", cls.List)

	staff.GET("/attendance", att.List)
	staff.POST("/attendance/manual", att.ManualMark)
	staff.DELETE("/attendance/:id", att.Delete)

	staff.GET("/reports/daily", rep.Daily)
	staff.GET("/reports/daily/export", rep.ExportDaily)
	staff.GET("/reports/monthly", rep.Monthly)
	staff.GET("/reports/monthly/export", rep.ExportMonthly)

	staff.GET("/settings", set.Get)
	staff.GET("/academic-years", ay.List)

	// ===== Admin only =====
	admin := e.Group("", authMW, middlewares.RequireRole("admin"))

	admin.POST("/students", std.Create)
	admin.PUT("/students/:nis", std.Update)
	admin.DELETE("/students/:nis", std.Delete)
	admin.POST("/students/import", std.Import)

	admin.POST("/classes", cls.Create)
	admin.PUT("/classes/:id", cls.Update)
	admin.DELETE("/classes/:id", cls.Delete)

	admin.PUT("/settings", set.Update)

	admin.POST("/academic-years", ay.Create)
	admin.PUT("/academic-years/:id", ay.Update)
	admin.POST("/academic-years/:id/activate", ay.Activate)
	admin.DELETE("/academic-years/:id", ay.Delete)
}
