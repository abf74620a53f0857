package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Afriels/Presensi-Fix/attendance"
	"github.com/Afriels/Presensi-Fix/config"
	"github.com/Afriels/Presensi-Fix/database"
	"github.com/Afriels/Presensi-Fix/routes"
)

func main() {
	cfg := config.Load()

	// Fails fast when the database is not up yet.
	database.Connect(cfg)

	svc := attendance.NewService(
		database.NewDirectoryStore(database.DB),
		database.NewLedgerStore(database.DB),
		database.NewSettingsStore(database.DB),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg, svc)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
