package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/saludlaboral/bunker-backend/config"
	"github.com/saludlaboral/bunker-backend/internal/routes"
	"github.com/saludlaboral/bunker-backend/pkg/storage/mariadb"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.Init(e, db)

	log.Printf("Servidor escuchando en el puerto %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
