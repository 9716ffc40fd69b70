package mariadb

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/go-sql-driver/mysql"

	"github.com/saludlaboral/bunker-backend/config"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect abre la conexión a la base de datos MariaDB.
// Las credenciales se toman del .env a través de config.LoadConfig.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		// Formato DSN: usuario:clave@tcp(host:puerto)/bd?parseTime=true&loc=America%2FCaracas
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=America%%2FCaracas",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("No se pudo abrir la conexión a la base de datos: %v", err)
		}

		if err = db.Ping(); err != nil {
			log.Fatalf("No se pudo hacer ping a la base de datos: %v", err)
		}

		log.Println("Conexión establecida con MariaDB.")
	})

	return db
}

// GetDB devuelve la instancia de conexión ya establecida.
func GetDB() *sql.DB {
	return db
}
