package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/saludlaboral/bunker-backend/config"
	"github.com/saludlaboral/bunker-backend/internal/common/middlewares"
	empresasControllers "github.com/saludlaboral/bunker-backend/internal/empresas/controllers"
	empresasServices "github.com/saludlaboral/bunker-backend/internal/empresas/services"
	evaluacionesControllers "github.com/saludlaboral/bunker-backend/internal/evaluaciones/controllers"
	evaluacionesServices "github.com/saludlaboral/bunker-backend/internal/evaluaciones/services"
	medicosControllers "github.com/saludlaboral/bunker-backend/internal/medicos/controllers"
	medicosServices "github.com/saludlaboral/bunker-backend/internal/medicos/services"
	pacientesControllers "github.com/saludlaboral/bunker-backend/internal/pacientes/controllers"
	pacientesServices "github.com/saludlaboral/bunker-backend/internal/pacientes/services"
	vigilanciaControllers "github.com/saludlaboral/bunker-backend/internal/vigilancia/controllers"
	vigilanciaServices "github.com/saludlaboral/bunker-backend/internal/vigilancia/services"
	"github.com/saludlaboral/bunker-backend/ws"
)

// Init registra todas las rutas del backend sobre Echo.
func Init(e *echo.Echo, db *sql.DB) {
	cfg := config.LoadConfig()

	// Servicios
	medicoService := medicosServices.NewMedicoService(db)
	evaluacionService := evaluacionesServices.NewEvaluacionService(db)
	vigilanciaService := vigilanciaServices.NewVigilanciaService(db)
	pacienteService := pacientesServices.NewPacienteService(db)
	empresaService := empresasServices.NewEmpresaService(db)

	// Controladores
	medicoController := medicosControllers.NewMedicoController(medicoService)
	evaluacionController := evaluacionesControllers.NewEvaluacionController(evaluacionService, ws.HubInstance, cfg.DocsDir)
	dashboardController := vigilanciaControllers.NewDashboardController(vigilanciaService)
	pacienteController := pacientesControllers.NewPacienteController(pacienteService)
	empresaController := empresasControllers.NewEmpresaController(empresaService)

	api := e.Group("/api")

	// Autenticación de médicos (sin JWT)
	medicos := api.Group("/medicos")
	medicos.POST("/login", medicoController.Login)

	// Registro de evaluaciones
	evaluaciones := api.Group("/evaluaciones")
	evaluaciones.POST("", evaluacionController.RegistrarEvaluacion, middlewares.JWTMiddleware())
	evaluaciones.GET("/paciente", evaluacionController.BuscarPaciente, middlewares.JWTMiddleware())

	// Directorios
	api.GET("/pacientes", pacienteController.ListPacientes, middlewares.JWTMiddleware())
	api.GET("/empresas", empresaController.ListEmpresas, middlewares.JWTMiddleware())

	// Vigilancia epidemiológica
	vigilancia := api.Group("/vigilancia")
	vigilancia.GET("/dashboard", dashboardController.GetDashboard, middlewares.JWTMiddleware())
	vigilancia.GET("/resumen", dashboardController.GetResumen, middlewares.JWTMiddleware())
	vigilancia.GET("/reporte", dashboardController.DescargarReporte, middlewares.JWTMiddleware())

	// Documentos
	documentos := api.Group("/documentos")
	documentos.GET("/certificado/:id", evaluacionController.DescargarCertificado, middlewares.JWTMiddleware())

	// WebSocket de actualizaciones en vivo
	e.GET("/ws", ws.ServeWS(ws.HubInstance))
}
