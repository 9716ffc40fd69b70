package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saludlaboral/bunker-backend/internal/vigilancia/services"
	"github.com/saludlaboral/bunker-backend/pkg/pdf"
)

type DashboardController struct {
	Service *services.VigilanciaService
}

func NewDashboardController(service *services.VigilanciaService) *DashboardController {
	return &DashboardController{Service: service}
}

// GetDashboard agrega todas las consultas registradas y devuelve el resumen
// analítico del panel. El filtro por empresa llega en ?empresa=; sin filtro se
// agrega sobre todas.
func (dc *DashboardController) GetDashboard(c echo.Context) error {
	empresa := c.QueryParam("empresa")
	if empresa == "" {
		empresa = services.FiltroGeneral
	}

	data := dc.Service.ListarConsultasDetalle()
	resumen := services.ProcesarAnalitica(data, empresa, time.Now())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Dashboard data retrieved successfully",
		"data": map[string]interface{}{
			"filtro":   empresa,
			"empresas": dc.Service.ListarNombresEmpresas(),
			"resumen":  resumen,
		},
	})
}

// GetResumen devuelve el resumen de vigilancia epidemiológica del período en
// curso para una empresa o el agregado general.
func (dc *DashboardController) GetResumen(c echo.Context) error {
	empresa := c.QueryParam("empresa")
	if empresa == "" {
		empresa = services.FiltroGeneral
	}

	ahora := time.Now()
	data := dc.Service.ListarConsultasDetalle()
	resumen := services.ProcesarAnalitica(data, empresa, ahora)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Surveillance summary retrieved successfully",
		"data":    services.ResumenParaVigilancia(resumen, empresa, ahora),
	})
}

// DescargarReporte genera el reporte de vigilancia epidemiológica en PDF y lo
// entrega como descarga.
func (dc *DashboardController) DescargarReporte(c echo.Context) error {
	empresa := c.QueryParam("empresa")
	if empresa == "" {
		empresa = services.FiltroGeneral
	}

	ahora := time.Now()
	data := dc.Service.ListarConsultasDetalle()
	resumen := services.ProcesarAnalitica(data, empresa, ahora)
	vigilancia := services.ResumenParaVigilancia(resumen, empresa, ahora)

	datos := pdf.DatosReporte{
		Empresa:          vigilancia.Empresa,
		Periodo:          vigilancia.Periodo,
		TotalPacientes:   vigilancia.TotalPacientes,
		TotalConsultas:   vigilancia.TotalConsultas,
		IndiceAusentismo: vigilancia.IndiceAusentismo,
	}
	for _, p := range vigilancia.TopPatologias {
		datos.Patologias = append(datos.Patologias, pdf.FilaPatologia{Nombre: p.Nombre, Casos: p.Total})
	}
	for _, g := range vigilancia.Demografia {
		datos.Demografia = append(datos.Demografia, pdf.FilaDemografia{Grupo: g.Grupo, Masc: g.Masc, Fem: g.Fem})
	}

	var buf bytes.Buffer
	if err := pdf.GenerarReporteVigilancia(datos, &buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate report: " + err.Error(),
			"data":    nil,
		})
	}

	nombre := pdf.NombreArchivoReporte(empresa, ahora)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
