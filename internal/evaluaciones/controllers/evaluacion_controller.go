package controllers

import (
	"bytes"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saludlaboral/bunker-backend/internal/common/middlewares"
	"github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
	"github.com/saludlaboral/bunker-backend/internal/evaluaciones/services"
	"github.com/saludlaboral/bunker-backend/pkg/pdf"
	"github.com/saludlaboral/bunker-backend/pkg/utils"
	"github.com/saludlaboral/bunker-backend/ws"
)

type EvaluacionController struct {
	Service *services.EvaluacionService
	Hub     *ws.Hub
	DocsDir string
}

func NewEvaluacionController(service *services.EvaluacionService, hub *ws.Hub, docsDir string) *EvaluacionController {
	return &EvaluacionController{Service: service, Hub: hub, DocsDir: docsDir}
}

// medicoDesdeContexto extrae las claims del médico autenticado.
func medicoDesdeContexto(c echo.Context) (*utils.Claims, bool) {
	claims, ok := c.Get(string(middlewares.ContextKeyClaims)).(*utils.Claims)
	return claims, ok
}

// RegistrarEvaluacion recibe el formulario completo de evaluación, lo registra,
// archiva el certificado de aptitud en disco y notifica por websocket.
func (ec *EvaluacionController) RegistrarEvaluacion(c echo.Context) error {
	var req models.EvaluacionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if req.Paciente.NombreCompleto == "" || req.Paciente.Cedula == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "nombre_completo y cedula del paciente son obligatorios",
			"data":    nil,
		})
	}
	if req.Empresa.Nombre == "" || req.Empresa.RIF == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "nombre y rif de la empresa son obligatorios",
			"data":    nil,
		})
	}
	if req.Consulta.TipoConsulta == "" || req.Consulta.TipoPatologia == "" || req.Consulta.AptitudMedica == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "tipo_consulta, tipo_patologia y aptitud_medica son obligatorios",
			"data":    nil,
		})
	}
	if req.Consulta.DiasReposo < 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "dias_reposo no puede ser negativo",
			"data":    nil,
		})
	}

	claims, ok := medicoDesdeContexto(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Missing or invalid credentials",
			"data":    nil,
		})
	}

	res, err := ec.Service.RegistrarEvaluacion(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to register evaluation: " + err.Error(),
			"data":    nil,
		})
	}

	ahora := time.Now()
	nombreArchivo := pdf.NombreArchivoCertificado(req.Paciente.Cedula, ahora)
	datos := pdf.DatosCertificado{
		PacienteNombre:  req.Paciente.NombreCompleto,
		PacienteCedula:  req.Paciente.Cedula,
		EmpresaNombre:   req.Empresa.Nombre,
		EmpresaRIF:      req.Empresa.RIF,
		TipoConsulta:    req.Consulta.TipoConsulta,
		Aptitud:         req.Consulta.AptitudMedica,
		Observaciones:   req.Consulta.Observaciones,
		CausaReposo:     req.Consulta.CausaReposo,
		DiasReposo:      req.Consulta.DiasReposo,
		MedicoNombre:    claims.Nombre,
		MedicoMPPS:      claims.MPPS,
		MedicoCMM:       claims.CMM,
		ConFirmaDigital: req.ConFirmaDigital,
		Fecha:           ahora,
	}
	if err := ec.archivarCertificado(datos, nombreArchivo); err != nil {
		// el registro ya está confirmado; el archivo se puede regenerar después
		log.Printf("No se pudo archivar el certificado %s: %v", nombreArchivo, err)
	}

	if ec.Hub != nil {
		ec.Hub.EmitirConsulta(map[string]interface{}{
			"consulta_id":   res.ConsultaID,
			"paciente":      req.Paciente.NombreCompleto,
			"empresa":       req.Empresa.Nombre,
			"tipo_consulta": req.Consulta.TipoConsulta,
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  http.StatusCreated,
		"message": "Evaluation registered successfully",
		"data": map[string]interface{}{
			"empresa_id":     res.EmpresaID,
			"paciente_id":    res.PacienteID,
			"consulta_id":    res.ConsultaID,
			"empresa_nueva":  res.EmpresaNueva,
			"paciente_nuevo": res.PacienteNuevo,
			"certificado":    nombreArchivo,
		},
	})
}

func (ec *EvaluacionController) archivarCertificado(d pdf.DatosCertificado, nombre string) error {
	if err := os.MkdirAll(ec.DocsDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(ec.DocsDir, nombre))
	if err != nil {
		return err
	}
	defer f.Close()
	return pdf.GenerarCertificado(d, f)
}

// BuscarPaciente devuelve los datos de un paciente recurrente por cédula para
// precargar el formulario de evaluación.
func (ec *EvaluacionController) BuscarPaciente(c echo.Context) error {
	cedula := c.QueryParam("cedula")
	if len(cedula) < 6 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "cedula must have at least 6 digits",
			"data":    nil,
		})
	}

	rec, err := ec.Service.BuscarPacientePorCedula(cedula)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Paciente no encontrado",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve patient: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Paciente encontrado",
		"data":    rec,
	})
}

// DescargarCertificado regenera el certificado de una consulta existente y lo
// entrega como descarga. El parámetro firma=true agrega la marca de validación
// digital.
func (ec *EvaluacionController) DescargarCertificado(c echo.Context) error {
	idConsulta := c.Param("id")
	if idConsulta == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id is required",
			"data":    nil,
		})
	}

	claims, ok := medicoDesdeContexto(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Missing or invalid credentials",
			"data":    nil,
		})
	}

	ev, err := ec.Service.ObtenerEvaluacion(idConsulta)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Consulta no encontrada",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve evaluation: " + err.Error(),
			"data":    nil,
		})
	}

	datos := pdf.DatosCertificado{
		PacienteNombre:  ev.PacienteNombre,
		PacienteCedula:  ev.PacienteCedula,
		EmpresaNombre:   ev.EmpresaNombre,
		EmpresaRIF:      ev.EmpresaRIF,
		TipoConsulta:    string(ev.TipoConsulta),
		Aptitud:         string(ev.Aptitud),
		Observaciones:   ev.Observaciones,
		CausaReposo:     ev.CausaReposo,
		DiasReposo:      ev.DiasReposo,
		MedicoNombre:    claims.Nombre,
		MedicoMPPS:      claims.MPPS,
		MedicoCMM:       claims.CMM,
		ConFirmaDigital: c.QueryParam("firma") == "true",
		Fecha:           ev.FechaConsulta,
	}

	var buf bytes.Buffer
	if err := pdf.GenerarCertificado(datos, &buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate certificate: " + err.Error(),
			"data":    nil,
		})
	}

	nombre := pdf.NombreArchivoCertificado(ev.PacienteCedula, ev.FechaConsulta)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
