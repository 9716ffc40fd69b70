package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saludlaboral/bunker-backend/internal/pacientes/services"
)

type PacienteController struct {
	Service *services.PacienteService
}

func NewPacienteController(service *services.PacienteService) *PacienteController {
	return &PacienteController{Service: service}
}

// ListPacientes devuelve el directorio de pacientes. Acepta ?buscar= para
// filtrar por nombre o cédula.
func (pc *PacienteController) ListPacientes(c echo.Context) error {
	listado, err := pc.Service.ListarPacientes(c.QueryParam("buscar"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve patients: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Patients retrieved successfully",
		"data":    listado,
	})
}
