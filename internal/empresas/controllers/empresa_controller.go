package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saludlaboral/bunker-backend/internal/empresas/services"
)

type EmpresaController struct {
	Service *services.EmpresaService
}

func NewEmpresaController(service *services.EmpresaService) *EmpresaController {
	return &EmpresaController{Service: service}
}

// ListEmpresas devuelve el directorio de empresas. Acepta ?buscar= para
// filtrar por nombre o RIF.
func (ec *EmpresaController) ListEmpresas(c echo.Context) error {
	listado, err := ec.Service.ListarEmpresas(c.QueryParam("buscar"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve companies: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Companies retrieved successfully",
		"data":    listado,
	})
}
