package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saludlaboral/bunker-backend/internal/medicos/services"
	"github.com/saludlaboral/bunker-backend/pkg/utils"
)

type MedicoController struct {
	Service *services.MedicoService
}

func NewMedicoController(service *services.MedicoService) *MedicoController {
	return &MedicoController{Service: service}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login autentica al médico y devuelve un token JWT con su identidad profesional.
func (mc *MedicoController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Username and password are required",
			"data":    nil,
		})
	}

	medico, err := mc.Service.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid username or password",
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(
		medico.ID,
		medico.Nombre,
		medico.MPPS,
		medico.CMM,
		medico.Username,
		time.Now().Add(12*time.Hour),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate token",
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login successful",
		"data": map[string]interface{}{
			"id":       medico.ID,
			"nombre":   medico.Nombre,
			"username": medico.Username,
			"mpps":     medico.MPPS,
			"cmm":      medico.CMM,
			"token":    token,
		},
	})
}
