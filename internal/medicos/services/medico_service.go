package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/saludlaboral/bunker-backend/internal/medicos/models"
)

type MedicoService struct {
	DB *sql.DB
}

func NewMedicoService(db *sql.DB) *MedicoService {
	return &MedicoService{DB: db}
}

// Authenticate verifica usuario y clave contra la tabla de médicos.
func (s *MedicoService) Authenticate(username, password string) (*models.Medico, error) {
	var medico models.Medico
	query := `
		SELECT id, nombre, username, password, mpps, cmm, created_at
		FROM medicos
		WHERE username = ?
	`
	err := s.DB.QueryRow(query, username).Scan(
		&medico.ID,
		&medico.Nombre,
		&medico.Username,
		&medico.Password,
		&medico.MPPS,
		&medico.CMM,
		&medico.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(medico.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return &medico, nil
}
