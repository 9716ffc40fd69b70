package services

import (
	"database/sql"
	"time"

	"github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
)

type PacienteService struct {
	DB *sql.DB
}

func NewPacienteService(db *sql.DB) *PacienteService {
	return &PacienteService{DB: db}
}

// ConsultaBreve es una entrada del historial clínico resumido del directorio.
type ConsultaBreve struct {
	ID           string               `json:"id"`
	TipoConsulta models.TipoConsulta  `json:"tipo_consulta"`
	Aptitud      models.AptitudMedica `json:"aptitud_medica"`
	Fecha        time.Time            `json:"fecha"`
}

// PacienteListado es una fila del directorio de pacientes: datos del
// trabajador, su empresa y el historial de consultas en orden descendente.
// La última aptitud es la primera entrada del historial.
type PacienteListado struct {
	Paciente      models.Paciente       `json:"paciente"`
	Empresa       *models.Empresa       `json:"empresa,omitempty"`
	Historial     []ConsultaBreve       `json:"historial"`
	UltimaAptitud *models.AptitudMedica `json:"ultima_aptitud,omitempty"`
}

// ListarPacientes devuelve el directorio completo ordenado por nombre. El
// parámetro buscar filtra por nombre o cédula; vacío devuelve todo.
func (s *PacienteService) ListarPacientes(buscar string) ([]PacienteListado, error) {
	query := `
		SELECT
			p.id, p.nombre_completo, p.cedula, p.sexo,
			COALESCE(p.alergias, ''), COALESCE(p.patologias_previas, ''),
			p.fecha_nacimiento, COALESCE(p.telefono, ''), p.created_at,
			e.id, e.nombre, e.rif
		FROM pacientes p
		LEFT JOIN empresas e ON p.empresa_id = e.id
	`
	args := []interface{}{}
	if buscar != "" {
		query += " WHERE p.nombre_completo LIKE ? OR p.cedula LIKE ?"
		patron := "%" + buscar + "%"
		args = append(args, patron, patron)
	}
	query += " ORDER BY p.nombre_completo ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listado := []PacienteListado{}
	indice := make(map[string]int)
	for rows.Next() {
		var (
			fila            PacienteListado
			fechaNacimiento sql.NullTime
			empresaID       sql.NullString
			empresaNombre   sql.NullString
			empresaRIF      sql.NullString
		)
		err := rows.Scan(
			&fila.Paciente.ID,
			&fila.Paciente.NombreCompleto,
			&fila.Paciente.Cedula,
			&fila.Paciente.Sexo,
			&fila.Paciente.Alergias,
			&fila.Paciente.PatologiasPrevias,
			&fechaNacimiento,
			&fila.Paciente.Telefono,
			&fila.Paciente.CreatedAt,
			&empresaID,
			&empresaNombre,
			&empresaRIF,
		)
		if err != nil {
			return nil, err
		}
		if fechaNacimiento.Valid {
			fila.Paciente.FechaNacimiento = &fechaNacimiento.Time
		}
		if empresaID.Valid {
			fila.Empresa = &models.Empresa{
				ID:     empresaID.String,
				Nombre: empresaNombre.String,
				RIF:    empresaRIF.String,
			}
			fila.Paciente.EmpresaID = &empresaID.String
		}
		fila.Historial = []ConsultaBreve{}
		indice[fila.Paciente.ID] = len(listado)
		listado = append(listado, fila)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(listado) == 0 {
		return listado, nil
	}

	if err := s.cargarHistorial(listado, indice, buscar); err != nil {
		return nil, err
	}
	return listado, nil
}

// cargarHistorial adjunta a cada fila sus consultas en orden descendente y
// fija la última aptitud.
func (s *PacienteService) cargarHistorial(listado []PacienteListado, indice map[string]int, buscar string) error {
	query := `
		SELECT c.paciente_id, c.id, c.tipo_consulta, c.aptitud_medica, c.created_at
		FROM consultas c
	`
	args := []interface{}{}
	if buscar != "" {
		query += `
		JOIN pacientes p ON c.paciente_id = p.id
		WHERE p.nombre_completo LIKE ? OR p.cedula LIKE ?`
		patron := "%" + buscar + "%"
		args = append(args, patron, patron)
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pacienteID string
			consulta   ConsultaBreve
		)
		if err := rows.Scan(&pacienteID, &consulta.ID, &consulta.TipoConsulta, &consulta.Aptitud, &consulta.Fecha); err != nil {
			return err
		}
		i, ok := indice[pacienteID]
		if !ok {
			continue
		}
		listado[i].Historial = append(listado[i].Historial, consulta)
		if listado[i].UltimaAptitud == nil {
			a := consulta.Aptitud
			listado[i].UltimaAptitud = &a
		}
	}
	return rows.Err()
}
