package services

import (
	"database/sql"

	"github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
)

type EmpresaService struct {
	DB *sql.DB
}

func NewEmpresaService(db *sql.DB) *EmpresaService {
	return &EmpresaService{DB: db}
}

// EmpresaListado es una fila del directorio de empresas con su plantilla
// registrada.
type EmpresaListado struct {
	Empresa        models.Empresa `json:"empresa"`
	TotalPacientes int            `json:"total_pacientes"`
}

// ListarEmpresas devuelve el directorio ordenado por nombre. El parámetro
// buscar filtra por nombre o RIF; vacío devuelve todo.
func (s *EmpresaService) ListarEmpresas(buscar string) ([]EmpresaListado, error) {
	query := `
		SELECT
			e.id, e.nombre, e.rif,
			COALESCE(e.sede, ''), COALESCE(e.telefono, ''), e.created_at,
			COUNT(p.id)
		FROM empresas e
		LEFT JOIN pacientes p ON p.empresa_id = e.id
	`
	args := []interface{}{}
	if buscar != "" {
		query += " WHERE e.nombre LIKE ? OR e.rif LIKE ?"
		patron := "%" + buscar + "%"
		args = append(args, patron, patron)
	}
	query += " GROUP BY e.id, e.nombre, e.rif, e.sede, e.telefono, e.created_at ORDER BY e.nombre ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listado := []EmpresaListado{}
	for rows.Next() {
		var fila EmpresaListado
		err := rows.Scan(
			&fila.Empresa.ID,
			&fila.Empresa.Nombre,
			&fila.Empresa.RIF,
			&fila.Empresa.Sede,
			&fila.Empresa.Telefono,
			&fila.Empresa.CreatedAt,
			&fila.TotalPacientes,
		)
		if err != nil {
			return nil, err
		}
		listado = append(listado, fila)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listado, nil
}
