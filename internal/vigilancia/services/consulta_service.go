package services

import (
	"database/sql"
	"log"

	"github.com/saludlaboral/bunker-backend/internal/vigilancia/models"
)

type VigilanciaService struct {
	DB *sql.DB
}

func NewVigilanciaService(db *sql.DB) *VigilanciaService {
	return &VigilanciaService{DB: db}
}

// ListarConsultasDetalle trae todas las consultas con paciente y empresa
// embebidos, ordenadas por fecha descendente. Un fallo de lectura se
// registra en el log y degrada a un conjunto vacío: el dashboard muestra
// ceros en vez de caerse.
func (s *VigilanciaService) ListarConsultasDetalle() []models.ConsultaDetalle {
	query := `
		SELECT
			c.id, c.tipo_consulta, c.tipo_patologia, c.categoria_reposo,
			c.dias_reposo, c.fecha_consulta,
			p.sexo, p.nombre_completo, p.fecha_nacimiento,
			COALESCE(e.nombre, ''), COALESCE(e.rif, '')
		FROM consultas c
		JOIN pacientes p ON c.paciente_id = p.id
		LEFT JOIN empresas e ON c.empresa_id = e.id
		ORDER BY c.fecha_consulta DESC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		log.Printf("Error consultando el histórico de consultas: %v", err)
		return []models.ConsultaDetalle{}
	}
	defer rows.Close()

	var lista []models.ConsultaDetalle
	for rows.Next() {
		var (
			fila            models.ConsultaDetalle
			fechaNacimiento sql.NullTime
		)
		if err := rows.Scan(
			&fila.ID,
			&fila.TipoConsulta,
			&fila.TipoPatologia,
			&fila.CategoriaReposo,
			&fila.DiasReposo,
			&fila.FechaConsulta,
			&fila.Paciente.Sexo,
			&fila.Paciente.NombreCompleto,
			&fechaNacimiento,
			&fila.Empresa.Nombre,
			&fila.Empresa.RIF,
		); err != nil {
			log.Printf("Error leyendo fila de consulta: %v", err)
			return []models.ConsultaDetalle{}
		}
		if fechaNacimiento.Valid {
			t := fechaNacimiento.Time
			fila.Paciente.FechaNacimiento = &t
		}
		lista = append(lista, fila)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error recorriendo consultas: %v", err)
		return []models.ConsultaDetalle{}
	}
	if lista == nil {
		lista = []models.ConsultaDetalle{}
	}
	return lista
}

// ListarNombresEmpresas devuelve los nombres para el filtro maestro del
// dashboard. Mismo modo de fallo: log y lista vacía.
func (s *VigilanciaService) ListarNombresEmpresas() []string {
	rows, err := s.DB.Query("SELECT nombre FROM empresas ORDER BY nombre ASC")
	if err != nil {
		log.Printf("Error consultando empresas: %v", err)
		return []string{}
	}
	defer rows.Close()

	var nombres []string
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			log.Printf("Error leyendo empresa: %v", err)
			return []string{}
		}
		nombres = append(nombres, nombre)
	}
	if nombres == nil {
		nombres = []string{}
	}
	return nombres
}
