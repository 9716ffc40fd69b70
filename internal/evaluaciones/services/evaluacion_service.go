package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
)

type EvaluacionService struct {
	DB *sql.DB
}

func NewEvaluacionService(db *sql.DB) *EvaluacionService {
	return &EvaluacionService{DB: db}
}

// parseFechaOpcional convierte "YYYY-MM-DD" en *time.Time; vacío => nil.
func parseFechaOpcional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RegistrarEvaluacion ejecuta la secuencia completa de registro dentro de una
// transacción: resuelve la empresa por RIF, el paciente por cédula, inserta
// los antecedentes laborales válidos y finalmente la consulta.
func (s *EvaluacionService) RegistrarEvaluacion(req models.EvaluacionRequest) (models.ResultadoEvaluacion, error) {
	var res models.ResultadoEvaluacion

	fechaNacimiento, err := parseFechaOpcional(req.Paciente.FechaNacimiento)
	if err != nil {
		return res, fmt.Errorf("fecha_nacimiento inválida: use el formato YYYY-MM-DD")
	}
	inicioReposo, err := parseFechaOpcional(req.Consulta.FechaInicioReposo)
	if err != nil {
		return res, fmt.Errorf("fecha_inicio_reposo inválida: use el formato YYYY-MM-DD")
	}
	finReposo, err := parseFechaOpcional(req.Consulta.FechaFinReposo)
	if err != nil {
		return res, fmt.Errorf("fecha_fin_reposo inválida: use el formato YYYY-MM-DD")
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return res, err
	}

	// 1. Empresa por RIF; si no existe se inserta.
	var empresaID string
	err = tx.QueryRow("SELECT id FROM empresas WHERE rif = ?", req.Empresa.RIF).Scan(&empresaID)
	switch {
	case err == sql.ErrNoRows:
		empresaID = uuid.NewString()
		_, err = tx.Exec(
			"INSERT INTO empresas (id, nombre, rif, created_at) VALUES (?, ?, ?, ?)",
			empresaID, req.Empresa.Nombre, req.Empresa.RIF, time.Now(),
		)
		if err != nil {
			tx.Rollback()
			return res, err
		}
		res.EmpresaNueva = true
	case err != nil:
		tx.Rollback()
		return res, err
	}
	res.EmpresaID = empresaID

	// 2. Paciente por cédula; si no existe se inserta asociado a la empresa.
	// Al paciente recurrente no se le actualizan campos en este flujo.
	var pacienteID string
	err = tx.QueryRow("SELECT id FROM pacientes WHERE cedula = ?", req.Paciente.Cedula).Scan(&pacienteID)
	switch {
	case err == sql.ErrNoRows:
		pacienteID = uuid.NewString()
		_, err = tx.Exec(
			`INSERT INTO pacientes
				(id, nombre_completo, cedula, sexo, alergias, patologias_previas, fecha_nacimiento, telefono, empresa_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pacienteID,
			req.Paciente.NombreCompleto,
			req.Paciente.Cedula,
			req.Paciente.Sexo,
			req.Paciente.Alergias,
			req.Paciente.PatologiasPrevias,
			fechaNacimiento,
			req.Paciente.Telefono,
			empresaID,
			time.Now(),
		)
		if err != nil {
			tx.Rollback()
			return res, err
		}
		res.PacienteNuevo = true
	case err != nil:
		tx.Rollback()
		return res, err
	}
	res.PacienteID = pacienteID

	// 3. Antecedentes laborales: solo las filas con empresa y cargo,
	// numeradas en el orden de entrada comenzando en 1.
	orden := 0
	for _, ant := range req.Antecedentes {
		if ant.Empresa == "" || ant.Cargo == "" {
			continue
		}
		orden++
		_, err = tx.Exec(
			`INSERT INTO antecedentes_laborales
				(id, paciente_id, orden, empresa_anterior, cargo_desempenado, tiempo_servicio, riesgos_expuestos)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), pacienteID, orden,
			ant.Empresa, ant.Cargo, ant.TiempoServicio, ant.RiesgosExpuestos,
		)
		if err != nil {
			tx.Rollback()
			return res, err
		}
	}

	// 4. Consulta, con tiene_reposo derivado de los días.
	consultaID := uuid.NewString()
	ahora := time.Now()
	_, err = tx.Exec(
		`INSERT INTO consultas
			(id, paciente_id, empresa_id, tipo_consulta, tipo_patologia, categoria_reposo,
			 tiene_reposo, dias_reposo, observaciones, discapacidad_detectada,
			 referencia_centro_especializado, aptitud_medica, examen_fisico,
			 riesgos_ocupacionales, fecha_inicio_reposo, fecha_fin_reposo, causa_reposo,
			 fecha_consulta, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		consultaID, pacienteID, empresaID,
		req.Consulta.TipoConsulta,
		req.Consulta.TipoPatologia,
		req.Consulta.CategoriaReposo,
		req.Consulta.DiasReposo > 0,
		req.Consulta.DiasReposo,
		req.Consulta.Observaciones,
		req.Consulta.DiscapacidadDetectada,
		req.Consulta.ReferenciaCentroEspecializado,
		req.Consulta.AptitudMedica,
		req.Consulta.ExamenFisico,
		req.Consulta.RiesgosOcupacionales,
		inicioReposo,
		finReposo,
		req.Consulta.CausaReposo,
		ahora,
		ahora,
	)
	if err != nil {
		tx.Rollback()
		return res, err
	}

	if err = tx.Commit(); err != nil {
		return res, err
	}

	res.ConsultaID = consultaID
	return res, nil
}

// BuscarPacientePorCedula es la consulta asistida del formulario: devuelve el
// paciente, su empresa y su última aptitud registrada. Sin efectos de escritura.
func (s *EvaluacionService) BuscarPacientePorCedula(cedula string) (*models.PacienteRecurrente, error) {
	query := `
		SELECT
			p.id, p.nombre_completo, p.cedula, p.sexo,
			COALESCE(p.alergias, ''), COALESCE(p.patologias_previas, ''),
			p.fecha_nacimiento, COALESCE(p.telefono, ''),
			e.id, e.nombre, e.rif
		FROM pacientes p
		LEFT JOIN empresas e ON p.empresa_id = e.id
		WHERE p.cedula = ?
	`
	var (
		rec             models.PacienteRecurrente
		fechaNacimiento sql.NullTime
		empresaID       sql.NullString
		empresaNombre   sql.NullString
		empresaRIF      sql.NullString
	)
	err := s.DB.QueryRow(query, cedula).Scan(
		&rec.Paciente.ID,
		&rec.Paciente.NombreCompleto,
		&rec.Paciente.Cedula,
		&rec.Paciente.Sexo,
		&rec.Paciente.Alergias,
		&rec.Paciente.PatologiasPrevias,
		&fechaNacimiento,
		&rec.Paciente.Telefono,
		&empresaID,
		&empresaNombre,
		&empresaRIF,
	)
	if err != nil {
		return nil, err
	}
	if fechaNacimiento.Valid {
		rec.Paciente.FechaNacimiento = &fechaNacimiento.Time
	}
	if empresaID.Valid {
		rec.Empresa = &models.Empresa{
			ID:     empresaID.String,
			Nombre: empresaNombre.String,
			RIF:    empresaRIF.String,
		}
		rec.Paciente.EmpresaID = &empresaID.String
	}

	var ultima models.AptitudMedica
	err = s.DB.QueryRow(
		"SELECT aptitud_medica FROM consultas WHERE paciente_id = ? ORDER BY created_at DESC LIMIT 1",
		rec.Paciente.ID,
	).Scan(&ultima)
	switch {
	case err == sql.ErrNoRows:
		// paciente sin consultas previas
	case err != nil:
		return nil, err
	default:
		rec.UltimaAptitud = &ultima
	}

	return &rec, nil
}

// EvaluacionCertificado reúne los campos de una consulta que necesita el
// certificado de aptitud.
type EvaluacionCertificado struct {
	PacienteNombre string
	PacienteCedula string
	EmpresaNombre  string
	EmpresaRIF     string
	TipoConsulta   models.TipoConsulta
	Aptitud        models.AptitudMedica
	Observaciones  string
	ExamenFisico   string
	CausaReposo    string
	DiasReposo     int
	FechaConsulta  time.Time
}

// ObtenerEvaluacion busca una consulta resuelta con su paciente y empresa.
func (s *EvaluacionService) ObtenerEvaluacion(idConsulta string) (*EvaluacionCertificado, error) {
	query := `
		SELECT
			p.nombre_completo, p.cedula,
			e.nombre, e.rif,
			c.tipo_consulta, c.aptitud_medica,
			COALESCE(c.observaciones, ''), COALESCE(c.examen_fisico, ''),
			COALESCE(c.causa_reposo, ''), c.dias_reposo, c.fecha_consulta
		FROM consultas c
		JOIN pacientes p ON c.paciente_id = p.id
		JOIN empresas e ON c.empresa_id = e.id
		WHERE c.id = ?
	`
	var ev EvaluacionCertificado
	err := s.DB.QueryRow(query, idConsulta).Scan(
		&ev.PacienteNombre,
		&ev.PacienteCedula,
		&ev.EmpresaNombre,
		&ev.EmpresaRIF,
		&ev.TipoConsulta,
		&ev.Aptitud,
		&ev.Observaciones,
		&ev.ExamenFisico,
		&ev.CausaReposo,
		&ev.DiasReposo,
		&ev.FechaConsulta,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
