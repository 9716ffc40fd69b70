package models

import (
	"time"

	evaluaciones "github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
)

// PacienteResumen son los campos del paciente embebidos en cada fila de
// consulta que consume el agregador.
type PacienteResumen struct {
	Sexo            evaluaciones.Sexo `json:"sexo"`
	NombreCompleto  string            `json:"nombre_completo"`
	FechaNacimiento *time.Time        `json:"fecha_nacimiento,omitempty"`
}

// EmpresaResumen son los campos de la empresa embebidos en la fila.
type EmpresaResumen struct {
	Nombre string `json:"nombre"`
	RIF    string `json:"rif"`
}

// ConsultaDetalle es una consulta con su paciente y empresa resueltos,
// tal como la entrega la capa de datos (ordenada por fecha descendente).
type ConsultaDetalle struct {
	ID              string                       `json:"id"`
	TipoConsulta    evaluaciones.TipoConsulta    `json:"tipo_consulta"`
	TipoPatologia   evaluaciones.TipoPatologia   `json:"tipo_patologia"`
	CategoriaReposo evaluaciones.CategoriaReposo `json:"categoria_reposo"`
	DiasReposo      int                          `json:"dias_reposo"`
	FechaConsulta   time.Time                    `json:"fecha_consulta"`
	Paciente        PacienteResumen              `json:"pacientes"`
	Empresa         EmpresaResumen               `json:"empresas"`
}

// ConteoSexo es la distribución por sexo del conjunto filtrado.
type ConteoSexo struct {
	Masculino int `json:"masculino"`
	Femenino  int `json:"femenino"`
}

// ConteoCategoria es una barra del gráfico de tipos de consulta.
type ConteoCategoria struct {
	Nombre string `json:"nombre"`
	Total  int    `json:"total"`
}

// PatologiaTop es una entrada del top de patologías, con el color que le
// corresponde por rango.
type PatologiaTop struct {
	Nombre string `json:"nombre"`
	Total  int    `json:"total"`
	Color  string `json:"color"`
}

// TendenciaMes acumula los eventos de un mes calendario por las cuatro
// categorías de reposo rastreadas.
type TendenciaMes struct {
	Mes            string `json:"mes"`
	EnfComun       int    `json:"enf_comun"`
	AccLaboral     int    `json:"acc_laboral"`
	EnfOcupacional int    `json:"enf_ocupacional"`
	AccComun       int    `json:"acc_comun"`
}

// GrupoEtario acumula por sexo dentro de un rango de edad. En la vista de
// morbilidad el contador es de casos; en la de ausentismo, de días de reposo.
type GrupoEtario struct {
	Grupo string `json:"grupo"`
	Masc  int    `json:"masc"`
	Fem   int    `json:"fem"`
}

// KPIs del mes en curso.
type KPIs struct {
	TotalPacientes int     `json:"total_pacientes"`
	ConsultasMes   int     `json:"consultas_mes"`
	DiasReposo     int     `json:"dias_reposo"`
	Ausentismo     float64 `json:"ausentismo"`
}

// ResumenAnalitico es la salida completa del agregador para un filtro de
// empresa y una fecha de referencia dados.
type ResumenAnalitico struct {
	Sexo              ConteoSexo        `json:"distribucion_sexo"`
	TiposConsulta     []ConteoCategoria `json:"tipos_consulta"`
	TopPatologias     []PatologiaTop    `json:"top_patologias"`
	Tendencia         []TendenciaMes    `json:"tendencia_mensual"`
	Demografia        []GrupoEtario     `json:"demografia"`
	Ausentismo        []GrupoEtario     `json:"ausentismo_etario"`
	KPIs              KPIs              `json:"kpis"`
	UltimasConsultas  []ConsultaDetalle `json:"ultimas_consultas"`
}

// ResumenVigilancia es el subconjunto del resumen que consume el informe
// mensual de vigilancia.
type ResumenVigilancia struct {
	Empresa          string         `json:"empresa"`
	Periodo          string         `json:"periodo"`
	TotalPacientes   int            `json:"total_pacientes"`
	TotalConsultas   int            `json:"total_consultas"`
	IndiceAusentismo float64        `json:"indice_ausentismo"`
	TopPatologias    []PatologiaTop `json:"top_patologias"`
	Demografia       []GrupoEtario  `json:"demografia"`
}
