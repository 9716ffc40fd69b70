package models

import "time"

// Sexo del paciente.
type Sexo string

const (
	SexoMasculino Sexo = "Masculino"
	SexoFemenino  Sexo = "Femenino"
)

// TipoConsulta clasifica la evaluación ocupacional.
type TipoConsulta string

const (
	ConsultaPreEmpleo        TipoConsulta = "PRE-EMPLEO"
	ConsultaPreVacacional    TipoConsulta = "PRE-VACACIONAL"
	ConsultaPostVacacional   TipoConsulta = "POST-VACACIONAL"
	ConsultaEgreso           TipoConsulta = "EGRESO"
	ConsultaReintegroReposo  TipoConsulta = "REINTEGRO REPOSO"
	ConsultaGeneral          TipoConsulta = "CONSULTA"
	ConsultaLimitacion       TipoConsulta = "LIMITACION"
	ConsultaCertificadoSalud TipoConsulta = "CERTIFICADO SALUD"
)

// TipoPatologia agrupa el diagnóstico por sistema. PatologiaAdultoSano es el
// valor centinela: no cuenta como caso de morbilidad.
type TipoPatologia string

const (
	PatologiaAdultoSano        TipoPatologia = "Adulto sano"
	PatologiaORL               TipoPatologia = "ORL"
	PatologiaOftalmologica     TipoPatologia = "Oftalmológicas"
	PatologiaRespiratoria      TipoPatologia = "Respiratorias"
	PatologiaCardiovascular    TipoPatologia = "Cardiovasculares"
	PatologiaGastrointestinal  TipoPatologia = "Gastrointestinales"
	PatologiaGenitourinaria    TipoPatologia = "Genitourinarias"
	PatologiaOsteomiarticular  TipoPatologia = "Osteomiarticulares"
	PatologiaNeurologica       TipoPatologia = "Neurológicas"
	PatologiaDermatologica     TipoPatologia = "Dermatológicas"
	PatologiaEndocrinologica   TipoPatologia = "Endocrinológicas"
	PatologiaInfectocontagiosa TipoPatologia = "Infectocontagiosas"
	PatologiaObstetrica        TipoPatologia = "Obstétricas"
	PatologiaDislipidemia      TipoPatologia = "Dislipidemia"
	PatologiaTraumatologica    TipoPatologia = "Traumatológicas"
)

// CategoriaReposo clasifica la ausencia médica autorizada.
type CategoriaReposo string

const (
	ReposoNinguno              CategoriaReposo = "NINGUNO"
	ReposoEnfermedadComun      CategoriaReposo = "ENFERMEDAD COMUN"
	ReposoEnfermedadOcupacional CategoriaReposo = "ENFERMEDAD OCUPACIONAL"
	ReposoAccidenteComun       CategoriaReposo = "ACCIDENTE COMUN"
	ReposoAccidenteLaboral     CategoriaReposo = "ACCIDENTE LABORAL"
)

// AptitudMedica es el dictamen final de la evaluación.
type AptitudMedica string

const (
	AptitudApto            AptitudMedica = "APTO"
	AptitudAptoLimitaciones AptitudMedica = "APTO CON LIMITACIONES"
	AptitudNoApto          AptitudMedica = "NO APTO"
	AptitudEnEvaluacion    AptitudMedica = "EN EVALUACION"
)

// Paciente es el trabajador evaluado. La cédula es la clave natural de
// búsqueda y deduplicación.
type Paciente struct {
	ID                string     `json:"id"`
	NombreCompleto    string     `json:"nombre_completo"`
	Cedula            string     `json:"cedula"`
	Sexo              Sexo       `json:"sexo"`
	Alergias          string     `json:"alergias,omitempty"`
	PatologiasPrevias string     `json:"patologias_previas,omitempty"`
	FechaNacimiento   *time.Time `json:"fecha_nacimiento,omitempty"`
	Telefono          string     `json:"telefono,omitempty"`
	EmpresaID         *string    `json:"empresa_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Empresa cliente. El RIF es la clave natural.
type Empresa struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	RIF       string    `json:"rif"`
	Sede      string    `json:"sede,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AntecedenteLaboral registra un empleo anterior del paciente. Solo se
// agregan, nunca se editan.
type AntecedenteLaboral struct {
	ID               string `json:"id"`
	PacienteID       string `json:"paciente_id"`
	Orden            int    `json:"orden"`
	EmpresaAnterior  string `json:"empresa_anterior"`
	CargoDesempenado string `json:"cargo_desempenado"`
	TiempoServicio   string `json:"tiempo_servicio,omitempty"`
	RiesgosExpuestos string `json:"riesgos_expuestos,omitempty"`
}

// Consulta es un evento de evaluación. Inmutable una vez insertada.
type Consulta struct {
	ID                            string          `json:"id"`
	PacienteID                    string          `json:"paciente_id"`
	EmpresaID                     string          `json:"empresa_id"`
	TipoConsulta                  TipoConsulta    `json:"tipo_consulta"`
	TipoPatologia                 TipoPatologia   `json:"tipo_patologia"`
	CategoriaReposo               CategoriaReposo `json:"categoria_reposo"`
	TieneReposo                   bool            `json:"tiene_reposo"`
	DiasReposo                    int             `json:"dias_reposo"`
	Observaciones                 string          `json:"observaciones,omitempty"`
	DiscapacidadDetectada         bool            `json:"discapacidad_detectada"`
	ReferenciaCentroEspecializado string          `json:"referencia_centro_especializado,omitempty"`
	AptitudMedica                 AptitudMedica   `json:"aptitud_medica"`
	ExamenFisico                  string          `json:"examen_fisico,omitempty"`
	RiesgosOcupacionales          string          `json:"riesgos_ocupacionales,omitempty"`
	FechaInicioReposo             *time.Time      `json:"fecha_inicio_reposo,omitempty"`
	FechaFinReposo                *time.Time      `json:"fecha_fin_reposo,omitempty"`
	CausaReposo                   string          `json:"causa_reposo,omitempty"`
	FechaConsulta                 time.Time       `json:"fecha_consulta"`
	CreatedAt                     time.Time       `json:"created_at"`
}

// PacienteRequest es la sección de identificación del payload de evaluación.
type PacienteRequest struct {
	NombreCompleto    string `json:"nombre_completo"`
	Cedula            string `json:"cedula"`
	Sexo              string `json:"sexo"`
	Alergias          string `json:"alergias"`
	PatologiasPrevias string `json:"patologias_previas"`
	FechaNacimiento   string `json:"fecha_nacimiento"` // YYYY-MM-DD, opcional
	Telefono          string `json:"telefono"`
}

// EmpresaRequest identifica la empresa actual del trabajador.
type EmpresaRequest struct {
	Nombre string `json:"nombre"`
	RIF    string `json:"rif"`
}

// AntecedenteRequest es un empleo anterior del formulario (hasta 3).
type AntecedenteRequest struct {
	Empresa          string `json:"empresa"`
	Cargo            string `json:"cargo"`
	TiempoServicio   string `json:"tiempo_servicio"`
	RiesgosExpuestos string `json:"riesgos_expuestos"`
}

// ConsultaRequest es la sección de vigilancia epidemiológica del payload.
type ConsultaRequest struct {
	TipoConsulta                  string `json:"tipo_consulta"`
	TipoPatologia                 string `json:"tipo_patologia"`
	CategoriaReposo               string `json:"categoria_reposo"`
	DiasReposo                    int    `json:"dias_reposo"`
	Observaciones                 string `json:"observaciones"`
	DiscapacidadDetectada         bool   `json:"discapacidad_detectada"`
	ReferenciaCentroEspecializado string `json:"referencia_centro_especializado"`
	AptitudMedica                 string `json:"aptitud_medica"`
	ExamenFisico                  string `json:"examen_fisico"`
	RiesgosOcupacionales          string `json:"riesgos_ocupacionales"`
	FechaInicioReposo             string `json:"fecha_inicio_reposo"` // YYYY-MM-DD, opcional
	FechaFinReposo                string `json:"fecha_fin_reposo"`    // YYYY-MM-DD, opcional
	CausaReposo                   string `json:"causa_reposo"`
}

// EvaluacionRequest es el payload compuesto de una evaluación nueva.
type EvaluacionRequest struct {
	Paciente        PacienteRequest      `json:"paciente"`
	Empresa         EmpresaRequest       `json:"empresa"`
	Antecedentes    []AntecedenteRequest `json:"antecedentes"`
	Consulta        ConsultaRequest      `json:"consulta"`
	ConFirmaDigital bool                 `json:"con_firma_digital"`
}

// ResultadoEvaluacion resume los identificadores resueltos por el registro.
type ResultadoEvaluacion struct {
	EmpresaID     string `json:"empresa_id"`
	PacienteID    string `json:"paciente_id"`
	ConsultaID    string `json:"consulta_id"`
	EmpresaNueva  bool   `json:"empresa_nueva"`
	PacienteNuevo bool   `json:"paciente_nuevo"`
}

// PacienteRecurrente es la respuesta del prellenado por cédula.
type PacienteRecurrente struct {
	Paciente      Paciente       `json:"paciente"`
	Empresa       *Empresa       `json:"empresa,omitempty"`
	UltimaAptitud *AptitudMedica `json:"ultima_aptitud,omitempty"`
}
