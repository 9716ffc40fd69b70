package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
)

func TestListarPacientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	creado := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	columnasPacientes := []string{
		"id", "nombre_completo", "cedula", "sexo",
		"alergias", "patologias_previas", "fecha_nacimiento", "telefono", "created_at",
		"e_id", "e_nombre", "e_rif",
	}
	mock.ExpectQuery("SELECT(.|\n)+FROM pacientes p").WillReturnRows(
		sqlmock.NewRows(columnasPacientes).
			AddRow("pac-1", "Ana Pérez", "12345678", "Femenino", "", "", nil, "", creado, "emp-1", "Acme", "J-1").
			AddRow("pac-2", "Luis Rojas", "87654321", "Masculino", "", "", nil, "", creado, nil, nil, nil),
	)
	mock.ExpectQuery("SELECT c.paciente_id").WillReturnRows(
		sqlmock.NewRows([]string{"paciente_id", "id", "tipo_consulta", "aptitud_medica", "created_at"}).
			AddRow("pac-1", "c-2", "CONSULTA", "APTO CON LIMITACIONES", creado.AddDate(0, 1, 0)).
			AddRow("pac-1", "c-1", "PRE-EMPLEO", "APTO", creado),
	)

	svc := NewPacienteService(db)
	listado, err := svc.ListarPacientes("")
	if err != nil {
		t.Fatalf("ListarPacientes: %v", err)
	}
	if len(listado) != 2 {
		t.Fatalf("len(listado) = %d, se esperaban 2", len(listado))
	}

	ana := listado[0]
	if ana.Empresa == nil || ana.Empresa.Nombre != "Acme" {
		t.Errorf("empresa de Ana = %+v", ana.Empresa)
	}
	if len(ana.Historial) != 2 || ana.Historial[0].ID != "c-2" {
		t.Errorf("historial de Ana = %+v, se esperaba c-2 primero", ana.Historial)
	}
	if ana.UltimaAptitud == nil || *ana.UltimaAptitud != models.AptitudAptoLimitaciones {
		t.Errorf("última aptitud de Ana = %v", ana.UltimaAptitud)
	}

	luis := listado[1]
	if luis.Empresa != nil {
		t.Errorf("empresa de Luis = %+v, se esperaba nil", luis.Empresa)
	}
	if len(luis.Historial) != 0 || luis.UltimaAptitud != nil {
		t.Errorf("Luis sin consultas: historial=%v aptitud=%v", luis.Historial, luis.UltimaAptitud)
	}
}

func TestListarPacientesVacio(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM pacientes p").WillReturnRows(
		sqlmock.NewRows([]string{
			"id", "nombre_completo", "cedula", "sexo",
			"alergias", "patologias_previas", "fecha_nacimiento", "telefono", "created_at",
			"e_id", "e_nombre", "e_rif",
		}),
	)

	svc := NewPacienteService(db)
	listado, err := svc.ListarPacientes("zzz")
	if err != nil {
		t.Fatalf("ListarPacientes: %v", err)
	}
	if listado == nil || len(listado) != 0 {
		t.Errorf("listado = %v, se esperaba lista vacía sin consulta de historial", listado)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectativas incumplidas: %v", err)
	}
}
