package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListarConsultasDetalleDegradaAVacio(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	svc := NewVigilanciaService(db)
	lista := svc.ListarConsultasDetalle()
	if lista == nil || len(lista) != 0 {
		t.Errorf("lista = %v, un fallo de lectura debe degradar a lista vacía", lista)
	}
}

func TestListarConsultasDetalle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	fecha := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	nac := time.Date(1990, time.March, 1, 0, 0, 0, 0, time.UTC)
	columnas := []string{
		"id", "tipo_consulta", "tipo_patologia", "categoria_reposo",
		"dias_reposo", "fecha_consulta",
		"sexo", "nombre_completo", "fecha_nacimiento",
		"nombre", "rif",
	}
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(columnas).
			AddRow("c-1", "PRE-EMPLEO", "Adulto sano", "NINGUNO", 0, fecha, "Femenino", "Ana Pérez", nac, "Acme", "J-1").
			AddRow("c-2", "CONSULTA", "Respiratorias", "ENFERMEDAD COMUN", 3, fecha, "Masculino", "Luis Rojas", nil, "", ""),
	)

	svc := NewVigilanciaService(db)
	lista := svc.ListarConsultasDetalle()
	if len(lista) != 2 {
		t.Fatalf("len(lista) = %d, se esperaban 2", len(lista))
	}
	if lista[0].Paciente.FechaNacimiento == nil || lista[0].Paciente.FechaNacimiento.Year() != 1990 {
		t.Errorf("fila 0: fecha de nacimiento = %v", lista[0].Paciente.FechaNacimiento)
	}
	if lista[1].Paciente.FechaNacimiento != nil {
		t.Errorf("fila 1: fecha de nacimiento = %v, se esperaba nil", lista[1].Paciente.FechaNacimiento)
	}
	if lista[1].Empresa.Nombre != "" {
		t.Errorf("fila 1: empresa = %q, se esperaba vacía", lista[1].Empresa.Nombre)
	}
}

func TestListarNombresEmpresas(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT nombre FROM empresas").WillReturnRows(
		sqlmock.NewRows([]string{"nombre"}).AddRow("Acme").AddRow("Beta"),
	)

	svc := NewVigilanciaService(db)
	nombres := svc.ListarNombresEmpresas()
	if len(nombres) != 2 || nombres[0] != "Acme" {
		t.Errorf("nombres = %v", nombres)
	}
}
