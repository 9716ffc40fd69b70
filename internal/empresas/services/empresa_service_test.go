package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListarEmpresas(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	creado := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT(.|\n)+FROM empresas e").WillReturnRows(
		sqlmock.NewRows([]string{"id", "nombre", "rif", "sede", "telefono", "created_at", "count"}).
			AddRow("emp-1", "Acme", "J-1", "Guarenas", "", creado, 12).
			AddRow("emp-2", "Beta", "J-2", "", "", creado, 0),
	)

	svc := NewEmpresaService(db)
	listado, err := svc.ListarEmpresas("")
	if err != nil {
		t.Fatalf("ListarEmpresas: %v", err)
	}
	if len(listado) != 2 {
		t.Fatalf("len(listado) = %d, se esperaban 2", len(listado))
	}
	if listado[0].Empresa.Nombre != "Acme" || listado[0].TotalPacientes != 12 {
		t.Errorf("fila 0 = %+v", listado[0])
	}
	if listado[1].TotalPacientes != 0 {
		t.Errorf("fila 1 = %+v, empresa sin plantilla debe contar 0", listado[1])
	}
}

func TestListarEmpresasConFiltro(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM empresas e").
		WithArgs("%Acme%", "%Acme%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "rif", "sede", "telefono", "created_at", "count"}))

	svc := NewEmpresaService(db)
	if _, err := svc.ListarEmpresas("Acme"); err != nil {
		t.Fatalf("ListarEmpresas: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectativas incumplidas: %v", err)
	}
}
