package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var fechaPrueba = time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)

func datosCertificadoPrueba() DatosCertificado {
	return DatosCertificado{
		PacienteNombre: "Ana Pérez",
		PacienteCedula: "12345678",
		EmpresaNombre:  "Acme",
		EmpresaRIF:     "J-12345678-9",
		TipoConsulta:   "PRE-EMPLEO",
		Aptitud:        "APTO",
		MedicoNombre:   "Dra. Carmen Luque",
		MedicoMPPS:     "45678",
		MedicoCMM:      "1234",
		Fecha:          fechaPrueba,
	}
}

func TestGenerarCertificado(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerarCertificado(datosCertificadoPrueba(), &buf); err != nil {
		t.Fatalf("GenerarCertificado: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("la salida no es un documento PDF")
	}
}

func TestGenerarCertificadoConReposoYFirma(t *testing.T) {
	d := datosCertificadoPrueba()
	d.Aptitud = "NO APTO"
	d.DiasReposo = 7
	d.CausaReposo = "Lumbalgia aguda"
	d.Observaciones = "Control en una semana"
	d.ConFirmaDigital = true

	var buf bytes.Buffer
	if err := GenerarCertificado(d, &buf); err != nil {
		t.Fatalf("GenerarCertificado: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("la salida no es un documento PDF")
	}
}

func TestGenerarReporteVigilancia(t *testing.T) {
	d := DatosReporte{
		Empresa:          "Acme",
		Periodo:          "AGOSTO 2026",
		TotalPacientes:   42,
		TotalConsultas:   60,
		IndiceAusentismo: 12.5,
		Patologias: []FilaPatologia{
			{Nombre: "Respiratorias", Casos: 12},
			{Nombre: "Osteomiarticulares", Casos: 8},
		},
		Demografia: []FilaDemografia{
			{Grupo: "18-25", Masc: 5, Fem: 3},
			{Grupo: "26-35", Masc: 10, Fem: 9},
		},
	}

	var buf bytes.Buffer
	if err := GenerarReporteVigilancia(d, &buf); err != nil {
		t.Fatalf("GenerarReporteVigilancia: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("la salida no es un documento PDF")
	}
}

func TestGenerarReporteVigilanciaSinFilas(t *testing.T) {
	d := DatosReporte{Empresa: "GENERAL", Periodo: "AGOSTO 2026"}
	var buf bytes.Buffer
	if err := GenerarReporteVigilancia(d, &buf); err != nil {
		t.Fatalf("GenerarReporteVigilancia: %v", err)
	}
}

func TestNombresDeArchivo(t *testing.T) {
	cert := NombreArchivoCertificado("12345678", fechaPrueba)
	if !strings.HasPrefix(cert, "Certificado_12345678_") || !strings.HasSuffix(cert, ".pdf") {
		t.Errorf("nombre de certificado = %q", cert)
	}
	rep := NombreArchivoReporte("Acme", fechaPrueba)
	if !strings.HasPrefix(rep, "Reporte_Vigilancia_Acme_") || !strings.HasSuffix(rep, ".pdf") {
		t.Errorf("nombre de reporte = %q", rep)
	}
}
