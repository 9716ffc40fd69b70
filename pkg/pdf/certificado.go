// Package pdf genera los documentos imprimibles del consultorio: el
// certificado de aptitud médica y el informe mensual de vigilancia
// epidemiológica. Ambos son maquetados de una sola pasada sobre formato
// carta; un dato malformado se propaga como error al llamador, sin
// reintentos.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/saludlaboral/bunker-backend/pkg/utils"
)

// DatosCertificado es la evaluación resuelta que se vuelca en el
// certificado de aptitud.
type DatosCertificado struct {
	PacienteNombre string
	PacienteCedula string
	EmpresaNombre  string
	EmpresaRIF     string
	TipoConsulta   string
	Aptitud        string
	Observaciones  string
	CausaReposo    string
	DiasReposo     int
	MedicoNombre   string
	MedicoMPPS     string
	MedicoCMM      string
	ConFirmaDigital bool
	Fecha          time.Time
}

// NombreArchivoCertificado arma el nombre determinístico del archivo:
// Certificado_<cedula>_<epochMillis>.pdf
func NombreArchivoCertificado(cedula string, ts time.Time) string {
	return fmt.Sprintf("Certificado_%s_%d.pdf", cedula, ts.UnixMilli())
}

// textoCentrado escribe una línea centrada horizontalmente en la página carta.
func textoCentrado(doc *gofpdf.Fpdf, y float64, s string) {
	doc.SetY(y)
	doc.SetX(0)
	doc.CellFormat(216, 8, s, "", 0, "C", false, 0, "")
}

// GenerarCertificado maqueta el certificado de aptitud de una página y lo
// escribe en w.
func GenerarCertificado(d DatosCertificado, w io.Writer) error {
	doc := gofpdf.New("P", "mm", "Letter", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	// Encabezado con banda azul clara
	doc.SetFillColor(231, 239, 251)
	doc.Rect(0, 0, 216, 40, "F")

	doc.SetTextColor(30, 58, 138)
	doc.SetFont("Helvetica", "B", 22)
	textoCentrado(doc, 14, tr("CERTIFICADO DE APTITUD MÉDICA"))

	doc.SetFont("Helvetica", "", 10)
	subtitulo := fmt.Sprintf("Evaluación Médica: %s", d.TipoConsulta)
	if d.TipoConsulta == "CERTIFICADO SALUD" {
		subtitulo = "Salud Integral Ocupacional"
	}
	textoCentrado(doc, 24, tr(subtitulo))

	// Bloque del médico
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(100, 116, 139)
	doc.SetXY(15, 46)
	doc.MultiCell(100, 4.5, tr(fmt.Sprintf(
		"Dra. %s\nM.P.P.S: %s / C.M.M: %s\nEspecialista en Salud Ocupacional",
		d.MedicoNombre, d.MedicoMPPS, d.MedicoCMM)), "", "L", false)

	// Cuerpo del certificado
	doc.SetTextColor(30, 41, 59)
	doc.SetFont("Helvetica", "", 12)
	doc.SetXY(15, 71)
	doc.CellFormat(186, 6, tr(fmt.Sprintf("En la ciudad de Guarenas, a los %s.", utils.FechaLargaVE(d.Fecha))), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	doc.SetXY(15, 81)
	doc.CellFormat(186, 6, "HACE CONSTAR:", "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	parrafo := fmt.Sprintf(
		"Que el ciudadano(a) %s, titular de la Cédula de Identidad N° %s, trabajador de la empresa %s (RIF: %s), ha sido sometido a una evaluación médica ocupacional de tipo %s.",
		d.PacienteNombre, d.PacienteCedula, d.EmpresaNombre, d.EmpresaRIF,
		strings.ToLower(d.TipoConsulta))
	doc.SetXY(15, 91)
	doc.MultiCell(185, 6, tr(parrafo), "", "L", false)

	// Dictamen final en caja resaltada
	doc.SetDrawColor(30, 58, 138)
	doc.SetLineWidth(0.5)
	doc.Rect(15, 115, 186, 25, "D")

	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(20, 119)
	doc.CellFormat(100, 6, tr("CONCLUSIÓN DE APTITUD:"), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 14)
	if d.Aptitud == "APTO" {
		doc.SetTextColor(16, 185, 129)
	} else {
		doc.SetTextColor(245, 158, 11)
	}
	textoCentrado(doc, 129, tr(d.Aptitud))

	// Reposo, solo cuando hay días indicados
	if d.DiasReposo > 0 {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetTextColor(239, 68, 68)
		doc.SetXY(15, 146)
		doc.CellFormat(186, 5, tr(fmt.Sprintf("REPOSO MÉDICO: %d DÍAS", d.DiasReposo)), "", 0, "L", false, 0, "")
		if d.CausaReposo != "" {
			doc.SetFont("Helvetica", "", 9)
			doc.SetTextColor(100, 116, 139)
			doc.SetXY(15, 152)
			doc.CellFormat(186, 5, tr("Causa: "+d.CausaReposo), "", 0, "L", false, 0, "")
		}
	}

	// Observaciones, solo cuando existen
	if d.Observaciones != "" {
		doc.SetTextColor(30, 41, 59)
		doc.SetFont("Helvetica", "B", 10)
		doc.SetXY(15, 166)
		doc.CellFormat(186, 5, "OBSERVACIONES Y RECOMENDACIONES:", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.SetXY(15, 172)
		doc.MultiCell(185, 5, tr(d.Observaciones), "", "L", false)
	}

	// Líneas de firma
	const lineaY = 230.0
	doc.SetDrawColor(203, 220, 247)
	doc.SetLineWidth(0.2)
	doc.Line(40, lineaY, 90, lineaY)
	doc.Line(125, lineaY, 175, lineaY)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(100, 116, 139)
	doc.SetXY(40, lineaY+2)
	doc.MultiCell(50, 4, tr(fmt.Sprintf("Dra. %s\nM.P.P.S %s", d.MedicoNombre, d.MedicoMPPS)), "", "C", false)
	doc.SetXY(125, lineaY+2)
	doc.MultiCell(50, 4, tr(fmt.Sprintf("%s\nCI: %s\nHuella dactilar / Firma", d.PacienteNombre, d.PacienteCedula)), "", "C", false)

	// Marca de validación digital en diagonal
	if d.ConFirmaDigital {
		doc.SetFont("Helvetica", "B", 16)
		doc.SetTextColor(202, 213, 235)
		doc.TransformBegin()
		doc.TransformRotate(45, 108, 255)
		doc.Text(60, 255, "DOCUMENTO VALIDADO DIGITALMENTE")
		doc.TransformEnd()
	}

	// Pie de página
	doc.SetFont("Helvetica", "", 7)
	doc.SetTextColor(148, 163, 184)
	textoCentrado(doc, 266, tr("Este certificado tiene validez según lo establecido en la LOPCYMAT y su Reglamento."))

	return doc.Output(w)
}
