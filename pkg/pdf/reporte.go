package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// FilaPatologia es una fila de la tabla de morbilidad del informe.
type FilaPatologia struct {
	Nombre string
	Casos  int
}

// FilaDemografia es una fila de la tabla demográfica del informe.
type FilaDemografia struct {
	Grupo string
	Masc  int
	Fem   int
}

// DatosReporte es el snapshot analítico precalculado que consume el informe
// mensual de vigilancia.
type DatosReporte struct {
	Empresa          string
	Periodo          string
	TotalPacientes   int
	TotalConsultas   int
	IndiceAusentismo float64
	Patologias       []FilaPatologia
	Demografia       []FilaDemografia
}

// NombreArchivoReporte arma el nombre determinístico del archivo:
// Reporte_Vigilancia_<empresa>_<epochMillis>.pdf
func NombreArchivoReporte(empresa string, ts time.Time) string {
	return fmt.Sprintf("Reporte_Vigilancia_%s_%d.pdf", empresa, ts.UnixMilli())
}

// cajaKPI dibuja una de las tres tarjetas del resumen ejecutivo.
func cajaKPI(doc *gofpdf.Fpdf, tr func(string) string, x, y float64, valor, etiqueta string) {
	const ancho = 60.0
	doc.SetFillColor(248, 250, 252)
	doc.Rect(x, y, ancho, 20, "F")
	doc.SetTextColor(30, 58, 138)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetXY(x, y+7)
	doc.CellFormat(ancho, 7, tr(valor), "", 0, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	doc.SetXY(x, y+14)
	doc.CellFormat(ancho, 4, tr(etiqueta), "", 0, "C", false, 0, "")
}

// GenerarReporteVigilancia maqueta el informe mensual multiseción y lo
// escribe en w. El pie con numeración se repite en cada página.
func GenerarReporteVigilancia(d DatosReporte, w io.Writer) error {
	doc := gofpdf.New("P", "mm", "Letter", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetAutoPageBreak(true, 25)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(148, 163, 184)
		doc.CellFormat(0, 6,
			tr(fmt.Sprintf("Generado por Búnker Salud Laboral - Página %d de {nb}", doc.PageNo())),
			"", 0, "C", false, 0, "")
	})
	doc.AddPage()

	// Encabezado
	doc.SetFillColor(231, 239, 251)
	doc.Rect(0, 0, 216, 45, "F")

	doc.SetTextColor(30, 58, 138)
	doc.SetFont("Helvetica", "B", 18)
	textoCentrado(doc, 12, tr("INFORME MENSUAL DE VIGILANCIA EPIDEMIOLÓGICA"))

	doc.SetFont("Helvetica", "", 11)
	textoCentrado(doc, 24, tr("EMPRESA: "+d.Empresa))
	textoCentrado(doc, 30, tr("PERÍODO: "+d.Periodo))

	// Resumen ejecutivo
	doc.SetDrawColor(203, 220, 247)
	doc.Line(15, 55, 201, 55)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(30, 58, 138)
	doc.SetXY(15, 58)
	doc.CellFormat(100, 6, "RESUMEN EJECUTIVO", "", 0, "L", false, 0, "")

	const kpiY = 72.0
	cajaKPI(doc, tr, 15, kpiY, fmt.Sprintf("%d", d.TotalPacientes), "POBLACIÓN TOTAL")
	cajaKPI(doc, tr, 78, kpiY, fmt.Sprintf("%.1f%%", d.IndiceAusentismo), "ÍNDICE AUSENTISMO")
	cajaKPI(doc, tr, 141, kpiY, fmt.Sprintf("%d", d.TotalConsultas), "TOTAL CONSULTAS")

	// Tabla de morbilidad
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(30, 58, 138)
	doc.SetXY(15, 105)
	doc.CellFormat(186, 6, tr("1. DISTRIBUCIÓN DE MORBILIDAD POR SISTEMA"), "", 1, "L", false, 0, "")

	divisor := d.TotalConsultas
	if divisor == 0 {
		divisor = 1
	}

	doc.SetX(15)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(30, 58, 138)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(106, 7, tr("Patología / Diagnóstico"), "", 0, "L", true, 0, "")
	doc.CellFormat(40, 7, "Casos", "", 0, "C", true, 0, "")
	doc.CellFormat(40, 7, "Prevalencia (%)", "", 1, "C", true, 0, "")

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(30, 41, 59)
	for i, p := range d.Patologias {
		doc.SetX(15)
		sombreada := i%2 == 1
		doc.SetFillColor(241, 245, 249)
		prevalencia := (float64(p.Casos) / float64(divisor)) * 100
		doc.CellFormat(106, 6, tr(p.Nombre), "", 0, "L", sombreada, 0, "")
		doc.CellFormat(40, 6, fmt.Sprintf("%d", p.Casos), "", 0, "C", sombreada, 0, "")
		doc.CellFormat(40, 6, fmt.Sprintf("%.1f%%", prevalencia), "", 1, "C", sombreada, 0, "")
	}

	// Tabla demográfica
	doc.Ln(10)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(30, 58, 138)
	doc.SetX(15)
	doc.CellFormat(186, 6, tr("2. DISTRIBUCIÓN DEMOGRÁFICA Y DE GÉNERO"), "", 1, "L", false, 0, "")

	doc.SetX(15)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(13, 148, 136)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(66, 7, "Grupo Etario", "", 0, "L", true, 0, "")
	doc.CellFormat(40, 7, "Masculino", "", 0, "C", true, 0, "")
	doc.CellFormat(40, 7, "Femenino", "", 0, "C", true, 0, "")
	doc.CellFormat(40, 7, "Total", "", 1, "C", true, 0, "")

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(30, 41, 59)
	for i, g := range d.Demografia {
		doc.SetX(15)
		sombreada := i%2 == 1
		doc.SetFillColor(241, 245, 249)
		doc.CellFormat(66, 6, g.Grupo, "", 0, "L", sombreada, 0, "")
		doc.CellFormat(40, 6, fmt.Sprintf("%d", g.Masc), "", 0, "C", sombreada, 0, "")
		doc.CellFormat(40, 6, fmt.Sprintf("%d", g.Fem), "", 0, "C", sombreada, 0, "")
		doc.CellFormat(40, 6, fmt.Sprintf("%d", g.Masc+g.Fem), "", 1, "C", sombreada, 0, "")
	}

	return doc.Output(w)
}
