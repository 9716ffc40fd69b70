package utils

import (
	"fmt"
	"strings"
	"time"
)

var mesesLargos = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MesesAbreviados son las etiquetas de las series mensuales de los gráficos.
var MesesAbreviados = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// FechaLargaVE formatea una fecha al estilo es-VE: "15 de agosto de 2026".
func FechaLargaVE(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesLargos[t.Month()-1], t.Year())
}

// PeriodoVE devuelve la etiqueta de período de los informes mensuales: "AGOSTO 2026".
func PeriodoVE(t time.Time) string {
	return strings.ToUpper(fmt.Sprintf("%s %d", mesesLargos[t.Month()-1], t.Year()))
}
