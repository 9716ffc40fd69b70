package services

import (
	"math"
	"sort"
	"time"

	evaluaciones "github.com/saludlaboral/bunker-backend/internal/evaluaciones/models"
	"github.com/saludlaboral/bunker-backend/internal/vigilancia/models"
	"github.com/saludlaboral/bunker-backend/pkg/utils"
)

// FiltroGeneral agrega sobre todas las empresas.
const FiltroGeneral = "GENERAL"

// paletaPatologias se asigna por rango, ciclando cada 4 entradas.
var paletaPatologias = [4]string{"#ef4444", "#f59e0b", "#3b82f6", "#22d3ee"}

// gruposEtarios en el orden fijo de presentación.
var gruposEtarios = [5]string{"18-25", "26-35", "36-45", "46-55", "55+"}

// diasHabilesMes es el divisor referencial de la ecuación de ausentismo
// (jornada estándar asumida de 20 días hábiles por mes).
const diasHabilesMes = 20

// grupoEtario ubica una edad en su rango. La edad se calcula como
// añoActual - añoNacimiento, sin ajuste por día/mes; sin fecha de
// nacimiento la edad queda en 0 y cae en "18-25".
func grupoEtario(edad int) string {
	switch {
	case edad < 26:
		return "18-25"
	case edad < 36:
		return "26-35"
	case edad < 46:
		return "36-45"
	case edad < 56:
		return "46-55"
	default:
		return "55+"
	}
}

// conteoOrdenado acumula frecuencias recordando el orden de primera
// aparición, que es el criterio de desempate del top-N.
type conteoOrdenado struct {
	totales map[string]int
	orden   []string
}

func nuevoConteo() *conteoOrdenado {
	return &conteoOrdenado{totales: make(map[string]int)}
}

func (c *conteoOrdenado) sumar(clave string) {
	if _, visto := c.totales[clave]; !visto {
		c.orden = append(c.orden, clave)
	}
	c.totales[clave]++
}

// top devuelve hasta n entradas ordenadas por total descendente; el empate
// conserva el orden de primera aparición.
func (c *conteoOrdenado) top(n int) []models.ConteoCategoria {
	entradas := make([]models.ConteoCategoria, 0, len(c.orden))
	for _, clave := range c.orden {
		entradas = append(entradas, models.ConteoCategoria{Nombre: clave, Total: c.totales[clave]})
	}
	sort.SliceStable(entradas, func(i, j int) bool {
		return entradas[i].Total > entradas[j].Total
	})
	if len(entradas) > n {
		entradas = entradas[:n]
	}
	return entradas
}

// ProcesarAnalitica es función pura: para una misma lista de consultas, un
// mismo filtro y una misma fecha de referencia produce siempre el mismo
// resumen. No realiza E/S.
//
// filtroEmpresa es FiltroGeneral o el nombre exacto de una empresa. El
// llamador entrega las filas ya ordenadas por fecha descendente.
func ProcesarAnalitica(data []models.ConsultaDetalle, filtroEmpresa string, ahora time.Time) models.ResumenAnalitico {
	filtradas := data
	if filtroEmpresa != FiltroGeneral {
		filtradas = make([]models.ConsultaDetalle, 0, len(data))
		for _, fila := range data {
			if fila.Empresa.Nombre == filtroEmpresa {
				filtradas = append(filtradas, fila)
			}
		}
	}

	mesActual := ahora.Month()
	anoActual := ahora.Year()

	var resumen models.ResumenAnalitico

	tendencia := make([]models.TendenciaMes, 12)
	for i := range tendencia {
		tendencia[i].Mes = utils.MesesAbreviados[i]
	}

	demografia := make([]models.GrupoEtario, len(gruposEtarios))
	ausentismo := make([]models.GrupoEtario, len(gruposEtarios))
	indicePorGrupo := make(map[string]int, len(gruposEtarios))
	for i, g := range gruposEtarios {
		demografia[i].Grupo = g
		ausentismo[i].Grupo = g
		indicePorGrupo[g] = i
	}

	tiposConsulta := nuevoConteo()
	patologias := nuevoConteo()
	pacientesUnicos := make(map[string]struct{})

	consultasMes := 0
	diasReposoTotal := 0

	for _, fila := range filtradas {
		diasReposoTotal += fila.DiasReposo
		if fila.FechaConsulta.Month() == mesActual && fila.FechaConsulta.Year() == anoActual {
			consultasMes++
		}

		// Conteo de pacientes únicos por nombre completo. Es una
		// simplificación heredada: dos personas con el mismo nombre
		// colapsan en una (ver DESIGN.md).
		pacientesUnicos[fila.Paciente.NombreCompleto] = struct{}{}

		edad := 0
		if fila.Paciente.FechaNacimiento != nil {
			edad = anoActual - fila.Paciente.FechaNacimiento.Year()
		}
		grupo := indicePorGrupo[grupoEtario(edad)]

		esMasculino := fila.Paciente.Sexo == evaluaciones.SexoMasculino
		if esMasculino {
			resumen.Sexo.Masculino++
		} else {
			resumen.Sexo.Femenino++
		}

		if fila.TipoPatologia != evaluaciones.PatologiaAdultoSano {
			if esMasculino {
				demografia[grupo].Masc++
			} else {
				demografia[grupo].Fem++
			}
		}
		if fila.DiasReposo > 0 {
			if esMasculino {
				ausentismo[grupo].Masc += fila.DiasReposo
			} else {
				ausentismo[grupo].Fem += fila.DiasReposo
			}
		}

		tiposConsulta.sumar(string(fila.TipoConsulta))
		patologias.sumar(string(fila.TipoPatologia))

		mes := &tendencia[int(fila.FechaConsulta.Month())-1]
		switch fila.CategoriaReposo {
		case evaluaciones.ReposoEnfermedadComun:
			mes.EnfComun++
		case evaluaciones.ReposoAccidenteLaboral:
			mes.AccLaboral++
		case evaluaciones.ReposoEnfermedadOcupacional:
			mes.EnfOcupacional++
		case evaluaciones.ReposoAccidenteComun:
			mes.AccComun++
		case evaluaciones.ReposoNinguno:
			// sin reposo: no entra en ninguna serie de la tendencia
		}
	}

	resumen.TiposConsulta = tiposConsulta.top(5)
	if len(resumen.TiposConsulta) == 0 {
		resumen.TiposConsulta = []models.ConteoCategoria{{Nombre: "Sin Datos", Total: 0}}
	}

	topPat := patologias.top(4)
	resumen.TopPatologias = make([]models.PatologiaTop, len(topPat))
	for i, p := range topPat {
		resumen.TopPatologias[i] = models.PatologiaTop{
			Nombre: p.Nombre,
			Total:  p.Total,
			Color:  paletaPatologias[i%len(paletaPatologias)],
		}
	}

	// La tendencia solo llega hasta el mes en curso.
	resumen.Tendencia = tendencia[:int(mesActual)]
	resumen.Demografia = demografia
	resumen.Ausentismo = ausentismo

	if len(filtradas) > 10 {
		resumen.UltimasConsultas = filtradas[:10]
	} else {
		resumen.UltimasConsultas = filtradas
	}

	totalPacientes := len(pacientesUnicos)
	divisor := totalPacientes
	if divisor == 0 {
		divisor = 1
	}
	indice := (float64(diasReposoTotal) / float64(divisor*diasHabilesMes)) * 100
	resumen.KPIs = models.KPIs{
		TotalPacientes: totalPacientes,
		ConsultasMes:   consultasMes,
		DiasReposo:     diasReposoTotal,
		Ausentismo:     math.Round(indice*10) / 10,
	}

	return resumen
}

// ResumenParaVigilancia proyecta el subconjunto del resumen que consume el
// informe mensual.
func ResumenParaVigilancia(r models.ResumenAnalitico, empresa string, ahora time.Time) models.ResumenVigilancia {
	// la suma de la distribución por sexo equivale al total filtrado
	totalConsultas := r.Sexo.Masculino + r.Sexo.Femenino
	return models.ResumenVigilancia{
		Empresa:          empresa,
		Periodo:          utils.PeriodoVE(ahora),
		TotalPacientes:   r.KPIs.TotalPacientes,
		TotalConsultas:   totalConsultas,
		IndiceAusentismo: r.KPIs.Ausentismo,
		TopPatologias:    r.TopPatologias,
		Demografia:       r.Demografia,
	}
}
