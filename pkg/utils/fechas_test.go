package utils

import (
	"testing"
	"time"
)

func TestFechaLargaVE(t *testing.T) {
	casos := []struct {
		fecha  time.Time
		quiere string
	}{
		{time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), "15 de agosto de 2026"},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "1 de enero de 2025"},
		{time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), "31 de diciembre de 2026"},
	}
	for _, c := range casos {
		if got := FechaLargaVE(c.fecha); got != c.quiere {
			t.Errorf("FechaLargaVE(%v) = %q, se esperaba %q", c.fecha, got, c.quiere)
		}
	}
}

func TestPeriodoVE(t *testing.T) {
	got := PeriodoVE(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
	if got != "AGOSTO 2026" {
		t.Errorf("PeriodoVE = %q, se esperaba AGOSTO 2026", got)
	}
}

func TestMesesAbreviados(t *testing.T) {
	if MesesAbreviados[0] != "Ene" || MesesAbreviados[11] != "Dic" {
		t.Errorf("MesesAbreviados = %v", MesesAbreviados)
	}
}
