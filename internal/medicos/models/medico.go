package models

import "time"

// Medico es el profesional que emite las evaluaciones y firma los
// certificados.
type Medico struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	MPPS      string    `json:"mpps"`
	CMM       string    `json:"cmm"`
	CreatedAt time.Time `json:"created_at"`
}
