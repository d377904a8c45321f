package entity

import "time"

// Store representa un local arrendable dentro de un Mall.
// ClientID es opcional: un local sin asignar no pertenece a ningún arrendatario.
type Store struct {
	ID        string
	Name      string
	Floor     int
	MallID    string
	ClientID  string // vacío = local sin asignar
	CreatedAt time.Time
	UpdatedAt time.Time
}
