package entity

import "time"

// Mall representa un centro comercial (propiedad física).
type Mall struct {
	ID        string
	Name      string
	City      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
