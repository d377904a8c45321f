package entity

import "time"

// Client representa un arrendatario (tenant) de locales.
// Se vincula 1:1 con un User: la propiedad de tiendas y pagos se resuelve
// siempre a través de UserID.
type Client struct {
	ID          string
	UserID      string
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
