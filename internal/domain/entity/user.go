package entity

import "time"

// User representa una identidad del sistema.
// El rol vive en internal/domain/access (RoleAdmin, RoleClient); un rol vacío
// o desconocido no pasa ninguna regla de acceso.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // "admin", "client" o "" (sin rol)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
