package dto

import "time"

// CreateClientRequest entrada para crear un arrendatario.
// UserID vincula el perfil con la identidad que inicia sesión.
type CreateClientRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	PhoneNumber string `json:"phone_number" validate:"required,min=1,max=30"`
}

// UpdateClientRequest entrada para actualizar un arrendatario (campos opcionales).
type UpdateClientRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=1,max=30"`
}

// ClientResponse salida de un arrendatario.
type ClientResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de arrendatarios.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
