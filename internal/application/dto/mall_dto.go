package dto

import "time"

// CreateMallRequest entrada para crear un centro comercial.
type CreateMallRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	City    string `json:"city" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required,min=1,max=300"`
}

// UpdateMallRequest entrada para actualizar un centro comercial (campos opcionales).
type UpdateMallRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	City    *string `json:"city" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address" validate:"omitempty,min=1,max=300"`
}

// MallResponse salida de un centro comercial.
type MallResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MallListResponse lista paginada de centros comerciales.
type MallListResponse struct {
	Items []MallResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
