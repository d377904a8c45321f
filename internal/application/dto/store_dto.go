package dto

import "time"

// CreateStoreRequest entrada para crear un local.
// ClientID es opcional: los locales pueden existir sin arrendatario.
type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Floor    int    `json:"floor" validate:"required"`
	MallID   string `json:"mall_id" validate:"required,uuid"`
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
}

// UpdateStoreRequest entrada para actualizar un local (campos opcionales).
// ClientID con string vacío desasigna el local.
type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Floor    *int    `json:"floor"`
	MallID   *string `json:"mall_id" validate:"omitempty,uuid"`
	ClientID *string `json:"client_id"`
}

// StoreResponse salida de un local.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Floor     int       `json:"floor"`
	MallID    string    `json:"mall_id"`
	ClientID  string    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse lista paginada de locales.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
