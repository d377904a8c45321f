package repository

import "github.com/tu-usuario/mall-office/internal/domain/entity"

// MallRepository define el puerto de persistencia para Mall.
// Mall no tiene filtro de fila: cualquier sesión autenticada ve todos.
type MallRepository interface {
	Create(mall *entity.Mall) error
	GetByID(id string) (*entity.Mall, error)
	Update(mall *entity.Mall) error
	List(limit, offset int) ([]*entity.Mall, error)
	Delete(id string) error
}
