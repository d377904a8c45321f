package repository

import (
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Las lecturas aplican el access.RowFilter: un arrendatario solo ve su propio
// registro de Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string, filter access.RowFilter) (*entity.Client, error)
	GetByUserID(userID string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(filter access.RowFilter, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
