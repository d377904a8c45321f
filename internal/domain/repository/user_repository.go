package repository

import "github.com/tu-usuario/mall-office/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Count existe para el bootstrap: el primer usuario registrado es admin.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	Count() (int, error)
	// FindByEmail alias semántico para uso en auth.
	FindByEmail(email string) (*entity.User, error)
}
