package repository

import (
	"context"

	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store.
//
// Las lecturas reciben el access.RowFilter ya evaluado: con filtro de dueño
// solo devuelven tiendas cuyo client.user_id coincide; con DenyAll devuelven
// vacío sin tocar la DB.
//
// OwnerUserID implementa access.StoreOwnerFinder para el chequeo de
// propiedad al crear pagos.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string, filter access.RowFilter) (*entity.Store, error)
	Update(store *entity.Store) error
	List(filter access.RowFilter, limit, offset int) ([]*entity.Store, error)
	Delete(id string) error
	OwnerUserID(ctx context.Context, storeID string) (string, error)
}
