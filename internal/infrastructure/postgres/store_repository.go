package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
//
// client_id es NULL en la tabla cuando el local no está asignado; en la
// entidad se representa como cadena vacía (NULLIF/COALESCE en las queries).
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador de persistencia para locales.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// Create persiste un nuevo local.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, floor, mall_id, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		store.ID, store.Name, store.Floor, store.MallID, store.ClientID,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene un local por ID aplicando el filtro de fila.
func (r *StoreRepo) GetByID(id string, filter access.RowFilter) (*entity.Store, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, name, floor, mall_id, COALESCE(client_id, ''), created_at, updated_at
		FROM stores WHERE id = $1`
	args := []any{id}
	if !filter.All {
		query += ` AND client_id IN (SELECT id FROM clients WHERE user_id = $2)`
		args = append(args, filter.OwnerUserID)
	}
	var s entity.Store
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Name, &s.Floor, &s.MallID, &s.ClientID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return &s, nil
}

// Update actualiza un local.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, floor = $3, mall_id = $4, client_id = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		store.ID, store.Name, store.Floor, store.MallID, store.ClientID, store.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// List lista locales con paginación aplicando el filtro de fila.
func (r *StoreRepo) List(filter access.RowFilter, limit, offset int) ([]*entity.Store, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, name, floor, mall_id, COALESCE(client_id, ''), created_at, updated_at
		FROM stores`
	args := []any{}
	if !filter.All {
		query += ` WHERE client_id IN (SELECT id FROM clients WHERE user_id = $1)`
		args = append(args, filter.OwnerUserID)
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Floor, &s.MallID, &s.ClientID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un local por ID.
func (r *StoreRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// OwnerUserID resuelve el dueño transitivo de un local (store.client.user_id).
// Devuelve cadena vacía sin error si el local no existe o no está asignado:
// el chequeo de propiedad trata ambos casos como "sin dueño" y deniega.
func (r *StoreRepo) OwnerUserID(ctx context.Context, storeID string) (string, error) {
	query := `
		SELECT c.user_id
		FROM stores s
		JOIN clients c ON c.id = s.client_id
		WHERE s.id = $1`
	var userID string
	err := r.pool.QueryRow(ctx, query, storeID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get store owner: %w", err)
	}
	return userID, nil
}
