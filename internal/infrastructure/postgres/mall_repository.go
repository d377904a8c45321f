package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/domain/repository"
)

var _ repository.MallRepository = (*MallRepo)(nil)

// MallRepo implementación del puerto MallRepository sobre PostgreSQL.
type MallRepo struct {
	pool *pgxpool.Pool
}

// NewMallRepository construye el adaptador de persistencia para centros comerciales.
func NewMallRepository(pool *pgxpool.Pool) *MallRepo {
	return &MallRepo{pool: pool}
}

// Create persiste un nuevo centro comercial.
func (r *MallRepo) Create(mall *entity.Mall) error {
	query := `
		INSERT INTO malls (id, name, city, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		mall.ID, mall.Name, mall.City, mall.Address, mall.CreatedAt, mall.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mall: %w", err)
	}
	return nil
}

// GetByID obtiene un centro comercial por ID.
func (r *MallRepo) GetByID(id string) (*entity.Mall, error) {
	query := `
		SELECT id, name, city, address, created_at, updated_at
		FROM malls WHERE id = $1`
	var m entity.Mall
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.City, &m.Address, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mall by id: %w", err)
	}
	return &m, nil
}

// Update actualiza un centro comercial.
func (r *MallRepo) Update(mall *entity.Mall) error {
	query := `
		UPDATE malls SET name = $2, city = $3, address = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		mall.ID, mall.Name, mall.City, mall.Address, mall.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mall: %w", err)
	}
	return nil
}

// List lista centros comerciales con paginación.
func (r *MallRepo) List(limit, offset int) ([]*entity.Mall, error) {
	query := `
		SELECT id, name, city, address, created_at, updated_at
		FROM malls ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list malls: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mall
	for rows.Next() {
		var m entity.Mall
		if err := rows.Scan(&m.ID, &m.Name, &m.City, &m.Address, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mall: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un centro comercial por ID.
func (r *MallRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM malls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mall: %w", err)
	}
	return nil
}
