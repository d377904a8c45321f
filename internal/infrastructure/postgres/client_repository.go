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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository construye el adaptador de persistencia para arrendatarios.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create persiste un nuevo arrendatario.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name, client.PhoneNumber,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un arrendatario por ID aplicando el filtro de fila.
func (r *ClientRepo) GetByID(id string, filter access.RowFilter) (*entity.Client, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, user_id, name, phone_number, created_at, updated_at
		FROM clients WHERE id = $1`
	args := []any{id}
	if !filter.All {
		query += ` AND user_id = $2`
		args = append(args, filter.OwnerUserID)
	}
	var c entity.Client
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return &c, nil
}

// GetByUserID obtiene el arrendatario vinculado a un usuario.
func (r *ClientRepo) GetByUserID(userID string) (*entity.Client, error) {
	query := `
		SELECT id, user_id, name, phone_number, created_at, updated_at
		FROM clients WHERE user_id = $1 LIMIT 1`
	var c entity.Client
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by user id: %w", err)
	}
	return &c, nil
}

// Update actualiza un arrendatario.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET user_id = $2, name = $3, phone_number = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name, client.PhoneNumber, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// List lista arrendatarios con paginación aplicando el filtro de fila.
func (r *ClientRepo) List(filter access.RowFilter, limit, offset int) ([]*entity.Client, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, user_id, name, phone_number, created_at, updated_at
		FROM clients`
	args := []any{}
	if !filter.All {
		query += ` WHERE user_id = $1`
		args = append(args, filter.OwnerUserID)
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un arrendatario por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
