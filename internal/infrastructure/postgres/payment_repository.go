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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
//
// El filtro de dueño se resuelve con el join payment -> store -> client:
// un arrendatario solo ve pagos de locales asignados a su Client.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

const paymentOwnerCondition = ` store_id IN (
		SELECT s.id FROM stores s
		JOIN clients c ON c.id = s.client_id
		WHERE c.user_id = `

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, store_id, amount, currency, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		payment.ID, payment.StoreID, payment.Amount, payment.Currency, payment.Date,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID aplicando el filtro de fila.
func (r *PaymentRepo) GetByID(id string, filter access.RowFilter) (*entity.Payment, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, store_id, amount, currency, date, created_at, updated_at
		FROM payments WHERE id = $1`
	args := []any{id}
	if !filter.All {
		query += ` AND` + paymentOwnerCondition + `$2)`
		args = append(args, filter.OwnerUserID)
	}
	var p entity.Payment
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.StoreID, &p.Amount, &p.Currency, &p.Date, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}
	return &p, nil
}

// Update actualiza un pago.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET store_id = $2, amount = $3, currency = $4, date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		payment.ID, payment.StoreID, payment.Amount, payment.Currency, payment.Date, payment.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// List lista pagos con paginación aplicando el filtro de fila.
func (r *PaymentRepo) List(filter access.RowFilter, limit, offset int) ([]*entity.Payment, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, store_id, amount, currency, date, created_at, updated_at
		FROM payments`
	args := []any{}
	if !filter.All {
		query += ` WHERE` + paymentOwnerCondition + `$1)`
		args = append(args, filter.OwnerUserID)
	}
	query += fmt.Sprintf(` ORDER BY date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Amount, &p.Currency, &p.Date, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListForChart devuelve todos los pagos visibles sin paginar, en orden de
// fecha ascendente, para el agregado mensual del dashboard.
func (r *PaymentRepo) ListForChart(ctx context.Context, filter access.RowFilter) ([]entity.Payment, error) {
	if filter.DenyAll() {
		return nil, nil
	}
	query := `
		SELECT id, store_id, amount, currency, date, created_at, updated_at
		FROM payments`
	args := []any{}
	if !filter.All {
		query += ` WHERE` + paymentOwnerCondition + `$1)`
		args = append(args, filter.OwnerUserID)
	}
	query += ` ORDER BY date ASC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments for chart: %w", err)
	}
	defer rows.Close()
	var list []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Amount, &p.Currency, &p.Date, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}
