// Package payments contiene los casos de uso de pagos de renta: registro con
// verificación de propiedad, consultas filtradas por acceso y comprobantes.
package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/domain/repository"
)

// PaymentUseCase aplica reglas de negocio para pagos de renta.
type PaymentUseCase struct {
	repo       repository.PaymentRepository
	storeRepo  repository.StoreRepository
	mallRepo   repository.MallRepository
	clientRepo repository.ClientRepository
	receipts   ReceiptGenerator
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	repo repository.PaymentRepository,
	storeRepo repository.StoreRepository,
	mallRepo repository.MallRepository,
	clientRepo repository.ClientRepository,
	receipts ReceiptGenerator,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:       repo,
		storeRepo:  storeRepo,
		mallRepo:   mallRepo,
		clientRepo: clientRepo,
		receipts:   receipts,
	}
}

// Create registra un pago de renta.
//
// Además del gate de operación (admin o client, ya verificado en la capa
// HTTP), aquí corre el chequeo a nivel de ítem: un client solo puede pagar
// contra una tienda de su propiedad. El lookup del dueño lo hace el
// evaluador de acceso contra el repositorio de tiendas y falla cerrado.
// Si Date no viene, se usa el momento de creación.
func (uc *PaymentUseCase) Create(ctx context.Context, sess access.Session, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.StoreID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCurrency(in.Currency) {
		return nil, domain.ErrInvalidCurrency
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !access.CanCreatePayment(ctx, sess, in.StoreID, uc.storeRepo) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return entityToPaymentResponse(payment), nil
}

// GetByID obtiene un pago visible bajo el filtro de la sesión.
func (uc *PaymentUseCase) GetByID(id string, filter access.RowFilter) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id, filter)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return entityToPaymentResponse(payment), nil
}

// List lista los pagos visibles bajo el filtro, con paginación.
func (uc *PaymentUseCase) List(filter access.RowFilter, limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update corrige un pago (solo admin llega aquí).
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id, access.RowFilter{All: true})
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = *in.Amount
	}
	if in.Currency != nil {
		if !entity.ValidCurrency(*in.Currency) {
			return nil, domain.ErrInvalidCurrency
		}
		payment.Currency = *in.Currency
	}
	if in.Date != nil {
		payment.Date = *in.Date
	}
	payment.UpdatedAt = time.Now()
	if err := uc.repo.Update(payment); err != nil {
		return nil, err
	}
	return entityToPaymentResponse(payment), nil
}

// Delete elimina un pago por ID.
func (uc *PaymentUseCase) Delete(id string) error {
	payment, err := uc.repo.GetByID(id, access.RowFilter{All: true})
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Receipt genera el comprobante PDF de un pago visible bajo el filtro de la
// sesión. Devuelve domain.ErrNotFound si el pago no existe o el filtro no lo
// deja ver (mismo trato para ambos casos: no se revela la existencia).
func (uc *PaymentUseCase) Receipt(ctx context.Context, id string, filter access.RowFilter) ([]byte, error) {
	payment, err := uc.repo.GetByID(id, filter)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	store, err := uc.storeRepo.GetByID(payment.StoreID, access.RowFilter{All: true})
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	mall, err := uc.mallRepo.GetByID(store.MallID)
	if err != nil {
		return nil, err
	}
	var client *entity.Client
	if store.ClientID != "" {
		client, err = uc.clientRepo.GetByID(store.ClientID, access.RowFilter{All: true})
		if err != nil {
			return nil, err
		}
	}
	return uc.receipts.GenerateReceiptPDF(ctx, ReceiptData{
		Payment: payment,
		Store:   store,
		Mall:    mall,
		Client:  client,
	})
}

func entityToPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:        p.ID,
		StoreID:   p.StoreID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
