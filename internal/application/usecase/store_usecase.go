package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/domain/repository"
)

// StoreUseCase aplica reglas de negocio para locales.
// Las lecturas reciben el RowFilter del evaluador de acceso: los use cases
// nunca inspeccionan la sesión, solo propagan el filtro al repositorio.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso con el puerto de persistencia.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea un local. La existencia del mall (y del cliente si viene) la
// garantiza la clave foránea; el repositorio mapea la violación a ErrNotFound.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" || in.MallID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Floor:     in.Floor,
		MallID:    in.MallID,
		ClientID:  in.ClientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return entityToStoreResponse(store), nil
}

// GetByID obtiene un local visible bajo el filtro de la sesión.
// Devuelve nil si no existe o si el filtro no lo deja ver.
func (uc *StoreUseCase) GetByID(id string, filter access.RowFilter) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id, filter)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return entityToStoreResponse(store), nil
}

// List lista los locales visibles bajo el filtro, con paginación.
func (uc *StoreUseCase) List(filter access.RowFilter, limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes (solo admin llega aquí, sin filtro).
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id, access.RowFilter{All: true})
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Floor != nil {
		store.Floor = *in.Floor
	}
	if in.MallID != nil {
		store.MallID = *in.MallID
	}
	if in.ClientID != nil {
		store.ClientID = *in.ClientID // vacío = desasignar
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return entityToStoreResponse(store), nil
}

// Delete elimina un local por ID.
func (uc *StoreUseCase) Delete(id string) error {
	store, err := uc.repo.GetByID(id, access.RowFilter{All: true})
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Floor:     s.Floor,
		MallID:    s.MallID,
		ClientID:  s.ClientID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
