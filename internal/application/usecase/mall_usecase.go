package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/domain/repository"
)

// MallUseCase aplica reglas de negocio para centros comerciales.
type MallUseCase struct {
	repo repository.MallRepository
}

// NewMallUseCase construye el caso de uso con el puerto de persistencia.
func NewMallUseCase(repo repository.MallRepository) *MallUseCase {
	return &MallUseCase{repo: repo}
}

// Create crea un centro comercial. Genera ID y timestamps.
func (uc *MallUseCase) Create(in dto.CreateMallRequest) (*dto.MallResponse, error) {
	if in.Name == "" || in.City == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	mall := &entity.Mall{
		ID:        uuid.New().String(),
		Name:      in.Name,
		City:      in.City,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(mall); err != nil {
		return nil, err
	}
	return entityToMallResponse(mall), nil
}

// GetByID obtiene un centro comercial por ID.
func (uc *MallUseCase) GetByID(id string) (*dto.MallResponse, error) {
	mall, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mall == nil {
		return nil, nil
	}
	return entityToMallResponse(mall), nil
}

// List lista centros comerciales con paginación.
func (uc *MallUseCase) List(limit, offset int) (*dto.MallListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MallResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *entityToMallResponse(m))
	}
	return &dto.MallListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes.
func (uc *MallUseCase) Update(id string, in dto.UpdateMallRequest) (*dto.MallResponse, error) {
	mall, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mall == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		mall.Name = *in.Name
	}
	if in.City != nil {
		mall.City = *in.City
	}
	if in.Address != nil {
		mall.Address = *in.Address
	}
	mall.UpdatedAt = time.Now()
	if err := uc.repo.Update(mall); err != nil {
		return nil, err
	}
	return entityToMallResponse(mall), nil
}

// Delete elimina un centro comercial por ID.
func (uc *MallUseCase) Delete(id string) error {
	mall, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if mall == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToMallResponse(m *entity.Mall) *dto.MallResponse {
	if m == nil {
		return nil
	}
	return &dto.MallResponse{
		ID:        m.ID,
		Name:      m.Name,
		City:      m.City,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
