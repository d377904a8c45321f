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

// ClientUseCase aplica reglas de negocio para arrendatarios.
type ClientUseCase struct {
	repo     repository.ClientRepository
	userRepo repository.UserRepository
}

// NewClientUseCase construye el caso de uso con los puertos de persistencia.
func NewClientUseCase(repo repository.ClientRepository, userRepo repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un arrendatario vinculado a un usuario existente.
// Devuelve domain.ErrNotFound si el usuario no existe y domain.ErrDuplicate
// si ese usuario ya tiene perfil de arrendatario (vínculo 1:1).
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.UserID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetByUserID(in.UserID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// GetByID obtiene un arrendatario visible bajo el filtro de la sesión.
func (uc *ClientUseCase) GetByID(id string, filter access.RowFilter) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id, filter)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return entityToClientResponse(client), nil
}

// List lista los arrendatarios visibles bajo el filtro, con paginación.
// Para una sesión client la lista contiene a lo sumo su propio registro.
func (uc *ClientUseCase) List(filter access.RowFilter, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes (solo admin llega aquí).
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id, access.RowFilter{All: true})
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.PhoneNumber != nil {
		client.PhoneNumber = *in.PhoneNumber
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// Delete elimina un arrendatario por ID.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id, access.RowFilter{All: true})
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
