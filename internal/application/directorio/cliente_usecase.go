package directorio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// ClienteUseCase casos de uso del directorio de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente nuevo con deuda cero.
func (uc *ClienteUseCase) Create(in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Email:      in.Email,
		Telefono:   in.Telefono,
		DeudaTotal: decimal.Zero,
		Estado:     "activo",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes paginados.
func (uc *ClienteUseCase) List(page dto.PageRequest) ([]*dto.ClienteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:         c.ID,
		Nombre:     c.Nombre,
		Email:      c.Email,
		Telefono:   c.Telefono,
		DeudaTotal: c.DeudaTotal,
		Estado:     c.Estado,
		CreatedAt:  c.CreatedAt,
	}
}
