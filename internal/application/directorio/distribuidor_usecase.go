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

// DistribuidorUseCase casos de uso del directorio de distribuidores.
type DistribuidorUseCase struct {
	repo repository.DistribuidorRepository
}

// NewDistribuidorUseCase construye el caso de uso.
func NewDistribuidorUseCase(repo repository.DistribuidorRepository) *DistribuidorUseCase {
	return &DistribuidorUseCase{repo: repo}
}

// Create crea un distribuidor nuevo con deuda cero.
func (uc *DistribuidorUseCase) Create(in dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	dist := &entity.Distribuidor{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Empresa:    in.Empresa,
		Email:      in.Email,
		Telefono:   in.Telefono,
		DeudaTotal: decimal.Zero,
		Estado:     "activo",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(dist); err != nil {
		return nil, err
	}
	return toDistribuidorResponse(dist), nil
}

// GetByID obtiene un distribuidor.
func (uc *DistribuidorUseCase) GetByID(id string) (*dto.DistribuidorResponse, error) {
	dist, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.ErrNotFound
	}
	return toDistribuidorResponse(dist), nil
}

// List lista distribuidores paginados.
func (uc *DistribuidorUseCase) List(page dto.PageRequest) ([]*dto.DistribuidorResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DistribuidorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDistribuidorResponse(d))
	}
	return out, nil
}

func toDistribuidorResponse(d *entity.Distribuidor) *dto.DistribuidorResponse {
	return &dto.DistribuidorResponse{
		ID:         d.ID,
		Nombre:     d.Nombre,
		Empresa:    d.Empresa,
		Email:      d.Email,
		Telefono:   d.Telefono,
		DeudaTotal: d.DeudaTotal,
		Estado:     d.Estado,
		CreatedAt:  d.CreatedAt,
	}
}
