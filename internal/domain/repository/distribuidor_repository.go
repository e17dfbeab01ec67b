package repository

import "github.com/chronos/tesoreria-api/internal/domain/entity"

// DistribuidorRepository puerto de persistencia para distribuidores.
type DistribuidorRepository interface {
	Create(dist *entity.Distribuidor) error
	GetByID(id string) (*entity.Distribuidor, error)
	GetForUpdate(id string) (*entity.Distribuidor, error)
	List(limit, offset int) ([]*entity.Distribuidor, error)
	Update(dist *entity.Distribuidor) error
}
