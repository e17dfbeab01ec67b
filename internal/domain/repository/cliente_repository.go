package repository

import "github.com/chronos/tesoreria-api/internal/domain/entity"

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetForUpdate(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
}
