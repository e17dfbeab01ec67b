package repository

import "github.com/chronos/tesoreria-api/internal/domain/entity"

// OrdenCompraRepository puerto de persistencia para órdenes de compra.
type OrdenCompraRepository interface {
	Create(orden *entity.OrdenCompra) error
	GetByID(id string) (*entity.OrdenCompra, error)
	// ListPendientesByDistribuidor devuelve las órdenes con deuda del
	// distribuidor ordenadas por fecha ascendente, con bloqueo de fila.
	ListPendientesByDistribuidor(distribuidorID string) ([]*entity.OrdenCompra, error)
	ListByDistribuidor(distribuidorID string, limit, offset int) ([]*entity.OrdenCompra, error)
	Update(orden *entity.OrdenCompra) error
}
