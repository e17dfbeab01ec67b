package repository

import "github.com/chronos/tesoreria-api/internal/domain/entity"

// VentaRepository puerto de persistencia para ventas.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	// ListPendientesByCliente devuelve las ventas con saldo restante del
	// cliente ordenadas por fecha ascendente (requisito del abono FIFO),
	// bloqueando las filas para update.
	ListPendientesByCliente(clienteID string) ([]*entity.Venta, error)
	ListByCliente(clienteID string, limit, offset int) ([]*entity.Venta, error)
	Update(venta *entity.Venta) error
}
