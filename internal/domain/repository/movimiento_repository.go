package repository

import "github.com/chronos/tesoreria-api/internal/domain/entity"

// MovimientoRepository puerto de persistencia del libro de movimientos.
// Los movimientos solo se insertan; no existe Update ni Delete.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	ListByBanco(bancoID string, limit, offset int) ([]*entity.Movimiento, error)
	ListByReferencia(referencia string) ([]*entity.Movimiento, error)
}
