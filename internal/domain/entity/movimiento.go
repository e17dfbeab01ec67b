package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/domain"
)

// Tipos de movimiento de tesorería.
const (
	MovimientoIngreso              = "ingreso"
	MovimientoGasto                = "gasto"
	MovimientoTransferenciaEntrada = "transferencia_entrada"
	MovimientoTransferenciaSalida  = "transferencia_salida"
	MovimientoAbono                = "abono" // pago recibido de un cliente
	MovimientoPago                 = "pago"  // pago hecho a un distribuidor
)

// Movimiento es el registro inmutable de un flujo de dinero que afecta
// exactamente un banco. Una vez confirmado no se edita; las correcciones son
// movimientos nuevos de signo opuesto que referencian al original.
type Movimiento struct {
	ID         string
	BancoID    string
	Tipo       string
	Monto      decimal.Decimal // siempre positivo; el tipo determina el signo
	Fecha      time.Time
	Concepto   string
	Referencia string // agrupa pares de transferencia y correcciones

	// Referencias débiles a las entidades relacionadas.
	ClienteID      string
	DistribuidorID string
	VentaID        string
	OrdenCompraID  string

	CreatedBy string
	CreatedAt time.Time
}

// NuevoMovimiento valida y construye un movimiento. Falla con ErrMontoInvalido
// si monto <= 0 y con ErrBancoDesconocido si el banco no es uno de los 7.
func NuevoMovimiento(bancoID, tipo string, monto decimal.Decimal, fecha time.Time, concepto string) (*Movimiento, error) {
	if !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	if !EsBancoValido(bancoID) {
		return nil, domain.ErrBancoDesconocido
	}
	switch tipo {
	case MovimientoIngreso, MovimientoGasto, MovimientoTransferenciaEntrada,
		MovimientoTransferenciaSalida, MovimientoAbono, MovimientoPago:
	default:
		return nil, domain.ErrInvalidInput
	}
	return &Movimiento{
		BancoID:  bancoID,
		Tipo:     tipo,
		Monto:    monto,
		Fecha:    fecha,
		Concepto: concepto,
	}, nil
}
