package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenCompra registra la compra de un lote a un distribuidor.
// Invariante: Deuda = CostoTotal - MontoPagado, Deuda >= 0.
type OrdenCompra struct {
	ID             string
	DistribuidorID string
	Fecha          time.Time

	Producto          string
	Cantidad          int64
	CostoDistribuidor decimal.Decimal // costo total del lote con el distribuidor
	CostoTransporte   decimal.Decimal
	CostoUnitario     decimal.Decimal
	CostoTotal        decimal.Decimal

	MontoPagado decimal.Decimal
	Deuda       decimal.Decimal
	EstadoPago  string

	BancoOrigenID string // banco del pago inicial, si lo hubo
	Observaciones string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AplicarPago suma el pago, descuenta la deuda y deriva el estado.
// El caller garantiza monto <= Deuda.
func (oc *OrdenCompra) AplicarPago(monto decimal.Decimal) {
	oc.MontoPagado = oc.MontoPagado.Add(monto)
	oc.Deuda = oc.Deuda.Sub(monto)
	oc.DerivarEstadoPago()
}

// DerivarEstadoPago recalcula EstadoPago a partir de la deuda.
func (oc *OrdenCompra) DerivarEstadoPago() {
	switch {
	case oc.Deuda.IsZero():
		oc.EstadoPago = PagoCompleto
	case oc.MontoPagado.IsZero():
		oc.EstadoPago = PagoPendiente
	default:
		oc.EstadoPago = PagoParcial
	}
}
