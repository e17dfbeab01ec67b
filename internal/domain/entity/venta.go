package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una venta. Derivados siempre de MontoRestante.
const (
	PagoPendiente = "pendiente"
	PagoParcial   = "parcial"
	PagoCompleto  = "completo"
)

// DistribucionVenta es el reparto del precio total entre los 3 bancos GYA.
// Invariante: BovedaMonte + Fletes + Utilidades == precio total de la venta.
type DistribucionVenta struct {
	BovedaMonte decimal.Decimal
	Fletes      decimal.Decimal
	Utilidades  decimal.Decimal
}

// Venta registra la venta de un lote a un cliente.
// Invariantes: MontoPagado + MontoRestante == PrecioTotal;
// EstadoPago derivado de MontoRestante, nunca asignado a mano.
type Venta struct {
	ID        string
	ClienteID string
	Fecha     time.Time

	Producto           string
	Cantidad           int64
	PrecioVentaUnidad  decimal.Decimal
	PrecioCompraUnidad decimal.Decimal
	PrecioFleteUnidad  decimal.Decimal

	PrecioTotal   decimal.Decimal
	MontoPagado   decimal.Decimal
	MontoRestante decimal.Decimal
	EstadoPago    string

	Distribucion DistribucionVenta

	Observaciones string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DerivarEstadoPago recalcula EstadoPago a partir de MontoRestante.
func (v *Venta) DerivarEstadoPago() {
	switch {
	case v.MontoRestante.IsZero():
		v.EstadoPago = PagoCompleto
	case v.MontoRestante.Equal(v.PrecioTotal):
		v.EstadoPago = PagoPendiente
	default:
		v.EstadoPago = PagoParcial
	}
}

// AplicarAbono suma el monto al pagado, descuenta el restante y deriva el
// estado. El caller garantiza monto <= MontoRestante (asignación FIFO).
func (v *Venta) AplicarAbono(monto decimal.Decimal) {
	v.MontoPagado = v.MontoPagado.Add(monto)
	v.MontoRestante = v.MontoRestante.Sub(monto)
	v.DerivarEstadoPago()
}
