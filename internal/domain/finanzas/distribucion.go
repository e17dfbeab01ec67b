package finanzas

import (
	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
)

// PrecioFleteDefault es el flete por unidad cuando el caller no lo especifica.
var PrecioFleteDefault = decimal.NewFromInt(500)

// DecimalesMoneda decimales de redondeo para montos persistidos.
const DecimalesMoneda = 2

// DistribucionGYA es el reparto de una venta entre los 3 bancos:
// bóveda monte (costo), flete sur (transporte) y utilidades (ganancia).
// Invariante: BovedaMonte + Fletes + Utilidades == PrecioTotal.
type DistribucionGYA struct {
	BovedaMonte decimal.Decimal
	Fletes      decimal.Decimal
	Utilidades  decimal.Decimal
	PrecioTotal decimal.Decimal
}

// CalcularDistribucionGYA calcula el reparto de una venta.
//
//	BovedaMonte = precioCompra × cantidad
//	Fletes      = precioFlete × cantidad
//	Utilidades  = (precioVenta - precioCompra - precioFlete) × cantidad
//
// La utilidad puede ser negativa (venta a pérdida): se reporta, no se recorta.
// Los resultados conservan precisión completa; el redondeo a 2 decimales
// ocurre únicamente al persistir.
func CalcularDistribucionGYA(precioVenta, precioCompra, precioFlete decimal.Decimal, cantidad int64) (DistribucionGYA, error) {
	if cantidad <= 0 {
		return DistribucionGYA{}, domain.ErrInvalidInput
	}
	if precioVenta.IsNegative() || precioCompra.IsNegative() || precioFlete.IsNegative() {
		return DistribucionGYA{}, domain.ErrInvalidInput
	}
	qty := decimal.NewFromInt(cantidad)
	return DistribucionGYA{
		BovedaMonte: precioCompra.Mul(qty),
		Fletes:      precioFlete.Mul(qty),
		Utilidades:  precioVenta.Sub(precioCompra).Sub(precioFlete).Mul(qty),
		PrecioTotal: precioVenta.Mul(qty),
	}, nil
}

// CostoOrdenCompra resultado del cálculo de una orden de compra.
type CostoOrdenCompra struct {
	CostoUnitario decimal.Decimal
	CostoTotal    decimal.Decimal
}

// CalcularOrdenCompra calcula el costo de una orden. costoDistribuidor y
// costoTransporte son montos a nivel de orden; el unitario se deriva.
func CalcularOrdenCompra(costoDistribuidor, costoTransporte decimal.Decimal, cantidad int64) (CostoOrdenCompra, error) {
	if cantidad <= 0 {
		return CostoOrdenCompra{}, domain.ErrInvalidInput
	}
	if costoDistribuidor.IsNegative() || costoTransporte.IsNegative() {
		return CostoOrdenCompra{}, domain.ErrInvalidInput
	}
	total := costoDistribuidor.Add(costoTransporte)
	return CostoOrdenCompra{
		CostoUnitario: total.Div(decimal.NewFromInt(cantidad)),
		CostoTotal:    total,
	}, nil
}

// RedondearMonto redondea a 2 decimales (mitad hacia arriba). Se aplica solo
// en el punto de persistencia para no acumular error en el reparto.
func RedondearMonto(v decimal.Decimal) decimal.Decimal {
	return v.Round(DecimalesMoneda)
}

// ValidarTransferencia verifica fondos del banco origen. No hay transferencias
// parciales: o alcanza el monto completo o falla.
func ValidarTransferencia(capitalOrigen, monto decimal.Decimal) error {
	if !monto.GreaterThan(decimal.Zero) {
		return domain.ErrMontoInvalido
	}
	if monto.GreaterThan(capitalOrigen) {
		return domain.ErrSaldoInsuficiente
	}
	return nil
}

// TotalesBancos agregados de los 7 bancos para reportes.
type TotalesBancos struct {
	CapitalTotal  decimal.Decimal
	IngresosTotal decimal.Decimal
	GastosTotal   decimal.Decimal
}

// CalcularTotalesBancos reduce los bancos a sus totales (reporte de resumen).
func CalcularTotalesBancos(bancos []*entity.Banco) TotalesBancos {
	var t TotalesBancos
	for _, b := range bancos {
		t.CapitalTotal = t.CapitalTotal.Add(b.CapitalActual)
		t.IngresosTotal = t.IngresosTotal.Add(b.HistoricoIngresos)
		t.GastosTotal = t.GastosTotal.Add(b.HistoricoGastos)
	}
	return t
}
