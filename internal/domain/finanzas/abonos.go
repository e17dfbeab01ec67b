package finanzas

import (
	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
)

// AsignacionAbono es la porción de un abono aplicada a una venta concreta.
type AsignacionAbono struct {
	VentaID string
	Monto   decimal.Decimal
}

// ResultadoAbonoFIFO asignaciones de un abono más el sobrante no aplicado.
type ResultadoAbonoFIFO struct {
	Asignaciones []AsignacionAbono
	Sobrante     decimal.Decimal
}

// AplicarAbonoFIFO recorre las ventas pendientes de la más antigua a la más
// reciente y aplica el abono hasta agotar el monto o las ventas. La deuda más
// vieja se liquida primero; nunca reparto proporcional ni de la más nueva.
// El caller recibe ventas ya ordenadas por fecha ascendente.
// No muta las ventas: devuelve las asignaciones para que el orquestador las
// aplique dentro del commit atómico.
func AplicarAbonoFIFO(ventas []*entity.Venta, monto decimal.Decimal) (ResultadoAbonoFIFO, error) {
	if !monto.GreaterThan(decimal.Zero) {
		return ResultadoAbonoFIFO{}, domain.ErrMontoInvalido
	}
	restante := monto
	var asignaciones []AsignacionAbono
	for _, v := range ventas {
		if !restante.GreaterThan(decimal.Zero) {
			break
		}
		if !v.MontoRestante.GreaterThan(decimal.Zero) {
			continue
		}
		aplicado := decimal.Min(restante, v.MontoRestante)
		asignaciones = append(asignaciones, AsignacionAbono{VentaID: v.ID, Monto: aplicado})
		restante = restante.Sub(aplicado)
	}
	return ResultadoAbonoFIFO{Asignaciones: asignaciones, Sobrante: restante}, nil
}

// ReconciliarDeuda re-deriva la deuda agregada de un cliente o distribuidor
// como la suma de sus saldos pendientes. Se invoca tras cada mutación
// relacionada para que el campo agregado nunca se desvíe de los subyacentes.
func ReconciliarDeuda(saldos []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range saldos {
		total = total.Add(s)
	}
	return total
}
