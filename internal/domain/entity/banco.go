package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/domain"
)

// IDs de los 7 bancos fijos del sistema. Se siembran una sola vez y nunca se borran.
const (
	BancoBovedaMonte = "boveda_monte" // recibe el costo de cada venta
	BancoBovedaUSA   = "boveda_usa"   // capital en dólares
	BancoProfit      = "profit"
	BancoLeftie      = "leftie"
	BancoAzteca      = "azteca"
	BancoFleteSur    = "flete_sur"  // recibe el flete de cada venta
	BancoUtilidades  = "utilidades" // recibe la ganancia neta de cada venta
)

// BancoIDs lista los 7 IDs en su orden canónico.
var BancoIDs = []string{
	BancoBovedaMonte,
	BancoBovedaUSA,
	BancoProfit,
	BancoLeftie,
	BancoAzteca,
	BancoFleteSur,
	BancoUtilidades,
}

// EsBancoValido indica si el ID corresponde a uno de los 7 bancos.
func EsBancoValido(id string) bool {
	for _, b := range BancoIDs {
		if b == id {
			return true
		}
	}
	return false
}

// Monedas soportadas. No hay conversión: cada banco opera en su moneda.
const (
	MonedaMXN = "MXN"
	MonedaUSD = "USD"
)

// Banco es una de las 7 bóvedas de capital. Su saldo solo se muta aplicando
// movimientos; invariante: CapitalActual = saldo inicial + HistoricoIngresos
// - HistoricoGastos + HistoricoTransferencias.
type Banco struct {
	ID                      string
	Nombre                  string
	Tipo                    string // operativo | inversion | ahorro
	Moneda                  string
	CapitalActual           decimal.Decimal
	HistoricoIngresos       decimal.Decimal
	HistoricoGastos         decimal.Decimal
	HistoricoTransferencias decimal.Decimal
	Orden                   int
	Activo                  bool
	UpdatedAt               time.Time
}

// Aplicar muta el banco según el tipo de movimiento. Entradas (ingreso, abono,
// transferencia_entrada) nunca fallan; salidas (gasto, pago,
// transferencia_salida) fallan con ErrSaldoInsuficiente si dejarían el capital
// negativo, sin tocar el banco.
func (b *Banco) Aplicar(mov *Movimiento) error {
	if mov.BancoID != b.ID {
		return domain.ErrBancoDesconocido
	}
	switch mov.Tipo {
	case MovimientoIngreso, MovimientoAbono:
		b.CapitalActual = b.CapitalActual.Add(mov.Monto)
		b.HistoricoIngresos = b.HistoricoIngresos.Add(mov.Monto)
	case MovimientoTransferenciaEntrada:
		b.CapitalActual = b.CapitalActual.Add(mov.Monto)
		b.HistoricoTransferencias = b.HistoricoTransferencias.Add(mov.Monto)
	case MovimientoGasto, MovimientoPago:
		if mov.Monto.GreaterThan(b.CapitalActual) {
			return domain.ErrSaldoInsuficiente
		}
		b.CapitalActual = b.CapitalActual.Sub(mov.Monto)
		b.HistoricoGastos = b.HistoricoGastos.Add(mov.Monto)
	case MovimientoTransferenciaSalida:
		if mov.Monto.GreaterThan(b.CapitalActual) {
			return domain.ErrSaldoInsuficiente
		}
		b.CapitalActual = b.CapitalActual.Sub(mov.Monto)
		b.HistoricoTransferencias = b.HistoricoTransferencias.Sub(mov.Monto)
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// BancosSeed devuelve los 7 bancos con saldo cero, listos para sembrar.
func BancosSeed() []*Banco {
	seed := []struct {
		id, nombre, tipo, moneda string
	}{
		{BancoBovedaMonte, "Bóveda Monte", "operativo", MonedaMXN},
		{BancoBovedaUSA, "Bóveda USA", "operativo", MonedaUSD},
		{BancoProfit, "Profit", "inversion", MonedaMXN},
		{BancoLeftie, "Leftie", "ahorro", MonedaMXN},
		{BancoAzteca, "Azteca", "operativo", MonedaMXN},
		{BancoFleteSur, "Flete Sur", "operativo", MonedaMXN},
		{BancoUtilidades, "Utilidades", "inversion", MonedaMXN},
	}
	bancos := make([]*Banco, 0, len(seed))
	for i, s := range seed {
		bancos = append(bancos, &Banco{
			ID:     s.id,
			Nombre: s.nombre,
			Tipo:   s.tipo,
			Moneda: s.moneda,
			Orden:  i + 1,
			Activo: true,
		})
	}
	return bancos
}
