package finanzas_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/finanzas"
)

// ventaPendiente construye una venta con saldo restante, fechada n días atrás.
func ventaPendiente(id string, restante int64, diasAtras int) *entity.Venta {
	total := decimal.NewFromInt(restante)
	v := &entity.Venta{
		ID:            id,
		Fecha:         time.Now().AddDate(0, 0, -diasAtras),
		PrecioTotal:   total,
		MontoPagado:   decimal.Zero,
		MontoRestante: total,
	}
	v.DerivarEstadoPago()
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// FIFO: la deuda más antigua se liquida primero.
//
// Vector del comportamiento esperado: saldos [100, 50, 200] (antigua → nueva),
// abono de 120 → [(venta1,100), (venta2,20)], sobrante 0.
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicarAbonoFIFO_VectorBasico(t *testing.T) {
	ventas := []*entity.Venta{
		ventaPendiente("v1", 100, 30),
		ventaPendiente("v2", 50, 20),
		ventaPendiente("v3", 200, 10),
	}

	res, err := finanzas.AplicarAbonoFIFO(ventas, decimal.NewFromInt(120))
	require.NoError(t, err)

	require.Len(t, res.Asignaciones, 2)
	assert.Equal(t, "v1", res.Asignaciones[0].VentaID)
	assert.True(t, res.Asignaciones[0].Monto.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "v2", res.Asignaciones[1].VentaID)
	assert.True(t, res.Asignaciones[1].Monto.Equal(decimal.NewFromInt(20)))
	assert.True(t, res.Sobrante.IsZero())

	// Al aplicar las asignaciones, v1 queda completa y v2 parcial con 30.
	for _, a := range res.Asignaciones {
		for _, v := range ventas {
			if v.ID == a.VentaID {
				v.AplicarAbono(a.Monto)
			}
		}
	}
	assert.Equal(t, entity.PagoCompleto, ventas[0].EstadoPago)
	assert.Equal(t, entity.PagoParcial, ventas[1].EstadoPago)
	assert.True(t, ventas[1].MontoRestante.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, entity.PagoPendiente, ventas[2].EstadoPago)
}

func TestAplicarAbonoFIFO_SobranteCuandoExcede(t *testing.T) {
	ventas := []*entity.Venta{ventaPendiente("v1", 80, 5)}

	res, err := finanzas.AplicarAbonoFIFO(ventas, decimal.NewFromInt(100))
	require.NoError(t, err)

	require.Len(t, res.Asignaciones, 1)
	assert.True(t, res.Asignaciones[0].Monto.Equal(decimal.NewFromInt(80)))
	assert.True(t, res.Sobrante.Equal(decimal.NewFromInt(20)),
		"el sobrante no aplicado se devuelve al caller")
}

func TestAplicarAbonoFIFO_IgnoraVentasSaldadas(t *testing.T) {
	saldada := ventaPendiente("v0", 100, 40)
	saldada.AplicarAbono(decimal.NewFromInt(100))
	ventas := []*entity.Venta{saldada, ventaPendiente("v1", 60, 10)}

	res, err := finanzas.AplicarAbonoFIFO(ventas, decimal.NewFromInt(50))
	require.NoError(t, err)

	require.Len(t, res.Asignaciones, 1)
	assert.Equal(t, "v1", res.Asignaciones[0].VentaID)
}

func TestAplicarAbonoFIFO_SinVentas(t *testing.T) {
	res, err := finanzas.AplicarAbonoFIFO(nil, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Empty(t, res.Asignaciones)
	assert.True(t, res.Sobrante.Equal(decimal.NewFromInt(50)))
}

func TestAplicarAbonoFIFO_MontoInvalido(t *testing.T) {
	_, err := finanzas.AplicarAbonoFIFO(nil, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)

	_, err = finanzas.AplicarAbonoFIFO(nil, decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de deuda agregada
// ──────────────────────────────────────────────────────────────────────────────

func TestReconciliarDeuda(t *testing.T) {
	saldos := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(30),
		decimal.Zero,
	}
	assert.True(t, finanzas.ReconciliarDeuda(saldos).Equal(decimal.NewFromInt(130)))
	assert.True(t, finanzas.ReconciliarDeuda(nil).IsZero())
}
