package tesoreria_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
)

const testOperador = "11111111-1111-1111-1111-111111111111"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// setup construye el orquestador sobre un almacén en memoria con los 7 bancos
// sembrados en cero.
func setup(t *testing.T) (*almacen, *txRunnerFake, *tesoreria.UseCase) {
	t.Helper()
	st := nuevoAlmacen()
	for _, b := range entity.BancosSeed() {
		st.bancos[b.ID] = b
	}
	tx := &txRunnerFake{st: st}
	uc := tesoreria.New(tx,
		&bancoRepoFake{st: st}, &movRepoFake{st: st},
		&clienteRepoFake{st: st}, &distRepoFake{st: st})
	return st, tx, uc
}

func agregarCliente(st *almacen, nombre string) *entity.Cliente {
	c := &entity.Cliente{ID: uuid.New().String(), Nombre: nombre, Estado: "activo"}
	st.clientes[c.ID] = c
	return c
}

func agregarDistribuidor(st *almacen, nombre string) *entity.Distribuidor {
	dist := &entity.Distribuidor{ID: uuid.New().String(), Nombre: nombre, Estado: "activo"}
	st.distribuidores[dist.ID] = dist
	return dist
}

func agregarVentaPendiente(st *almacen, clienteID string, fecha time.Time, restante string) *entity.Venta {
	total := d(restante)
	v := &entity.Venta{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		Fecha:         fecha,
		Producto:      "lote",
		Cantidad:      1,
		PrecioTotal:   total,
		MontoPagado:   decimal.Zero,
		MontoRestante: total,
	}
	v.DerivarEstadoPago()
	st.ventas[v.ID] = v
	return v
}

func setCapital(st *almacen, bancoID, capital string) {
	st.bancos[bancoID].CapitalActual = d(capital)
}

// ── CrearVenta ────────────────────────────────────────────────────────────────

func TestCrearVenta_DistribuyeATresBancos(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Uno")

	flete := d("50")
	out, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote A",
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("600"),
		PrecioFlete:  &flete,
	})
	require.NoError(t, err)

	assert.True(t, out.PrecioTotal.Equal(d("1000")))
	assert.True(t, out.Distribucion.BovedaMonte.Equal(d("600")))
	assert.True(t, out.Distribucion.Fletes.Equal(d("50")))
	assert.True(t, out.Distribucion.Utilidades.Equal(d("350")))
	assert.Equal(t, entity.PagoPendiente, out.EstadoPago)

	// Cada banco recibió su parte como ingreso
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.Equal(d("600")))
	assert.True(t, st.bancos[entity.BancoFleteSur].CapitalActual.Equal(d("50")))
	assert.True(t, st.bancos[entity.BancoUtilidades].CapitalActual.Equal(d("350")))
	require.Len(t, st.movimientos, 3)
	for _, m := range st.movimientos {
		assert.Equal(t, entity.MovimientoIngreso, m.Tipo)
		assert.Equal(t, out.VentaID, m.VentaID)
		assert.Equal(t, cliente.ID, m.ClienteID)
		assert.Equal(t, testOperador, m.CreatedBy)
	}

	// La deuda del cliente es la suma de sus ventas pendientes
	assert.True(t, st.clientes[cliente.ID].DeudaTotal.Equal(d("1000")))
}

func TestCrearVenta_PagoParcialDerivaEstado(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Dos")

	out, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote B",
		Cantidad:     2,
		PrecioVenta:  d("500"),
		PrecioCompra: d("300"),
		MontoPagado:  d("400"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PagoParcial, out.EstadoPago)
	assert.True(t, out.MontoRestante.Equal(d("600")))
	assert.True(t, st.clientes[cliente.ID].DeudaTotal.Equal(d("600")))
}

func TestCrearVenta_SinFleteOmiteMovimiento(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Tres")

	sinFlete := false
	_, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote C",
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("600"),
		AplicaFlete:  &sinFlete,
	})
	require.NoError(t, err)

	// Sin flete no se genera el movimiento hacia flete_sur
	assert.Len(t, st.movimientos, 2)
	assert.True(t, st.bancos[entity.BancoFleteSur].CapitalActual.IsZero())
	assert.True(t, st.bancos[entity.BancoUtilidades].CapitalActual.Equal(d("400")))
}

func TestCrearVenta_FleteDefaultCuandoNoSeEspecifica(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Flete")

	_, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote F",
		Cantidad:     2,
		PrecioVenta:  d("2000"),
		PrecioCompra: d("1000"),
	})
	require.NoError(t, err)

	// Flete por defecto de 500 por unidad
	assert.True(t, st.bancos[entity.BancoFleteSur].CapitalActual.Equal(d("1000")))
}

func TestCrearVenta_PerdidaSaleDeUtilidadesComoGasto(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Pérdida")
	setCapital(st, entity.BancoUtilidades, "500")

	flete := d("50")
	out, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote D",
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("1100"),
		PrecioFlete:  &flete,
	})
	require.NoError(t, err)

	// La utilidad negativa se reporta, no se recorta
	assert.True(t, out.Distribucion.Utilidades.Equal(d("-150")))
	assert.True(t, st.bancos[entity.BancoUtilidades].CapitalActual.Equal(d("350")))

	var gastos int
	for _, m := range st.movimientos {
		if m.Tipo == entity.MovimientoGasto {
			gastos++
			assert.Equal(t, entity.BancoUtilidades, m.BancoID)
			assert.True(t, m.Monto.Equal(d("150")), "el movimiento siempre lleva monto positivo")
		}
	}
	assert.Equal(t, 1, gastos)
}

func TestCrearVenta_PerdidaSinFondosNoPersisteNada(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Sin Fondos")

	flete := d("50")
	_, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote E",
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("1100"),
		PrecioFlete:  &flete,
	})
	require.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	// Rollback completo: ni ventas, ni movimientos, ni capital movido
	assert.Empty(t, st.movimientos)
	assert.Empty(t, st.ventas)
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.IsZero())
	assert.True(t, st.clientes[cliente.ID].DeudaTotal.IsZero())
}

func TestCrearVenta_PagadoMayorAlTotalRechazado(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Sobrepago")

	_, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote G",
		Cantidad:     1,
		PrecioVenta:  d("100"),
		PrecioCompra: d("50"),
		MontoPagado:  d("5000"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalcularVenta_NoPersiste(t *testing.T) {
	st, _, uc := setup(t)

	flete := d("50")
	out, err := uc.CalcularVenta(dto.CrearVentaRequest{
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("600"),
		PrecioFlete:  &flete,
	})
	require.NoError(t, err)

	assert.True(t, out.Distribucion.Utilidades.Equal(d("350")))
	assert.True(t, out.MargenPorcentaje.Equal(d("35")))
	assert.Empty(t, st.movimientos)
	assert.Empty(t, st.ventas)
}

// ── AbonarCliente ─────────────────────────────────────────────────────────────

func TestAbonarCliente_FIFOLiquidaLaMasAntiguaPrimero(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente FIFO")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v1 := agregarVentaPendiente(st, cliente.ID, base, "100")
	v2 := agregarVentaPendiente(st, cliente.ID, base.AddDate(0, 0, 5), "50")

	out, err := uc.AbonarCliente(context.Background(), testOperador, cliente.ID, dto.AbonoClienteRequest{
		Monto: d("120"),
	})
	require.NoError(t, err)

	require.Len(t, out.Asignaciones, 2)
	assert.Equal(t, v1.ID, out.Asignaciones[0].VentaID)
	assert.True(t, out.Asignaciones[0].Monto.Equal(d("100")))
	assert.Equal(t, v2.ID, out.Asignaciones[1].VentaID)
	assert.True(t, out.Asignaciones[1].Monto.Equal(d("20")))

	assert.Equal(t, entity.PagoCompleto, st.ventas[v1.ID].EstadoPago)
	assert.Equal(t, entity.PagoParcial, st.ventas[v2.ID].EstadoPago)
	assert.True(t, st.ventas[v2.ID].MontoRestante.Equal(d("30")))

	// El dinero entra completo a boveda_monte (destino por defecto)
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.Equal(d("120")))
	require.Len(t, st.movimientos, 2)
	for _, m := range st.movimientos {
		assert.Equal(t, entity.MovimientoAbono, m.Tipo)
		assert.Equal(t, cliente.ID, m.ClienteID)
	}

	assert.True(t, out.DeudaCliente.Equal(d("30")))
	assert.True(t, st.clientes[cliente.ID].DeudaTotal.Equal(d("30")))
}

func TestAbonarCliente_BancoDestinoExplicito(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Azteca")
	agregarVentaPendiente(st, cliente.ID, time.Now(), "200")

	_, err := uc.AbonarCliente(context.Background(), testOperador, cliente.ID, dto.AbonoClienteRequest{
		Monto:        d("200"),
		BancoDestino: entity.BancoAzteca,
	})
	require.NoError(t, err)

	assert.True(t, st.bancos[entity.BancoAzteca].CapitalActual.Equal(d("200")))
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.IsZero())
}

func TestAbonarCliente_ExcedenteRechazadoSinCambios(t *testing.T) {
	st, _, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Excedente")
	cliente.DeudaTotal = d("150")
	v := agregarVentaPendiente(st, cliente.ID, time.Now(), "150")

	_, err := uc.AbonarCliente(context.Background(), testOperador, cliente.ID, dto.AbonoClienteRequest{
		Monto: d("200"),
	})
	require.ErrorIs(t, err, domain.ErrAbonoExcedente)

	// La deuda nunca baja de cero y nada se persiste
	assert.True(t, st.ventas[v.ID].MontoRestante.Equal(d("150")))
	assert.True(t, st.clientes[cliente.ID].DeudaTotal.Equal(d("150")))
	assert.Empty(t, st.movimientos)
}

func TestAbonarCliente_ClienteInexistente(t *testing.T) {
	_, _, uc := setup(t)
	_, err := uc.AbonarCliente(context.Background(), testOperador, uuid.New().String(), dto.AbonoClienteRequest{
		Monto: d("100"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Órdenes de compra y pagos a distribuidor ─────────────────────────────────

func TestCrearOrdenCompra_ConPagoInicial(t *testing.T) {
	st, _, uc := setup(t)
	dist := agregarDistribuidor(st, "Distribuidor Norte")
	setCapital(st, entity.BancoBovedaMonte, "5000")

	out, err := uc.CrearOrdenCompra(context.Background(), testOperador, dto.CrearOrdenCompraRequest{
		DistribuidorID:    dist.ID,
		Producto:          "lote X",
		Cantidad:          4,
		CostoDistribuidor: d("9000"),
		CostoTransporte:   d("1000"),
		PagoInicial:       d("2000"),
		BancoOrigen:       entity.BancoBovedaMonte,
	})
	require.NoError(t, err)

	assert.True(t, out.CostoTotal.Equal(d("10000")))
	assert.True(t, out.CostoUnitario.Equal(d("2500")))
	assert.True(t, out.Deuda.Equal(d("8000")))

	// El pago inicial salió del banco origen como movimiento de pago
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.Equal(d("3000")))
	require.Len(t, st.movimientos, 1)
	assert.Equal(t, entity.MovimientoPago, st.movimientos[0].Tipo)
	assert.Equal(t, dist.ID, st.movimientos[0].DistribuidorID)
	assert.Equal(t, out.OrdenID, st.movimientos[0].OrdenCompraID)

	assert.True(t, st.distribuidores[dist.ID].DeudaTotal.Equal(d("8000")))
	assert.Equal(t, entity.PagoParcial, st.ordenes[out.OrdenID].EstadoPago)
}

func TestCrearOrdenCompra_SinPagoInicialNoMueveCapital(t *testing.T) {
	st, _, uc := setup(t)
	dist := agregarDistribuidor(st, "Distribuidor Sur")

	out, err := uc.CrearOrdenCompra(context.Background(), testOperador, dto.CrearOrdenCompraRequest{
		DistribuidorID:    dist.ID,
		Producto:          "lote Y",
		Cantidad:          2,
		CostoDistribuidor: d("4000"),
	})
	require.NoError(t, err)

	assert.True(t, out.Deuda.Equal(d("4000")))
	assert.Empty(t, st.movimientos)
	assert.Equal(t, entity.PagoPendiente, st.ordenes[out.OrdenID].EstadoPago)
	assert.True(t, st.distribuidores[dist.ID].DeudaTotal.Equal(d("4000")))
}

func TestCrearOrdenCompra_PagoInicialSinFondos(t *testing.T) {
	st, _, uc := setup(t)
	dist := agregarDistribuidor(st, "Distribuidor Pobre")

	_, err := uc.CrearOrdenCompra(context.Background(), testOperador, dto.CrearOrdenCompraRequest{
		DistribuidorID:    dist.ID,
		Producto:          "lote Z",
		Cantidad:          1,
		CostoDistribuidor: d("1000"),
		PagoInicial:       d("500"),
		BancoOrigen:       entity.BancoBovedaMonte,
	})
	require.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	assert.Empty(t, st.ordenes, "rollback: la orden tampoco se persiste")
	assert.True(t, st.distribuidores[dist.ID].DeudaTotal.IsZero())
}

func TestPagarDistribuidor_FIFOSobrePendientes(t *testing.T) {
	st, _, uc := setup(t)
	dist := agregarDistribuidor(st, "Distribuidor FIFO")
	setCapital(st, entity.BancoAzteca, "1000")
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	oc1 := &entity.OrdenCompra{
		ID: uuid.New().String(), DistribuidorID: dist.ID, Fecha: base,
		CostoTotal: d("100"), Deuda: d("100"),
	}
	oc1.DerivarEstadoPago()
	oc2 := &entity.OrdenCompra{
		ID: uuid.New().String(), DistribuidorID: dist.ID, Fecha: base.AddDate(0, 0, 3),
		CostoTotal: d("50"), Deuda: d("50"),
	}
	oc2.DerivarEstadoPago()
	st.ordenes[oc1.ID] = oc1
	st.ordenes[oc2.ID] = oc2

	out, err := uc.PagarDistribuidor(context.Background(), testOperador, dist.ID, dto.PagoDistribuidorRequest{
		Monto:       d("120"),
		BancoOrigen: entity.BancoAzteca,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PagoCompleto, st.ordenes[oc1.ID].EstadoPago)
	assert.True(t, st.ordenes[oc2.ID].Deuda.Equal(d("30")))
	assert.True(t, st.bancos[entity.BancoAzteca].CapitalActual.Equal(d("880")))
	assert.True(t, out.DeudaDistribuidor.Equal(d("30")))
	require.Len(t, st.movimientos, 1)
	assert.Equal(t, entity.MovimientoPago, st.movimientos[0].Tipo)
	assert.NotEmpty(t, out.MovimientoID)
}

func TestPagarDistribuidor_OrdenEspecifica(t *testing.T) {
	st, _, uc := setup(t)
	dist := agregarDistribuidor(st, "Distribuidor Directo")
	setCapital(st, entity.BancoBovedaMonte, "500")

	oc := &entity.OrdenCompra{
		ID: uuid.New().String(), DistribuidorID: dist.ID, Fecha: time.Now(),
		CostoTotal: d("300"), Deuda: d("300"),
	}
	oc.DerivarEstadoPago()
	st.ordenes[oc.ID] = oc

	out, err := uc.PagarDistribuidor(context.Background(), testOperador, dist.ID, dto.PagoDistribuidorRequest{
		Monto:         d("300"),
		BancoOrigen:   entity.BancoBovedaMonte,
		OrdenCompraID: oc.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PagoCompleto, st.ordenes[oc.ID].EstadoPago)
	assert.True(t, out.DeudaDistribuidor.IsZero())
}

func TestPagarDistribuidor_ExcedenteRechazado(t *testing.T) {
	st, _, uc := setup(t)
	dist := agregarDistribuidor(st, "Distribuidor Excedente")
	setCapital(st, entity.BancoBovedaMonte, "1000")

	oc := &entity.OrdenCompra{
		ID: uuid.New().String(), DistribuidorID: dist.ID, Fecha: time.Now(),
		CostoTotal: d("100"), Deuda: d("100"),
	}
	oc.DerivarEstadoPago()
	st.ordenes[oc.ID] = oc

	_, err := uc.PagarDistribuidor(context.Background(), testOperador, dist.ID, dto.PagoDistribuidorRequest{
		Monto:       d("150"),
		BancoOrigen: entity.BancoBovedaMonte,
	})
	require.ErrorIs(t, err, domain.ErrAbonoExcedente)

	assert.True(t, st.ordenes[oc.ID].Deuda.Equal(d("100")))
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.Equal(d("1000")))
	assert.Empty(t, st.movimientos)
}

// ── Gastos, ingresos y transferencias ────────────────────────────────────────

func TestRegistrarGasto_DescuentaDelBanco(t *testing.T) {
	st, _, uc := setup(t)
	setCapital(st, entity.BancoProfit, "800")

	out, err := uc.RegistrarGasto(context.Background(), testOperador, dto.GastoRequest{
		BancoID:  entity.BancoProfit,
		Monto:    d("300"),
		Concepto: "renta de bodega",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.MovimientoID)
	assert.True(t, st.bancos[entity.BancoProfit].CapitalActual.Equal(d("500")))
	assert.True(t, st.bancos[entity.BancoProfit].HistoricoGastos.Equal(d("300")))
}

func TestRegistrarGasto_SaldoInsuficienteDejaElBancoIntacto(t *testing.T) {
	st, _, uc := setup(t)
	setCapital(st, entity.BancoProfit, "500")

	_, err := uc.RegistrarGasto(context.Background(), testOperador, dto.GastoRequest{
		BancoID:  entity.BancoProfit,
		Monto:    d("600"),
		Concepto: "gasto imposible",
	})
	require.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	// El saldo queda exactamente como estaba, nunca negativo
	assert.True(t, st.bancos[entity.BancoProfit].CapitalActual.Equal(d("500")))
	assert.Empty(t, st.movimientos)
}

func TestRegistrarIngreso_SumaAlBanco(t *testing.T) {
	st, _, uc := setup(t)

	_, err := uc.RegistrarIngreso(context.Background(), testOperador, dto.IngresoRequest{
		BancoID:  entity.BancoBovedaUSA,
		Monto:    d("250.50"),
		Concepto: "depósito externo",
	})
	require.NoError(t, err)
	assert.True(t, st.bancos[entity.BancoBovedaUSA].CapitalActual.Equal(d("250.50")))
	assert.True(t, st.bancos[entity.BancoBovedaUSA].HistoricoIngresos.Equal(d("250.50")))
}

func TestRegistrarGasto_BancoDesconocido(t *testing.T) {
	_, _, uc := setup(t)
	_, err := uc.RegistrarGasto(context.Background(), testOperador, dto.GastoRequest{
		BancoID:  "banco_fantasma",
		Monto:    d("10"),
		Concepto: "x",
	})
	require.ErrorIs(t, err, domain.ErrBancoDesconocido)
}

func TestTransferir_ParAtomicoConReferenciaCompartida(t *testing.T) {
	st, _, uc := setup(t)
	setCapital(st, entity.BancoBovedaMonte, "800")
	setCapital(st, entity.BancoLeftie, "500")

	out, err := uc.Transferir(context.Background(), testOperador, dto.TransferenciaRequest{
		BancoOrigen:  entity.BancoBovedaMonte,
		BancoDestino: entity.BancoLeftie,
		Monto:        d("200"),
		Concepto:     "fondeo leftie",
	})
	require.NoError(t, err)

	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.Equal(d("600")))
	assert.True(t, st.bancos[entity.BancoLeftie].CapitalActual.Equal(d("700")))
	assert.True(t, st.bancos[entity.BancoBovedaMonte].HistoricoTransferencias.Equal(d("-200")))
	assert.True(t, st.bancos[entity.BancoLeftie].HistoricoTransferencias.Equal(d("200")))

	// Par salida/entrada con la misma referencia
	require.Len(t, st.movimientos, 2)
	require.Len(t, out.MovimientoIDs, 2)
	assert.Equal(t, entity.MovimientoTransferenciaSalida, st.movimientos[0].Tipo)
	assert.Equal(t, entity.MovimientoTransferenciaEntrada, st.movimientos[1].Tipo)
	assert.Equal(t, out.Referencia, st.movimientos[0].Referencia)
	assert.Equal(t, out.Referencia, st.movimientos[1].Referencia)
}

func TestTransferir_SaldoInsuficienteNoMueveNada(t *testing.T) {
	st, _, uc := setup(t)
	setCapital(st, entity.BancoBovedaMonte, "800")
	setCapital(st, entity.BancoLeftie, "500")

	_, err := uc.Transferir(context.Background(), testOperador, dto.TransferenciaRequest{
		BancoOrigen:  entity.BancoBovedaMonte,
		BancoDestino: entity.BancoLeftie,
		Monto:        d("900"),
		Concepto:     "imposible",
	})
	require.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	// Nunca existe un estado con el dinero a medio camino
	assert.True(t, st.bancos[entity.BancoBovedaMonte].CapitalActual.Equal(d("800")))
	assert.True(t, st.bancos[entity.BancoLeftie].CapitalActual.Equal(d("500")))
	assert.Empty(t, st.movimientos)
}

func TestTransferir_MismoBancoRechazado(t *testing.T) {
	_, _, uc := setup(t)
	_, err := uc.Transferir(context.Background(), testOperador, dto.TransferenciaRequest{
		BancoOrigen:  entity.BancoAzteca,
		BancoDestino: entity.BancoAzteca,
		Monto:        d("10"),
		Concepto:     "loop",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Reintentos ante conflictos de serialización ──────────────────────────────

func TestConflictoDeSerializacion_ReintentaYCompleta(t *testing.T) {
	st, tx, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Reintento")
	tx.conflictos = 2

	_, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote R",
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("600"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tx.ejecutados, "dos conflictos más el commit exitoso")
	assert.Len(t, st.movimientos, 3)
}

func TestConflictoDeSerializacion_AgotaReintentos(t *testing.T) {
	st, tx, uc := setup(t)
	cliente := agregarCliente(st, "Cliente Agotado")
	tx.conflictos = 5

	_, err := uc.CrearVenta(context.Background(), testOperador, dto.CrearVentaRequest{
		ClienteID:    cliente.ID,
		Producto:     "lote S",
		Cantidad:     1,
		PrecioVenta:  d("1000"),
		PrecioCompra: d("600"),
	})
	require.ErrorIs(t, err, domain.ErrConflicto)
	assert.Equal(t, 3, tx.ejecutados, "el ciclo completo se reintenta a lo sumo 3 veces")
	assert.Empty(t, st.movimientos)
}

// ── Consultas ────────────────────────────────────────────────────────────────

func TestResumenBancos_AgregaTotales(t *testing.T) {
	st, _, uc := setup(t)
	setCapital(st, entity.BancoBovedaMonte, "1000")
	setCapital(st, entity.BancoAzteca, "500")
	st.bancos[entity.BancoBovedaMonte].HistoricoIngresos = d("1500")
	st.bancos[entity.BancoAzteca].HistoricoGastos = d("200")

	out, err := uc.ResumenBancos(context.Background())
	require.NoError(t, err)
	assert.True(t, out.CapitalTotal.Equal(d("1500")))
	assert.True(t, out.IngresosTotal.Equal(d("1500")))
	assert.True(t, out.GastosTotal.Equal(d("200")))
}

func TestListarBancos_OrdenCanonico(t *testing.T) {
	_, _, uc := setup(t)
	out, err := uc.ListarBancos(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 7)
	assert.Equal(t, entity.BancoBovedaMonte, out[0].ID)
	assert.Equal(t, entity.MonedaUSD, out[1].Moneda)
}
