package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearVentaRequest entrada para registrar una venta. Los precios son por
// unidad; precio_flete vacío usa el flete por defecto del sistema, salvo que
// aplica_flete sea false.
type CrearVentaRequest struct {
	ClienteID    string           `json:"cliente_id" validate:"required,uuid"`
	Producto     string           `json:"producto" validate:"required,max=200"`
	Cantidad     int64            `json:"cantidad" validate:"required,gt=0"`
	PrecioVenta  decimal.Decimal  `json:"precio_venta" validate:"required"`
	PrecioCompra decimal.Decimal  `json:"precio_compra" validate:"required"`
	PrecioFlete  *decimal.Decimal `json:"precio_flete,omitempty"`
	AplicaFlete  *bool            `json:"aplica_flete,omitempty"`
	MontoPagado  decimal.Decimal  `json:"monto_pagado"`
	Notas        string           `json:"notas,omitempty" validate:"max=500"`
}

// DistribucionDTO reparto GYA de una venta.
type DistribucionDTO struct {
	BovedaMonte decimal.Decimal `json:"boveda_monte"`
	Fletes      decimal.Decimal `json:"fletes"`
	Utilidades  decimal.Decimal `json:"utilidades"`
}

// CrearVentaResponse salida de la venta registrada.
type CrearVentaResponse struct {
	VentaID       string          `json:"venta_id"`
	PrecioTotal   decimal.Decimal `json:"precio_total"`
	MontoPagado   decimal.Decimal `json:"monto_pagado"`
	MontoRestante decimal.Decimal `json:"monto_restante"`
	EstadoPago    string          `json:"estado_pago"`
	Distribucion  DistribucionDTO `json:"distribucion"`
}

// CalcularVentaResponse resultado de una distribución sin persistir (dry run).
type CalcularVentaResponse struct {
	PrecioTotal      decimal.Decimal `json:"precio_total"`
	Distribucion     DistribucionDTO `json:"distribucion"`
	MargenPorcentaje decimal.Decimal `json:"margen_porcentaje"`
}

// AbonoClienteRequest entrada para abonar a la deuda de un cliente.
// banco_destino vacío usa boveda_monte.
type AbonoClienteRequest struct {
	Monto        decimal.Decimal `json:"monto" validate:"required"`
	BancoDestino string          `json:"banco_destino,omitempty"`
	Notas        string          `json:"notas,omitempty" validate:"max=500"`
}

// AsignacionDTO porción de un abono aplicada a una venta.
type AsignacionDTO struct {
	VentaID string          `json:"venta_id"`
	Monto   decimal.Decimal `json:"monto"`
}

// AbonoClienteResponse asignaciones FIFO resultantes del abono.
type AbonoClienteResponse struct {
	Asignaciones []AsignacionDTO `json:"asignaciones"`
	DeudaCliente decimal.Decimal `json:"deuda_cliente"`
}

// CrearOrdenCompraRequest entrada para registrar una orden de compra.
// Costos a nivel de orden; pago_inicial opcional sale de banco_origen.
type CrearOrdenCompraRequest struct {
	DistribuidorID    string          `json:"distribuidor_id" validate:"required,uuid"`
	Producto          string          `json:"producto" validate:"required,max=200"`
	Cantidad          int64           `json:"cantidad" validate:"required,gt=0"`
	CostoDistribuidor decimal.Decimal `json:"costo_distribuidor" validate:"required"`
	CostoTransporte   decimal.Decimal `json:"costo_transporte"`
	PagoInicial       decimal.Decimal `json:"pago_inicial"`
	BancoOrigen       string          `json:"banco_origen,omitempty"`
	Notas             string          `json:"notas,omitempty" validate:"max=500"`
}

// CrearOrdenCompraResponse salida de la orden registrada.
type CrearOrdenCompraResponse struct {
	OrdenID       string          `json:"orden_id"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	Deuda         decimal.Decimal `json:"deuda"`
}

// PagoDistribuidorRequest entrada para pagar a un distribuidor desde un banco.
type PagoDistribuidorRequest struct {
	Monto         decimal.Decimal `json:"monto" validate:"required"`
	BancoOrigen   string          `json:"banco_origen" validate:"required"`
	OrdenCompraID string          `json:"orden_compra_id,omitempty"`
	Notas         string          `json:"notas,omitempty" validate:"max=500"`
}

// PagoDistribuidorResponse salida del pago registrado.
type PagoDistribuidorResponse struct {
	MovimientoID      string          `json:"movimiento_id"`
	DeudaDistribuidor decimal.Decimal `json:"deuda_distribuidor"`
}

// GastoRequest entrada para registrar un gasto manual.
type GastoRequest struct {
	BancoID  string          `json:"banco_id" validate:"required"`
	Monto    decimal.Decimal `json:"monto" validate:"required"`
	Concepto string          `json:"concepto" validate:"required,max=200"`
}

// IngresoRequest entrada para registrar un ingreso manual.
type IngresoRequest struct {
	BancoID   string          `json:"banco_id" validate:"required"`
	Monto     decimal.Decimal `json:"monto" validate:"required"`
	Concepto  string          `json:"concepto" validate:"required,max=200"`
	ClienteID string          `json:"cliente_id,omitempty"`
}

// MovimientoResponse salida de un movimiento suelto (gasto/ingreso).
type MovimientoResponse struct {
	MovimientoID string `json:"movimiento_id"`
}

// TransferenciaRequest entrada para transferir entre dos bancos.
type TransferenciaRequest struct {
	BancoOrigen  string          `json:"banco_origen" validate:"required"`
	BancoDestino string          `json:"banco_destino" validate:"required"`
	Monto        decimal.Decimal `json:"monto" validate:"required"`
	Concepto     string          `json:"concepto" validate:"required,max=200"`
}

// TransferenciaResponse los dos movimientos del par salida/entrada.
type TransferenciaResponse struct {
	Referencia    string   `json:"referencia"`
	MovimientoIDs []string `json:"movimiento_ids"`
}

// BancoResponse estado de un banco.
type BancoResponse struct {
	ID                      string          `json:"id"`
	Nombre                  string          `json:"nombre"`
	Tipo                    string          `json:"tipo"`
	Moneda                  string          `json:"moneda"`
	CapitalActual           decimal.Decimal `json:"capital_actual"`
	HistoricoIngresos       decimal.Decimal `json:"historico_ingresos"`
	HistoricoGastos         decimal.Decimal `json:"historico_gastos"`
	HistoricoTransferencias decimal.Decimal `json:"historico_transferencias"`
}

// ResumenBancosResponse totales agregados de los 7 bancos.
type ResumenBancosResponse struct {
	CapitalTotal  decimal.Decimal `json:"capital_total"`
	IngresosTotal decimal.Decimal `json:"ingresos_total"`
	GastosTotal   decimal.Decimal `json:"gastos_total"`
}

// MovimientoDTO un movimiento del libro para listados.
type MovimientoDTO struct {
	ID         string          `json:"id"`
	BancoID    string          `json:"banco_id"`
	Tipo       string          `json:"tipo"`
	Monto      decimal.Decimal `json:"monto"`
	Fecha      time.Time       `json:"fecha"`
	Concepto   string          `json:"concepto"`
	Referencia string          `json:"referencia,omitempty"`
}
