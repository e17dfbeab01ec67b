package tesoreria

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/finanzas"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// fleteDeVenta resuelve el flete unitario: el del request, o el default del
// sistema; cero cuando aplica_flete es false.
func fleteDeVenta(in dto.CrearVentaRequest) decimal.Decimal {
	if in.AplicaFlete != nil && !*in.AplicaFlete {
		return decimal.Zero
	}
	if in.PrecioFlete != nil {
		return *in.PrecioFlete
	}
	return finanzas.PrecioFleteDefault
}

// CalcularVenta calcula la distribución GYA sin persistir nada (dry run para
// previsualización en formularios).
func (uc *UseCase) CalcularVenta(in dto.CrearVentaRequest) (*dto.CalcularVentaResponse, error) {
	dist, err := finanzas.CalcularDistribucionGYA(in.PrecioVenta, in.PrecioCompra, fleteDeVenta(in), in.Cantidad)
	if err != nil {
		return nil, err
	}
	margen := decimal.Zero
	if dist.PrecioTotal.GreaterThan(decimal.Zero) {
		margen = dist.Utilidades.Div(dist.PrecioTotal).Mul(decimal.NewFromInt(100))
	}
	return &dto.CalcularVentaResponse{
		PrecioTotal: finanzas.RedondearMonto(dist.PrecioTotal),
		Distribucion: dto.DistribucionDTO{
			BovedaMonte: finanzas.RedondearMonto(dist.BovedaMonte),
			Fletes:      finanzas.RedondearMonto(dist.Fletes),
			Utilidades:  finanzas.RedondearMonto(dist.Utilidades),
		},
		MargenPorcentaje: finanzas.RedondearMonto(margen),
	}, nil
}

// CrearVenta registra una venta: calcula la distribución GYA, crea los
// movimientos de ingreso hacia bóveda monte, flete sur y utilidades, y
// reconcilia la deuda del cliente — todo dentro de un commit atómico.
func (uc *UseCase) CrearVenta(ctx context.Context, userID string, in dto.CrearVentaRequest) (*dto.CrearVentaResponse, error) {
	if in.ClienteID == "" || in.Producto == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MontoPagado.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	flete := fleteDeVenta(in)
	dist, err := finanzas.CalcularDistribucionGYA(in.PrecioVenta, in.PrecioCompra, flete, in.Cantidad)
	if err != nil {
		return nil, err
	}

	// Redondeo en el punto de persistencia. Utilidades absorbe el residuo
	// para que monte + fletes + utilidades == total sea exacto.
	total := finanzas.RedondearMonto(dist.PrecioTotal)
	monte := finanzas.RedondearMonto(dist.BovedaMonte)
	fletes := finanzas.RedondearMonto(dist.Fletes)
	utilidades := total.Sub(monte).Sub(fletes)

	pagado := finanzas.RedondearMonto(in.MontoPagado)
	if pagado.GreaterThan(total) {
		return nil, domain.ErrInvalidInput
	}

	var ventaID, estadoPago string
	err = uc.conReintentos(ctx, func(ctx context.Context) error {
		return uc.txRunner.Run(ctx, func(
			bancoRepo repository.BancoRepository,
			movRepo repository.MovimientoRepository,
			ventaRepo repository.VentaRepository,
			_ repository.OrdenCompraRepository,
			clienteRepo repository.ClienteRepository,
			_ repository.DistribuidorRepository,
		) error {
			cliente, err := clienteRepo.GetForUpdate(in.ClienteID)
			if err != nil {
				return err
			}
			if cliente == nil {
				return domain.ErrNotFound
			}

			now := time.Now()
			venta := &entity.Venta{
				ID:                 uuid.New().String(),
				ClienteID:          cliente.ID,
				Fecha:              now,
				Producto:           in.Producto,
				Cantidad:           in.Cantidad,
				PrecioVentaUnidad:  in.PrecioVenta,
				PrecioCompraUnidad: in.PrecioCompra,
				PrecioFleteUnidad:  flete,
				PrecioTotal:        total,
				MontoPagado:        pagado,
				MontoRestante:      total.Sub(pagado),
				Distribucion: entity.DistribucionVenta{
					BovedaMonte: monte,
					Fletes:      fletes,
					Utilidades:  utilidades,
				},
				Observaciones: in.Notas,
				CreatedBy:     userID,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			venta.DerivarEstadoPago()
			if err := ventaRepo.Create(venta); err != nil {
				return err
			}
			ventaID, estadoPago = venta.ID, venta.EstadoPago

			// Distribución a los 3 bancos GYA. Una utilidad negativa (venta a
			// pérdida) sale de utilidades como gasto, validada contra su saldo.
			partes := []struct {
				bancoID string
				monto   decimal.Decimal
			}{
				{entity.BancoBovedaMonte, monte},
				{entity.BancoFleteSur, fletes},
				{entity.BancoUtilidades, utilidades},
			}
			for _, p := range partes {
				if p.monto.IsZero() {
					continue
				}
				tipo := entity.MovimientoIngreso
				monto := p.monto
				concepto := "Venta " + in.Producto
				if monto.IsNegative() {
					tipo = entity.MovimientoGasto
					monto = monto.Neg()
					concepto = "Pérdida en venta " + in.Producto
				}
				if err := uc.registrarEnBanco(bancoRepo, movRepo, p.bancoID, tipo, monto, concepto, func(m *entity.Movimiento) {
					m.ClienteID = cliente.ID
					m.VentaID = venta.ID
					m.CreatedBy = userID
				}); err != nil {
					return err
				}
			}

			return reconciliarCliente(ventaRepo, clienteRepo, cliente)
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CrearVentaResponse{
		VentaID:       ventaID,
		PrecioTotal:   total,
		MontoPagado:   pagado,
		MontoRestante: total.Sub(pagado),
		EstadoPago:    estadoPago,
		Distribucion: dto.DistribucionDTO{
			BovedaMonte: monte,
			Fletes:      fletes,
			Utilidades:  utilidades,
		},
	}, nil
}

// registrarEnBanco construye el movimiento, lo aplica al banco bloqueado y
// persiste ambos. decorar permite añadir referencias antes de guardar.
func (uc *UseCase) registrarEnBanco(
	bancoRepo repository.BancoRepository,
	movRepo repository.MovimientoRepository,
	bancoID, tipo string,
	monto decimal.Decimal,
	concepto string,
	decorar func(*entity.Movimiento),
) error {
	banco, err := bancoRepo.GetForUpdate(bancoID)
	if err != nil {
		return err
	}
	if banco == nil {
		return domain.ErrBancoDesconocido
	}
	mov, err := entity.NuevoMovimiento(bancoID, tipo, monto, time.Now(), concepto)
	if err != nil {
		return err
	}
	mov.ID = uuid.New().String()
	mov.CreatedAt = mov.Fecha
	if decorar != nil {
		decorar(mov)
	}
	if err := banco.Aplicar(mov); err != nil {
		return err
	}
	if err := movRepo.Create(mov); err != nil {
		return err
	}
	return bancoRepo.Update(banco)
}

// reconciliarCliente re-deriva la deuda agregada del cliente desde sus ventas
// pendientes y la persiste.
func reconciliarCliente(ventaRepo repository.VentaRepository, clienteRepo repository.ClienteRepository, cliente *entity.Cliente) error {
	pendientes, err := ventaRepo.ListPendientesByCliente(cliente.ID)
	if err != nil {
		return err
	}
	saldos := make([]decimal.Decimal, 0, len(pendientes))
	for _, v := range pendientes {
		saldos = append(saldos, v.MontoRestante)
	}
	cliente.DeudaTotal = finanzas.ReconciliarDeuda(saldos)
	cliente.UpdatedAt = time.Now()
	return clienteRepo.Update(cliente)
}
