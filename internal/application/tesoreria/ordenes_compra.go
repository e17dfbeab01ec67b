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

// CrearOrdenCompra registra una orden de compra a un distribuidor. El costo
// total entra como deuda hacia el distribuidor; un pago inicial opcional sale
// del banco origen como movimiento de pago, validado contra su saldo.
func (uc *UseCase) CrearOrdenCompra(ctx context.Context, userID string, in dto.CrearOrdenCompraRequest) (*dto.CrearOrdenCompraResponse, error) {
	if in.DistribuidorID == "" || in.Producto == "" {
		return nil, domain.ErrInvalidInput
	}
	costo, err := finanzas.CalcularOrdenCompra(in.CostoDistribuidor, in.CostoTransporte, in.Cantidad)
	if err != nil {
		return nil, err
	}
	total := finanzas.RedondearMonto(costo.CostoTotal)
	pagoInicial := finanzas.RedondearMonto(in.PagoInicial)
	if pagoInicial.IsNegative() || pagoInicial.GreaterThan(total) {
		return nil, domain.ErrInvalidInput
	}
	bancoOrigen := in.BancoOrigen
	if pagoInicial.GreaterThan(decimal.Zero) {
		if bancoOrigen == "" {
			bancoOrigen = entity.BancoBovedaMonte
		}
		if !entity.EsBancoValido(bancoOrigen) {
			return nil, domain.ErrBancoDesconocido
		}
	}

	var resp dto.CrearOrdenCompraResponse
	err = uc.conReintentos(ctx, func(ctx context.Context) error {
		return uc.txRunner.Run(ctx, func(
			bancoRepo repository.BancoRepository,
			movRepo repository.MovimientoRepository,
			_ repository.VentaRepository,
			ordenRepo repository.OrdenCompraRepository,
			_ repository.ClienteRepository,
			distRepo repository.DistribuidorRepository,
		) error {
			dist, err := distRepo.GetForUpdate(in.DistribuidorID)
			if err != nil {
				return err
			}
			if dist == nil {
				return domain.ErrNotFound
			}

			now := time.Now()
			orden := &entity.OrdenCompra{
				ID:                uuid.New().String(),
				DistribuidorID:    dist.ID,
				Fecha:             now,
				Producto:          in.Producto,
				Cantidad:          in.Cantidad,
				CostoDistribuidor: finanzas.RedondearMonto(in.CostoDistribuidor),
				CostoTransporte:   finanzas.RedondearMonto(in.CostoTransporte),
				CostoUnitario:     finanzas.RedondearMonto(costo.CostoUnitario),
				CostoTotal:        total,
				MontoPagado:       pagoInicial,
				Deuda:             total.Sub(pagoInicial),
				BancoOrigenID:     bancoOrigen,
				Observaciones:     in.Notas,
				CreatedBy:         userID,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			orden.DerivarEstadoPago()
			if err := ordenRepo.Create(orden); err != nil {
				return err
			}

			if pagoInicial.GreaterThan(decimal.Zero) {
				if err := uc.registrarEnBanco(bancoRepo, movRepo, bancoOrigen, entity.MovimientoPago, pagoInicial,
					"Pago inicial OC "+in.Producto, func(m *entity.Movimiento) {
						m.DistribuidorID = dist.ID
						m.OrdenCompraID = orden.ID
						m.CreatedBy = userID
					}); err != nil {
					return err
				}
			}

			if err := reconciliarDistribuidor(ordenRepo, distRepo, dist); err != nil {
				return err
			}
			resp = dto.CrearOrdenCompraResponse{
				OrdenID:       orden.ID,
				CostoUnitario: orden.CostoUnitario,
				CostoTotal:    orden.CostoTotal,
				Deuda:         orden.Deuda,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PagarDistribuidor registra un pago a un distribuidor desde un banco. Con
// orden_compra_id el pago va a esa orden; sin él se asigna FIFO sobre las
// órdenes pendientes. El pago nunca puede exceder la deuda que absorbe.
func (uc *UseCase) PagarDistribuidor(ctx context.Context, userID, distribuidorID string, in dto.PagoDistribuidorRequest) (*dto.PagoDistribuidorResponse, error) {
	if distribuidorID == "" {
		return nil, domain.ErrInvalidInput
	}
	monto := finanzas.RedondearMonto(in.Monto)
	if !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	if !entity.EsBancoValido(in.BancoOrigen) {
		return nil, domain.ErrBancoDesconocido
	}

	var resp dto.PagoDistribuidorResponse
	err := uc.conReintentos(ctx, func(ctx context.Context) error {
		return uc.txRunner.Run(ctx, func(
			bancoRepo repository.BancoRepository,
			movRepo repository.MovimientoRepository,
			_ repository.VentaRepository,
			ordenRepo repository.OrdenCompraRepository,
			_ repository.ClienteRepository,
			distRepo repository.DistribuidorRepository,
		) error {
			dist, err := distRepo.GetForUpdate(distribuidorID)
			if err != nil {
				return err
			}
			if dist == nil {
				return domain.ErrNotFound
			}

			var ordenes []*entity.OrdenCompra
			if in.OrdenCompraID != "" {
				orden, err := ordenRepo.GetByID(in.OrdenCompraID)
				if err != nil {
					return err
				}
				if orden == nil || orden.DistribuidorID != dist.ID {
					return domain.ErrNotFound
				}
				if monto.GreaterThan(orden.Deuda) {
					return domain.ErrAbonoExcedente
				}
				ordenes = []*entity.OrdenCompra{orden}
			} else {
				ordenes, err = ordenRepo.ListPendientesByDistribuidor(dist.ID)
				if err != nil {
					return err
				}
			}

			// Misma asignación FIFO que los abonos de cliente: la orden más
			// antigua absorbe primero.
			restante := monto
			for _, oc := range ordenes {
				if !restante.GreaterThan(decimal.Zero) {
					break
				}
				if !oc.Deuda.GreaterThan(decimal.Zero) {
					continue
				}
				aplicado := decimal.Min(restante, oc.Deuda)
				oc.AplicarPago(aplicado)
				oc.UpdatedAt = time.Now()
				if err := ordenRepo.Update(oc); err != nil {
					return err
				}
				restante = restante.Sub(aplicado)
			}
			if restante.GreaterThan(decimal.Zero) {
				return domain.ErrAbonoExcedente
			}

			var movimientoID string
			if err := uc.registrarEnBanco(bancoRepo, movRepo, in.BancoOrigen, entity.MovimientoPago, monto,
				"Pago a "+dist.Nombre, func(m *entity.Movimiento) {
					m.DistribuidorID = dist.ID
					m.OrdenCompraID = in.OrdenCompraID
					m.CreatedBy = userID
					movimientoID = m.ID
				}); err != nil {
				return err
			}

			if err := reconciliarDistribuidor(ordenRepo, distRepo, dist); err != nil {
				return err
			}
			resp = dto.PagoDistribuidorResponse{
				MovimientoID:      movimientoID,
				DeudaDistribuidor: dist.DeudaTotal,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// reconciliarDistribuidor re-deriva la deuda agregada del distribuidor desde
// sus órdenes pendientes y la persiste.
func reconciliarDistribuidor(ordenRepo repository.OrdenCompraRepository, distRepo repository.DistribuidorRepository, dist *entity.Distribuidor) error {
	pendientes, err := ordenRepo.ListPendientesByDistribuidor(dist.ID)
	if err != nil {
		return err
	}
	saldos := make([]decimal.Decimal, 0, len(pendientes))
	for _, oc := range pendientes {
		saldos = append(saldos, oc.Deuda)
	}
	dist.DeudaTotal = finanzas.ReconciliarDeuda(saldos)
	dist.UpdatedAt = time.Now()
	return distRepo.Update(dist)
}
