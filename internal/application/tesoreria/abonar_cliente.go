package tesoreria

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/finanzas"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// AbonarCliente aplica un abono a la deuda del cliente con asignación FIFO:
// la venta pendiente más antigua se liquida primero. El dinero entra completo
// al banco destino (boveda_monte por defecto) como un movimiento de abono por
// asignación. Un abono que excede la deuda total se rechaza antes del commit.
func (uc *UseCase) AbonarCliente(ctx context.Context, userID, clienteID string, in dto.AbonoClienteRequest) (*dto.AbonoClienteResponse, error) {
	if clienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	monto := finanzas.RedondearMonto(in.Monto)
	if !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	bancoDestino := in.BancoDestino
	if bancoDestino == "" {
		bancoDestino = entity.BancoBovedaMonte
	}
	if !entity.EsBancoValido(bancoDestino) {
		return nil, domain.ErrBancoDesconocido
	}

	var resp dto.AbonoClienteResponse
	err := uc.conReintentos(ctx, func(ctx context.Context) error {
		return uc.txRunner.Run(ctx, func(
			bancoRepo repository.BancoRepository,
			movRepo repository.MovimientoRepository,
			ventaRepo repository.VentaRepository,
			_ repository.OrdenCompraRepository,
			clienteRepo repository.ClienteRepository,
			_ repository.DistribuidorRepository,
		) error {
			cliente, err := clienteRepo.GetForUpdate(clienteID)
			if err != nil {
				return err
			}
			if cliente == nil {
				return domain.ErrNotFound
			}

			pendientes, err := ventaRepo.ListPendientesByCliente(clienteID)
			if err != nil {
				return err
			}
			res, err := finanzas.AplicarAbonoFIFO(pendientes, monto)
			if err != nil {
				return err
			}
			if res.Sobrante.GreaterThan(decimal.Zero) {
				// Sin libro de anticipos: lo que no absorbe ninguna venta
				// se rechaza completo, la deuda nunca baja de cero.
				return domain.ErrAbonoExcedente
			}

			resp.Asignaciones = resp.Asignaciones[:0]
			for _, a := range res.Asignaciones {
				for _, v := range pendientes {
					if v.ID != a.VentaID {
						continue
					}
					v.AplicarAbono(a.Monto)
					v.UpdatedAt = time.Now()
					if err := ventaRepo.Update(v); err != nil {
						return err
					}
				}
				if err := uc.registrarEnBanco(bancoRepo, movRepo, bancoDestino, entity.MovimientoAbono, a.Monto,
					"Abono de "+cliente.Nombre, func(m *entity.Movimiento) {
						m.ClienteID = cliente.ID
						m.VentaID = a.VentaID
						m.CreatedBy = userID
					}); err != nil {
					return err
				}
				resp.Asignaciones = append(resp.Asignaciones, dto.AsignacionDTO{VentaID: a.VentaID, Monto: a.Monto})
			}

			if err := reconciliarCliente(ventaRepo, clienteRepo, cliente); err != nil {
				return err
			}
			resp.DeudaCliente = cliente.DeudaTotal
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
