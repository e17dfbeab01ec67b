package tesoreria

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/finanzas"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// RegistrarGasto descuenta un gasto manual del banco indicado. Falla con
// ErrSaldoInsuficiente si el banco no cubre el monto; el saldo nunca queda
// negativo.
func (uc *UseCase) RegistrarGasto(ctx context.Context, userID string, in dto.GastoRequest) (*dto.MovimientoResponse, error) {
	monto := finanzas.RedondearMonto(in.Monto)
	if !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	if !entity.EsBancoValido(in.BancoID) {
		return nil, domain.ErrBancoDesconocido
	}
	if in.Concepto == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.registrarSuelto(ctx, userID, in.BancoID, entity.MovimientoGasto, monto, in.Concepto, "")
}

// RegistrarIngreso suma un ingreso manual al banco indicado, opcionalmente
// ligado a un cliente (p.ej. cobros fuera del flujo de ventas).
func (uc *UseCase) RegistrarIngreso(ctx context.Context, userID string, in dto.IngresoRequest) (*dto.MovimientoResponse, error) {
	monto := finanzas.RedondearMonto(in.Monto)
	if !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	if !entity.EsBancoValido(in.BancoID) {
		return nil, domain.ErrBancoDesconocido
	}
	if in.Concepto == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.registrarSuelto(ctx, userID, in.BancoID, entity.MovimientoIngreso, monto, in.Concepto, in.ClienteID)
}

func (uc *UseCase) registrarSuelto(ctx context.Context, userID, bancoID, tipo string, monto decimal.Decimal, concepto, clienteID string) (*dto.MovimientoResponse, error) {
	var movimientoID string
	err := uc.conReintentos(ctx, func(ctx context.Context) error {
		return uc.txRunner.Run(ctx, func(
			bancoRepo repository.BancoRepository,
			movRepo repository.MovimientoRepository,
			_ repository.VentaRepository,
			_ repository.OrdenCompraRepository,
			_ repository.ClienteRepository,
			_ repository.DistribuidorRepository,
		) error {
			return uc.registrarEnBanco(bancoRepo, movRepo, bancoID, tipo, monto, concepto, func(m *entity.Movimiento) {
				m.ClienteID = clienteID
				m.CreatedBy = userID
				movimientoID = m.ID
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoResponse{MovimientoID: movimientoID}, nil
}

// Transferir mueve capital entre dos bancos como un par atómico de movimientos
// (salida + entrada) que comparten una referencia. O se registran ambos o
// ninguno; nunca existe un estado con el dinero "en tránsito".
func (uc *UseCase) Transferir(ctx context.Context, userID string, in dto.TransferenciaRequest) (*dto.TransferenciaResponse, error) {
	monto := finanzas.RedondearMonto(in.Monto)
	if !entity.EsBancoValido(in.BancoOrigen) || !entity.EsBancoValido(in.BancoDestino) {
		return nil, domain.ErrBancoDesconocido
	}
	if in.BancoOrigen == in.BancoDestino {
		return nil, domain.ErrInvalidInput
	}

	referencia := uuid.New().String()
	var movimientoIDs []string
	err := uc.conReintentos(ctx, func(ctx context.Context) error {
		return uc.txRunner.Run(ctx, func(
			bancoRepo repository.BancoRepository,
			movRepo repository.MovimientoRepository,
			_ repository.VentaRepository,
			_ repository.OrdenCompraRepository,
			_ repository.ClienteRepository,
			_ repository.DistribuidorRepository,
		) error {
			origen, err := bancoRepo.GetForUpdate(in.BancoOrigen)
			if err != nil {
				return err
			}
			if origen == nil {
				return domain.ErrBancoDesconocido
			}
			if err := finanzas.ValidarTransferencia(origen.CapitalActual, monto); err != nil {
				return err
			}

			movimientoIDs = movimientoIDs[:0]
			decorar := func(m *entity.Movimiento) {
				m.Referencia = referencia
				m.CreatedBy = userID
				movimientoIDs = append(movimientoIDs, m.ID)
			}
			if err := uc.registrarEnBanco(bancoRepo, movRepo, in.BancoOrigen,
				entity.MovimientoTransferenciaSalida, monto, in.Concepto, decorar); err != nil {
				return err
			}
			return uc.registrarEnBanco(bancoRepo, movRepo, in.BancoDestino,
				entity.MovimientoTransferenciaEntrada, monto, in.Concepto, decorar)
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.TransferenciaResponse{Referencia: referencia, MovimientoIDs: movimientoIDs}, nil
}

// ListarBancos devuelve el estado de los 7 bancos.
func (uc *UseCase) ListarBancos(ctx context.Context) ([]dto.BancoResponse, error) {
	bancos, err := uc.bancoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BancoResponse, 0, len(bancos))
	for _, b := range bancos {
		out = append(out, dto.BancoResponse{
			ID:                      b.ID,
			Nombre:                  b.Nombre,
			Tipo:                    b.Tipo,
			Moneda:                  b.Moneda,
			CapitalActual:           b.CapitalActual,
			HistoricoIngresos:       b.HistoricoIngresos,
			HistoricoGastos:         b.HistoricoGastos,
			HistoricoTransferencias: b.HistoricoTransferencias,
		})
	}
	return out, nil
}

// ResumenBancos reduce los bancos a sus totales agregados.
func (uc *UseCase) ResumenBancos(ctx context.Context) (*dto.ResumenBancosResponse, error) {
	bancos, err := uc.bancoRepo.List()
	if err != nil {
		return nil, err
	}
	t := finanzas.CalcularTotalesBancos(bancos)
	return &dto.ResumenBancosResponse{
		CapitalTotal:  t.CapitalTotal,
		IngresosTotal: t.IngresosTotal,
		GastosTotal:   t.GastosTotal,
	}, nil
}

// ListarMovimientos devuelve los movimientos de un banco, más recientes
// primero.
func (uc *UseCase) ListarMovimientos(ctx context.Context, bancoID string, page dto.PageRequest) ([]dto.MovimientoDTO, error) {
	if !entity.EsBancoValido(bancoID) {
		return nil, domain.ErrBancoDesconocido
	}
	movs, err := uc.movRepo.ListByBanco(bancoID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoDTO{
			ID:         m.ID,
			BancoID:    m.BancoID,
			Tipo:       m.Tipo,
			Monto:      m.Monto,
			Fecha:      m.Fecha,
			Concepto:   m.Concepto,
			Referencia: m.Referencia,
		})
	}
	return out, nil
}
