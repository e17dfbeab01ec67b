package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

var _ tesoreria.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un conflicto de serialización o deadlock se traduce a
// ErrConflicto para que el orquestador reintente el ciclo completo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	bancoRepo repository.BancoRepository,
	movRepo repository.MovimientoRepository,
	ventaRepo repository.VentaRepository,
	ordenRepo repository.OrdenCompraRepository,
	clienteRepo repository.ClienteRepository,
	distRepo repository.DistribuidorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewBancoRepository(tx),
		NewMovimientoRepository(tx),
		NewVentaRepository(tx),
		NewOrdenCompraRepository(tx),
		NewClienteRepository(tx),
		NewDistribuidorRepository(tx),
	)
	if err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrConflicto, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrConflicto, err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
