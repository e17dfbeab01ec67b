package tesoreria

import (
	"context"
	"errors"

	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// maxIntentosCommit reintentos del ciclo completo load-compute-commit cuando
// el commit pierde una carrera de serialización. Como nada se escribió, el
// reintento es seguro.
const maxIntentosCommit = 3

// UseCase es el orquestador de operaciones de tesorería. Única pieza que toca
// persistencia: carga el estado dentro de la transacción, invoca el motor de
// fórmulas y aplica el lote completo de escrituras de forma atómica.
type UseCase struct {
	txRunner    TxRunner
	bancoRepo   repository.BancoRepository
	movRepo     repository.MovimientoRepository
	clienteRepo repository.ClienteRepository
	distRepo    repository.DistribuidorRepository
}

// New construye el orquestador. Los repos sueltos son de solo lectura
// (consultas fuera de transacción); toda mutación pasa por txRunner.
func New(
	txRunner TxRunner,
	bancoRepo repository.BancoRepository,
	movRepo repository.MovimientoRepository,
	clienteRepo repository.ClienteRepository,
	distRepo repository.DistribuidorRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		bancoRepo:   bancoRepo,
		movRepo:     movRepo,
		clienteRepo: clienteRepo,
		distRepo:    distRepo,
	}
}

// conReintentos ejecuta op y reintenta el ciclo completo ante ErrConflicto,
// hasta maxIntentosCommit veces. Cualquier otro error corta de inmediato.
func (uc *UseCase) conReintentos(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for i := 0; i < maxIntentosCommit; i++ {
		err = op(ctx)
		if !errors.Is(err, domain.ErrConflicto) {
			return err
		}
	}
	return err
}
