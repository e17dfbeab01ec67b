package tesoreria

import (
	"context"

	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del commit del
// orquestador: todos los movimientos, bancos y entidades se escriben juntos
// o no se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bancoRepo repository.BancoRepository,
		movRepo repository.MovimientoRepository,
		ventaRepo repository.VentaRepository,
		ordenRepo repository.OrdenCompraRepository,
		clienteRepo repository.ClienteRepository,
		distRepo repository.DistribuidorRepository,
	) error) error
}
