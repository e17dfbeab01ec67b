package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, banco_id, tipo, monto, fecha, concepto, referencia,
		cliente_id, distribuidor_id, venta_id, orden_compra_id, created_by, created_at`

// MovimientoRepo implementación del libro de movimientos sobre PostgreSQL.
// Solo inserta y lee; el libro es inmutable.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, banco_id, tipo, monto, fecha, concepto, referencia,
			cliente_id, distribuidor_id, venta_id, orden_compra_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.BancoID, mov.Tipo, mov.Monto, mov.Fecha, mov.Concepto,
		nullable(mov.Referencia), nullable(mov.ClienteID), nullable(mov.DistribuidorID),
		nullable(mov.VentaID), nullable(mov.OrdenCompraID), nullable(mov.CreatedBy),
		mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	if err := scanMovimiento(r.q.QueryRow(context.Background(), query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ListByBanco lista los movimientos de un banco, más recientes primero.
func (r *MovimientoRepo) ListByBanco(bancoID string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + `
		FROM movimientos WHERE banco_id = $1
		ORDER BY fecha DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, "list by banco", bancoID, limit, offset)
}

// ListByReferencia lista los movimientos que comparten una referencia (pares
// de transferencia, correcciones).
func (r *MovimientoRepo) ListByReferencia(referencia string) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + `
		FROM movimientos WHERE referencia = $1 ORDER BY created_at`
	return r.list(query, "list by referencia", referencia)
}

func (r *MovimientoRepo) list(query, op string, args ...any) ([]*entity.Movimiento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := scanMovimiento(rows, &m); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func scanMovimiento(row pgx.Row, m *entity.Movimiento) error {
	var referencia, clienteID, distribuidorID, ventaID, ordenCompraID, createdBy *string
	err := row.Scan(
		&m.ID, &m.BancoID, &m.Tipo, &m.Monto, &m.Fecha, &m.Concepto, &referencia,
		&clienteID, &distribuidorID, &ventaID, &ordenCompraID, &createdBy, &m.CreatedAt,
	)
	if err != nil {
		return err
	}
	m.Referencia = deref(referencia)
	m.ClienteID = deref(clienteID)
	m.DistribuidorID = deref(distribuidorID)
	m.VentaID = deref(ventaID)
	m.OrdenCompraID = deref(ordenCompraID)
	m.CreatedBy = deref(createdBy)
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
