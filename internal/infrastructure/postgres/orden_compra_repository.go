package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

const ordenColumns = `id, distribuidor_id, fecha, producto, cantidad,
		costo_distribuidor, costo_transporte, costo_unitario, costo_total,
		monto_pagado, deuda, estado_pago, banco_origen_id,
		observaciones, created_by, created_at, updated_at`

// OrdenCompraRepo implementación de OrdenCompraRepository sobre PostgreSQL.
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

// Create persiste una orden de compra.
func (r *OrdenCompraRepo) Create(orden *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (id, distribuidor_id, fecha, producto, cantidad,
			costo_distribuidor, costo_transporte, costo_unitario, costo_total,
			monto_pagado, deuda, estado_pago, banco_origen_id,
			observaciones, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.DistribuidorID, orden.Fecha, orden.Producto, orden.Cantidad,
		orden.CostoDistribuidor, orden.CostoTransporte, orden.CostoUnitario, orden.CostoTotal,
		orden.MontoPagado, orden.Deuda, orden.EstadoPago, nullable(orden.BancoOrigenID),
		orden.Observaciones, nullable(orden.CreatedBy), orden.CreatedAt, orden.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create orden compra: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrdenCompraRepo) GetByID(id string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE id = $1`
	var oc entity.OrdenCompra
	if err := scanOrdenCompra(r.q.QueryRow(context.Background(), query, id), &oc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden compra: %w", err)
	}
	return &oc, nil
}

// ListPendientesByDistribuidor devuelve las órdenes con deuda del distribuidor
// ordenadas por fecha ascendente, con bloqueo de fila.
func (r *OrdenCompraRepo) ListPendientesByDistribuidor(distribuidorID string) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + `
		FROM ordenes_compra
		WHERE distribuidor_id = $1 AND deuda > 0
		ORDER BY fecha ASC, created_at ASC
		FOR UPDATE`
	return r.list(query, "list pendientes", distribuidorID)
}

// ListByDistribuidor lista las órdenes del distribuidor, más recientes primero.
func (r *OrdenCompraRepo) ListByDistribuidor(distribuidorID string, limit, offset int) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + `
		FROM ordenes_compra WHERE distribuidor_id = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	return r.list(query, "list by distribuidor", distribuidorID, limit, offset)
}

// Update persiste el estado de pago mutado de una orden.
func (r *OrdenCompraRepo) Update(orden *entity.OrdenCompra) error {
	query := `
		UPDATE ordenes_compra
		SET monto_pagado = $2, deuda = $3, estado_pago = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.MontoPagado, orden.Deuda, orden.EstadoPago, orden.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orden compra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update orden compra: %s no existe", orden.ID)
	}
	return nil
}

func (r *OrdenCompraRepo) list(query, op string, args ...any) ([]*entity.OrdenCompra, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.OrdenCompra
	for rows.Next() {
		var oc entity.OrdenCompra
		if err := scanOrdenCompra(rows, &oc); err != nil {
			return nil, fmt.Errorf("scan orden compra: %w", err)
		}
		list = append(list, &oc)
	}
	return list, rows.Err()
}

func scanOrdenCompra(row pgx.Row, oc *entity.OrdenCompra) error {
	var bancoOrigen, createdBy *string
	err := row.Scan(
		&oc.ID, &oc.DistribuidorID, &oc.Fecha, &oc.Producto, &oc.Cantidad,
		&oc.CostoDistribuidor, &oc.CostoTransporte, &oc.CostoUnitario, &oc.CostoTotal,
		&oc.MontoPagado, &oc.Deuda, &oc.EstadoPago, &bancoOrigen,
		&oc.Observaciones, &createdBy, &oc.CreatedAt, &oc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	oc.BancoOrigenID = deref(bancoOrigen)
	oc.CreatedBy = deref(createdBy)
	return nil
}
