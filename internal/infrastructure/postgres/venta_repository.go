package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, cliente_id, fecha, producto, cantidad,
		precio_venta_unidad, precio_compra_unidad, precio_flete_unidad,
		precio_total, monto_pagado, monto_restante, estado_pago,
		dist_boveda_monte, dist_fletes, dist_utilidades,
		observaciones, created_by, created_at, updated_at`

// VentaRepo implementación de VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste una venta con su distribución.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, cliente_id, fecha, producto, cantidad,
			precio_venta_unidad, precio_compra_unidad, precio_flete_unidad,
			precio_total, monto_pagado, monto_restante, estado_pago,
			dist_boveda_monte, dist_fletes, dist_utilidades,
			observaciones, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ClienteID, venta.Fecha, venta.Producto, venta.Cantidad,
		venta.PrecioVentaUnidad, venta.PrecioCompraUnidad, venta.PrecioFleteUnidad,
		venta.PrecioTotal, venta.MontoPagado, venta.MontoRestante, venta.EstadoPago,
		venta.Distribucion.BovedaMonte, venta.Distribucion.Fletes, venta.Distribucion.Utilidades,
		venta.Observaciones, nullable(venta.CreatedBy), venta.CreatedAt, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1`
	var v entity.Venta
	if err := scanVenta(r.q.QueryRow(context.Background(), query, id), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// ListPendientesByCliente devuelve las ventas con saldo restante del cliente
// ordenadas por fecha ascendente (la más antigua primero, requisito de la
// asignación FIFO), bloqueando las filas para update.
func (r *VentaRepo) ListPendientesByCliente(clienteID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + `
		FROM ventas
		WHERE cliente_id = $1 AND monto_restante > 0
		ORDER BY fecha ASC, created_at ASC
		FOR UPDATE`
	return r.list(query, "list pendientes", clienteID)
}

// ListByCliente lista las ventas del cliente, más recientes primero.
func (r *VentaRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + `
		FROM ventas WHERE cliente_id = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	return r.list(query, "list by cliente", clienteID, limit, offset)
}

// Update persiste el estado de pago mutado de una venta.
func (r *VentaRepo) Update(venta *entity.Venta) error {
	query := `
		UPDATE ventas
		SET monto_pagado = $2, monto_restante = $3, estado_pago = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.MontoPagado, venta.MontoRestante, venta.EstadoPago, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update venta: %s no existe", venta.ID)
	}
	return nil
}

func (r *VentaRepo) list(query, op string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := scanVenta(rows, &v); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func scanVenta(row pgx.Row, v *entity.Venta) error {
	var createdBy *string
	err := row.Scan(
		&v.ID, &v.ClienteID, &v.Fecha, &v.Producto, &v.Cantidad,
		&v.PrecioVentaUnidad, &v.PrecioCompraUnidad, &v.PrecioFleteUnidad,
		&v.PrecioTotal, &v.MontoPagado, &v.MontoRestante, &v.EstadoPago,
		&v.Distribucion.BovedaMonte, &v.Distribucion.Fletes, &v.Distribucion.Utilidades,
		&v.Observaciones, &createdBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	v.CreatedBy = deref(createdBy)
	return nil
}
