package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

var _ repository.BancoRepository = (*BancoRepo)(nil)

const bancoColumns = `id, nombre, tipo, moneda, capital_actual,
		historico_ingresos, historico_gastos, historico_transferencias,
		orden, activo, updated_at`

// BancoRepo implementación de BancoRepository sobre PostgreSQL (usable con
// pool o tx).
type BancoRepo struct {
	q Querier
}

// NewBancoRepository construye el adaptador de bancos. Pasar pool o tx (Querier).
func NewBancoRepository(q Querier) *BancoRepo {
	return &BancoRepo{q: q}
}

// GetByID obtiene un banco por ID.
func (r *BancoRepo) GetByID(id string) (*entity.Banco, error) {
	query := `SELECT ` + bancoColumns + ` FROM bancos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get banco")
}

// GetForUpdate obtiene el banco bloqueando la fila (SELECT FOR UPDATE) para
// serializar escritores concurrentes sobre el mismo banco.
func (r *BancoRepo) GetForUpdate(id string) (*entity.Banco, error) {
	query := `SELECT ` + bancoColumns + ` FROM bancos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get banco for update")
}

// List devuelve los bancos en su orden canónico.
func (r *BancoRepo) List() ([]*entity.Banco, error) {
	query := `SELECT ` + bancoColumns + ` FROM bancos WHERE activo ORDER BY orden`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bancos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banco
	for rows.Next() {
		var b entity.Banco
		if err := scanBanco(rows, &b); err != nil {
			return nil, fmt.Errorf("scan banco: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update persiste el estado mutado de un banco (capital e históricos).
func (r *BancoRepo) Update(banco *entity.Banco) error {
	query := `
		UPDATE bancos
		SET capital_actual = $2, historico_ingresos = $3, historico_gastos = $4,
		    historico_transferencias = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		banco.ID, banco.CapitalActual, banco.HistoricoIngresos,
		banco.HistoricoGastos, banco.HistoricoTransferencias,
	)
	if err != nil {
		return fmt.Errorf("update banco: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update banco: %s no existe", banco.ID)
	}
	return nil
}

// Upsert inserta el banco si no existe; si existe no toca los saldos (la
// siembra es idempotente y nunca pisa capital acumulado).
func (r *BancoRepo) Upsert(banco *entity.Banco) error {
	query := `
		INSERT INTO bancos (id, nombre, tipo, moneda, capital_actual,
			historico_ingresos, historico_gastos, historico_transferencias,
			orden, activo, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (id)
		DO UPDATE SET nombre = EXCLUDED.nombre, tipo = EXCLUDED.tipo,
			orden = EXCLUDED.orden, activo = EXCLUDED.activo`
	_, err := r.q.Exec(context.Background(), query,
		banco.ID, banco.Nombre, banco.Tipo, banco.Moneda, banco.CapitalActual,
		banco.HistoricoIngresos, banco.HistoricoGastos, banco.HistoricoTransferencias,
		banco.Orden, banco.Activo,
	)
	if err != nil {
		return fmt.Errorf("upsert banco: %w", err)
	}
	return nil
}

func (r *BancoRepo) scanOne(row pgx.Row, op string) (*entity.Banco, error) {
	var b entity.Banco
	if err := scanBanco(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

func scanBanco(row pgx.Row, b *entity.Banco) error {
	return row.Scan(
		&b.ID, &b.Nombre, &b.Tipo, &b.Moneda, &b.CapitalActual,
		&b.HistoricoIngresos, &b.HistoricoGastos, &b.HistoricoTransferencias,
		&b.Orden, &b.Activo, &b.UpdatedAt,
	)
}
