package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

var _ repository.DistribuidorRepository = (*DistribuidorRepo)(nil)

const distribuidorColumns = `id, nombre, empresa, telefono, email, deuda_total, estado, created_at, updated_at`

// DistribuidorRepo implementación de DistribuidorRepository sobre PostgreSQL.
type DistribuidorRepo struct {
	q Querier
}

// NewDistribuidorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistribuidorRepository(q Querier) *DistribuidorRepo {
	return &DistribuidorRepo{q: q}
}

// Create persiste un distribuidor nuevo.
func (r *DistribuidorRepo) Create(dist *entity.Distribuidor) error {
	query := `
		INSERT INTO distribuidores (id, nombre, empresa, telefono, email, deuda_total, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		dist.ID, dist.Nombre, dist.Empresa, dist.Telefono, dist.Email,
		dist.DeudaTotal, dist.Estado, dist.CreatedAt, dist.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create distribuidor: %w", err)
	}
	return nil
}

// GetByID obtiene un distribuidor por ID.
func (r *DistribuidorRepo) GetByID(id string) (*entity.Distribuidor, error) {
	query := `SELECT ` + distribuidorColumns + ` FROM distribuidores WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get distribuidor")
}

// GetForUpdate obtiene el distribuidor bloqueando la fila.
func (r *DistribuidorRepo) GetForUpdate(id string) (*entity.Distribuidor, error) {
	query := `SELECT ` + distribuidorColumns + ` FROM distribuidores WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get distribuidor for update")
}

// List lista distribuidores paginados.
func (r *DistribuidorRepo) List(limit, offset int) ([]*entity.Distribuidor, error) {
	query := `SELECT ` + distribuidorColumns + `
		FROM distribuidores ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distribuidores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distribuidor
	for rows.Next() {
		var d entity.Distribuidor
		if err := scanDistribuidor(rows, &d); err != nil {
			return nil, fmt.Errorf("scan distribuidor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update persiste los datos mutados del distribuidor (incluida la deuda).
func (r *DistribuidorRepo) Update(dist *entity.Distribuidor) error {
	query := `
		UPDATE distribuidores
		SET nombre = $2, empresa = $3, telefono = $4, email = $5, deuda_total = $6, estado = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		dist.ID, dist.Nombre, dist.Empresa, dist.Telefono, dist.Email,
		dist.DeudaTotal, dist.Estado, dist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update distribuidor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update distribuidor: %s no existe", dist.ID)
	}
	return nil
}

func (r *DistribuidorRepo) scanOne(row pgx.Row, op string) (*entity.Distribuidor, error) {
	var d entity.Distribuidor
	if err := scanDistribuidor(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}

func scanDistribuidor(row pgx.Row, d *entity.Distribuidor) error {
	return row.Scan(
		&d.ID, &d.Nombre, &d.Empresa, &d.Telefono, &d.Email,
		&d.DeudaTotal, &d.Estado, &d.CreatedAt, &d.UpdatedAt,
	)
}
