package repository

import "github.com/chronos/tesoreria-api/internal/domain/entity"

// BancoRepository puerto de persistencia para los 7 bancos.
type BancoRepository interface {
	GetByID(id string) (*entity.Banco, error)
	// GetForUpdate obtiene el banco bloqueando la fila (SELECT FOR UPDATE)
	// para serializar escritores concurrentes sobre el mismo banco.
	GetForUpdate(id string) (*entity.Banco, error)
	List() ([]*entity.Banco, error)
	Update(banco *entity.Banco) error
	Upsert(banco *entity.Banco) error
}
