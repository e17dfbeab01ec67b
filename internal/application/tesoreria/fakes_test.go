package tesoreria_test

import (
	"context"
	"sort"

	"github.com/chronos/tesoreria-api/internal/domain"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/domain/repository"
)

// almacen es el estado en memoria compartido por los repos fake. El txRunner
// fake clona el almacén completo antes de ejecutar el callback y solo publica
// el clon si el callback termina sin error, imitando el commit/rollback real.
type almacen struct {
	bancos         map[string]*entity.Banco
	movimientos    []*entity.Movimiento
	ventas         map[string]*entity.Venta
	ordenes        map[string]*entity.OrdenCompra
	clientes       map[string]*entity.Cliente
	distribuidores map[string]*entity.Distribuidor
}

func nuevoAlmacen() *almacen {
	return &almacen{
		bancos:         map[string]*entity.Banco{},
		ventas:         map[string]*entity.Venta{},
		ordenes:        map[string]*entity.OrdenCompra{},
		clientes:       map[string]*entity.Cliente{},
		distribuidores: map[string]*entity.Distribuidor{},
	}
}

func (a *almacen) clone() *almacen {
	c := nuevoAlmacen()
	for id, b := range a.bancos {
		cp := *b
		c.bancos[id] = &cp
	}
	for _, m := range a.movimientos {
		cp := *m
		c.movimientos = append(c.movimientos, &cp)
	}
	for id, v := range a.ventas {
		cp := *v
		c.ventas[id] = &cp
	}
	for id, oc := range a.ordenes {
		cp := *oc
		c.ordenes[id] = &cp
	}
	for id, cl := range a.clientes {
		cp := *cl
		c.clientes[id] = &cp
	}
	for id, d := range a.distribuidores {
		cp := *d
		c.distribuidores[id] = &cp
	}
	return c
}

func (a *almacen) movimientosDeBanco(bancoID string) []*entity.Movimiento {
	var out []*entity.Movimiento
	for _, m := range a.movimientos {
		if m.BancoID == bancoID {
			out = append(out, m)
		}
	}
	return out
}

// ── repos fake ────────────────────────────────────────────────────────────────

type bancoRepoFake struct{ st *almacen }

func (r *bancoRepoFake) GetByID(id string) (*entity.Banco, error)      { return r.st.bancos[id], nil }
func (r *bancoRepoFake) GetForUpdate(id string) (*entity.Banco, error) { return r.st.bancos[id], nil }
func (r *bancoRepoFake) List() ([]*entity.Banco, error) {
	out := make([]*entity.Banco, 0, len(r.st.bancos))
	for _, id := range entity.BancoIDs {
		if b, ok := r.st.bancos[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *bancoRepoFake) Update(b *entity.Banco) error { r.st.bancos[b.ID] = b; return nil }
func (r *bancoRepoFake) Upsert(b *entity.Banco) error { r.st.bancos[b.ID] = b; return nil }

type movRepoFake struct{ st *almacen }

func (r *movRepoFake) Create(m *entity.Movimiento) error {
	r.st.movimientos = append(r.st.movimientos, m)
	return nil
}
func (r *movRepoFake) GetByID(id string) (*entity.Movimiento, error) {
	for _, m := range r.st.movimientos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *movRepoFake) ListByBanco(bancoID string, limit, offset int) ([]*entity.Movimiento, error) {
	return r.st.movimientosDeBanco(bancoID), nil
}
func (r *movRepoFake) ListByReferencia(referencia string) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.st.movimientos {
		if m.Referencia == referencia {
			out = append(out, m)
		}
	}
	return out, nil
}

type ventaRepoFake struct{ st *almacen }

func (r *ventaRepoFake) Create(v *entity.Venta) error { r.st.ventas[v.ID] = v; return nil }
func (r *ventaRepoFake) GetByID(id string) (*entity.Venta, error) {
	return r.st.ventas[id], nil
}
func (r *ventaRepoFake) ListPendientesByCliente(clienteID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.st.ventas {
		if v.ClienteID == clienteID && v.MontoRestante.IsPositive() {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}
func (r *ventaRepoFake) ListByCliente(clienteID string, limit, offset int) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.st.ventas {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}
func (r *ventaRepoFake) Update(v *entity.Venta) error { r.st.ventas[v.ID] = v; return nil }

type ordenRepoFake struct{ st *almacen }

func (r *ordenRepoFake) Create(oc *entity.OrdenCompra) error { r.st.ordenes[oc.ID] = oc; return nil }
func (r *ordenRepoFake) GetByID(id string) (*entity.OrdenCompra, error) {
	return r.st.ordenes[id], nil
}
func (r *ordenRepoFake) ListPendientesByDistribuidor(distribuidorID string) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, oc := range r.st.ordenes {
		if oc.DistribuidorID == distribuidorID && oc.Deuda.IsPositive() {
			out = append(out, oc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}
func (r *ordenRepoFake) ListByDistribuidor(distribuidorID string, limit, offset int) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, oc := range r.st.ordenes {
		if oc.DistribuidorID == distribuidorID {
			out = append(out, oc)
		}
	}
	return out, nil
}
func (r *ordenRepoFake) Update(oc *entity.OrdenCompra) error { r.st.ordenes[oc.ID] = oc; return nil }

type clienteRepoFake struct{ st *almacen }

func (r *clienteRepoFake) Create(c *entity.Cliente) error { r.st.clientes[c.ID] = c; return nil }
func (r *clienteRepoFake) GetByID(id string) (*entity.Cliente, error) {
	return r.st.clientes[id], nil
}
func (r *clienteRepoFake) GetForUpdate(id string) (*entity.Cliente, error) {
	return r.st.clientes[id], nil
}
func (r *clienteRepoFake) List(limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.st.clientes {
		out = append(out, c)
	}
	return out, nil
}
func (r *clienteRepoFake) Update(c *entity.Cliente) error { r.st.clientes[c.ID] = c; return nil }

type distRepoFake struct{ st *almacen }

func (r *distRepoFake) Create(d *entity.Distribuidor) error {
	r.st.distribuidores[d.ID] = d
	return nil
}
func (r *distRepoFake) GetByID(id string) (*entity.Distribuidor, error) {
	return r.st.distribuidores[id], nil
}
func (r *distRepoFake) GetForUpdate(id string) (*entity.Distribuidor, error) {
	return r.st.distribuidores[id], nil
}
func (r *distRepoFake) List(limit, offset int) ([]*entity.Distribuidor, error) {
	var out []*entity.Distribuidor
	for _, d := range r.st.distribuidores {
		out = append(out, d)
	}
	return out, nil
}
func (r *distRepoFake) Update(d *entity.Distribuidor) error {
	r.st.distribuidores[d.ID] = d
	return nil
}

// txRunnerFake ejecuta el callback sobre un clon del almacén y publica el clon
// solo en commit. conflictos simula fallos de serialización antes del primer
// commit exitoso.
type txRunnerFake struct {
	st         *almacen
	conflictos int
	ejecutados int
}

func (t *txRunnerFake) Run(ctx context.Context, fn func(
	bancoRepo repository.BancoRepository,
	movRepo repository.MovimientoRepository,
	ventaRepo repository.VentaRepository,
	ordenRepo repository.OrdenCompraRepository,
	clienteRepo repository.ClienteRepository,
	distRepo repository.DistribuidorRepository,
) error) error {
	t.ejecutados++
	if t.conflictos > 0 {
		t.conflictos--
		return domain.ErrConflicto
	}
	clon := t.st.clone()
	err := fn(
		&bancoRepoFake{st: clon},
		&movRepoFake{st: clon},
		&ventaRepoFake{st: clon},
		&ordenRepoFake{st: clon},
		&clienteRepoFake{st: clon},
		&distRepoFake{st: clon},
	)
	if err != nil {
		return err
	}
	*t.st = *clon
	return nil
}
