package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distribuidor proveedor de órdenes de compra. DeudaTotal se recalcula como
// la suma de Deuda de sus órdenes.
type Distribuidor struct {
	ID         string
	Nombre     string
	Empresa    string
	Telefono   string
	Email      string
	DeudaTotal decimal.Decimal
	Estado     string // activo | inactivo
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
