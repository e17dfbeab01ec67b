package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente deudor de ventas. DeudaTotal se recalcula siempre como la suma de
// MontoRestante de sus ventas; nunca se incrementa/decrementa a ciegas.
type Cliente struct {
	ID         string
	Nombre     string
	Email      string
	Telefono   string
	DeudaTotal decimal.Decimal
	Estado     string // activo | inactivo | suspendido
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
