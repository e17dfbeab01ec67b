package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearClienteRequest entrada para crear un cliente.
type CrearClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Telefono string `json:"telefono,omitempty" validate:"max=30"`
}

// ClienteResponse salida de un cliente con su deuda agregada.
type ClienteResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Email      string          `json:"email,omitempty"`
	Telefono   string          `json:"telefono,omitempty"`
	DeudaTotal decimal.Decimal `json:"deuda_total"`
	Estado     string          `json:"estado"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CrearDistribuidorRequest entrada para crear un distribuidor.
type CrearDistribuidorRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Empresa  string `json:"empresa,omitempty" validate:"max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Telefono string `json:"telefono,omitempty" validate:"max=30"`
}

// DistribuidorResponse salida de un distribuidor con su deuda agregada.
type DistribuidorResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Empresa    string          `json:"empresa,omitempty"`
	Email      string          `json:"email,omitempty"`
	Telefono   string          `json:"telefono,omitempty"`
	DeudaTotal decimal.Decimal `json:"deuda_total"`
	Estado     string          `json:"estado"`
	CreatedAt  time.Time       `json:"created_at"`
}
