package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflicto          = errors.New("conflicto de concurrencia en el commit")
	ErrSaldoInsuficiente  = errors.New("saldo insuficiente en el banco")
	ErrBancoDesconocido   = errors.New("banco desconocido")
	ErrMontoInvalido      = errors.New("el monto debe ser mayor a cero")
	ErrAbonoExcedente     = errors.New("el abono excede la deuda pendiente del cliente")
)
