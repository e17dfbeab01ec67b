package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos/tesoreria-api/internal/application/auth"
	"github.com/chronos/tesoreria-api/internal/application/directorio"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
	"github.com/chronos/tesoreria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TesoreriaUC    *tesoreria.UseCase
	ClienteUC      *directorio.ClienteUseCase
	DistribuidorUC *directorio.DistribuidorUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Todas las rutas de tesorería requieren
// Bearer Token; las mutaciones además requieren rol admin u operator (viewer
// es solo lectura).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	escritura := RequireRole(entity.RoleAdmin, entity.RoleOperator)

	// Bancos (protegido, solo lectura)
	bancos := protected.Group("/bancos")
	bancoHandler := NewBancoHandler(deps.TesoreriaUC)
	bancos.Get("/", bancoHandler.List)
	bancos.Get("/resumen", bancoHandler.Resumen)
	bancos.Get("/:id/movimientos", bancoHandler.Movimientos)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.TesoreriaUC)
	clientes.Post("/", escritura, clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/:id/abonos", escritura, clienteHandler.Abonar)

	// Distribuidores (protegido)
	distribuidores := protected.Group("/distribuidores")
	distHandler := NewDistribuidorHandler(deps.DistribuidorUC, deps.TesoreriaUC)
	distribuidores.Post("/", escritura, distHandler.Create)
	distribuidores.Get("/", distHandler.List)
	distribuidores.Get("/:id", distHandler.GetByID)
	distribuidores.Post("/:id/pagos", escritura, distHandler.Pagar)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.TesoreriaUC)
	ventas.Post("/", escritura, ventaHandler.Crear)
	ventas.Post("/calcular", ventaHandler.Calcular)

	// Órdenes de compra (protegido)
	ordenes := protected.Group("/ordenes-compra")
	ordenHandler := NewOrdenCompraHandler(deps.TesoreriaUC)
	ordenes.Post("/", escritura, ordenHandler.Crear)

	// Movimientos manuales y transferencias (protegido)
	movimientos := protected.Group("/movimientos")
	movHandler := NewMovimientoHandler(deps.TesoreriaUC)
	movimientos.Post("/gastos", escritura, movHandler.Gasto)
	movimientos.Post("/ingresos", escritura, movHandler.Ingreso)
	movimientos.Post("/transferencias", escritura, movHandler.Transferir)
}
