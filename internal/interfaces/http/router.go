package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC  *usecase.ClienteUseCase
	EmpleadoUC *usecase.EmpleadoUseCase
	ProductoUC *usecase.ProductoUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	VentaUC    *usecase.VentaUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Patch("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Empleados (la ruta /usuario/:usuarioId va antes que /:id)
	empleados := protected.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/usuario/:usuarioId", empleadoHandler.GetByUsuarioID)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Patch("/:id", empleadoHandler.Update)
	empleados.Delete("/:id", empleadoHandler.Delete)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Patch("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Usuarios
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Patch("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Ventas
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Get("/:id/recibo", ventaHandler.Recibo)
	ventas.Delete("/:id", ventaHandler.Delete)
}
