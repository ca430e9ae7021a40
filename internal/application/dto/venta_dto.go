package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDetalleVentaRequest una línea de venta; el precio se toma del producto
// al momento de registrar, nunca del cliente HTTP.
type CreateDetalleVentaRequest struct {
	IDProducto int64 `json:"idProducto" validate:"required"`
	Cantidad   int   `json:"cantidad" validate:"required,min=1"`
}

// CreateVentaRequest entrada para registrar una venta.
type CreateVentaRequest struct {
	IDCliente     int64                       `json:"idCliente" validate:"required"`
	IDEmpleado    int64                       `json:"idEmpleado" validate:"required"`
	MetodoPago    string                      `json:"metodoPago" validate:"required"`
	TipoDocumento string                      `json:"tipoDocumento"`
	Descuento     decimal.Decimal             `json:"descuento"`
	Detalles      []CreateDetalleVentaRequest `json:"detalles" validate:"required,min=1"`
}

// DetalleVentaResponse una línea de venta con el precio histórico copiado.
type DetalleVentaResponse struct {
	ID             int64           `json:"id"`
	IDProducto     int64           `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID                int64                  `json:"id"`
	IDCliente         int64                  `json:"idCliente"`
	IDEmpleado        int64                  `json:"idEmpleado"`
	MetodoPago        string                 `json:"metodoPago"`
	TipoDocumento     string                 `json:"tipoDocumento"`
	Subtotal          decimal.Decimal        `json:"subtotal"`
	Descuento         decimal.Decimal        `json:"descuento"`
	Total             decimal.Decimal        `json:"total"`
	Estado            string                 `json:"estado"`
	Detalles          []DetalleVentaResponse `json:"detalles,omitempty"`
	FechaCreacion     time.Time              `json:"fechaCreacion"`
	FechaModificacion time.Time              `json:"fechaModificacion"`
	FechaEliminacion  *time.Time             `json:"fechaEliminacion,omitempty"`
}

// VentaDeleteResponse confirmación de borrado lógico con el snapshot.
type VentaDeleteResponse struct {
	Message string        `json:"message"`
	Venta   VentaResponse `json:"venta"`
}
