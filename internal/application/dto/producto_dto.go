package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion    *string         `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Stock          int             `json:"stock" validate:"min=0"`
}

// UpdateProductoRequest entrada parcial.
type UpdateProductoRequest struct {
	Nombre         *string          `json:"nombre" validate:"omitempty,min=1,max=100"`
	Descripcion    *string          `json:"descripcion"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
	Stock          *int             `json:"stock" validate:"omitempty,min=0"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID                int64           `json:"id"`
	Nombre            string          `json:"nombre"`
	Descripcion       *string         `json:"descripcion"`
	PrecioUnitario    decimal.Decimal `json:"precioUnitario"`
	Stock             int             `json:"stock"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
	FechaModificacion time.Time       `json:"fechaModificacion"`
	FechaEliminacion  *time.Time      `json:"fechaEliminacion,omitempty"`
}

// ProductoDeleteResponse confirmación de borrado lógico con el snapshot.
type ProductoDeleteResponse struct {
	Message  string           `json:"message"`
	Producto ProductoResponse `json:"producto"`
}
