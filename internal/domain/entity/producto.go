package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo con su precio vigente.
// El precio de una venta ya registrada no cambia al actualizar este precio:
// DetalleVenta copia el valor al momento de vender.
type Producto struct {
	ID             int64
	Nombre         string
	Descripcion    *string
	PrecioUnitario decimal.Decimal
	Stock          int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}
