package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTarjeta       = "tarjeta"
	MetodoTransferencia = "transferencia"
)

// Estados de una venta.
const (
	VentaCompletada = "completada"
	VentaAnulada    = "anulada"
)

// Venta es la cabecera de una transacción: referencia un Cliente y un Empleado
// y posee una secuencia ordenada de DetalleVenta.
type Venta struct {
	ID            int64
	IDCliente     int64
	IDEmpleado    int64
	MetodoPago    string
	TipoDocumento string
	Subtotal      decimal.Decimal
	Descuento     decimal.Decimal
	Total         decimal.Decimal
	Estado        string
	Detalles      []DetalleVenta
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// DetalleVenta es una línea de venta. PrecioUnitario se copia del producto al
// momento de la venta para preservar exactitud histórica.
type DetalleVenta struct {
	ID             int64
	IDVenta        int64
	IDProducto     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
