package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta y sus detalles.
type VentaRepository interface {
	// Create persiste la cabecera y sus detalles; asigna venta.ID y el IDVenta
	// de cada detalle. Debe ejecutarse dentro de una transacción (TxRunner).
	Create(venta *entity.Venta) error
	// GetByID carga la cabecera con sus detalles en orden de inserción.
	GetByID(id int64) (*entity.Venta, error)
	// List devuelve solo cabeceras; los detalles se cargan con GetByID.
	List() ([]*entity.Venta, error)
	SoftDelete(id int64, eliminadoEn time.Time) error
}
