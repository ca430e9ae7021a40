package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	SoftDelete(id int64, eliminadoEn time.Time) error
}
