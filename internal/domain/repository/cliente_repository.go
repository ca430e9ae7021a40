package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id int64) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	SoftDelete(id int64, eliminadoEn time.Time) error
}
