package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// EmpleadoRepository define el puerto de persistencia para Empleado (DIP).
// Las lecturas cargan la relación Usuario y excluyen registros eliminados.
type EmpleadoRepository interface {
	// Create persiste el empleado. Devuelve domain.ErrConflicto si otro
	// empleado no eliminado ya referencia el mismo usuario (índice único
	// parcial sobre id_usuario).
	Create(empleado *entity.Empleado) error
	GetByID(id int64) (*entity.Empleado, error)
	// GetByUsuarioID busca el empleado no eliminado vinculado a la cuenta.
	GetByUsuarioID(usuarioID int64) (*entity.Empleado, error)
	List() ([]*entity.Empleado, error)
	// Update persiste cambios; la revinculación de id_usuario puede devolver
	// domain.ErrConflicto por la misma restricción que Create.
	Update(empleado *entity.Empleado) error
	SoftDelete(id int64, eliminadoEn time.Time) error
}
