package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación de EmpleadoRepository (usable con pool o tx).
// El índice único parcial sobre id_usuario (ignorando tombstones) es la
// autoridad del vínculo 1:1 empleado-usuario.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

const empleadoColumns = `
	e.id, e.nombres, e.apellidos, e.cargo, e.fecha_contratacion, e.id_usuario,
	e.fecha_creacion, e.fecha_modificacion, e.fecha_eliminacion,
	u.id, u.nombre_usuario, u.clave, u.fecha_creacion, u.fecha_modificacion, u.fecha_eliminacion`

// Create persiste el empleado vinculado a su cuenta.
func (r *EmpleadoRepo) Create(empleado *entity.Empleado) error {
	query := `
		INSERT INTO empleados (nombres, apellidos, cargo, fecha_contratacion, id_usuario, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		empleado.Nombres, empleado.Apellidos, empleado.Cargo, empleado.FechaContratacion,
		empleado.IDUsuario, empleado.CreatedAt, empleado.UpdatedAt,
	).Scan(&empleado.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflicto("el usuario con id %d ya está asignado a otro empleado", empleado.IDUsuario)
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado no eliminado con su cuenta.
func (r *EmpleadoRepo) GetByID(id int64) (*entity.Empleado, error) {
	query := `
		SELECT ` + empleadoColumns + `
		FROM empleados e
		LEFT JOIN usuarios u ON u.id = e.id_usuario
		WHERE e.id = $1 AND e.` + notDeleted
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get empleado")
}

// GetByUsuarioID obtiene el empleado no eliminado vinculado a la cuenta.
// Es la lectura del guard de vínculo: una relación declarada en el repositorio,
// no una consulta ad hoc del caso de uso.
func (r *EmpleadoRepo) GetByUsuarioID(usuarioID int64) (*entity.Empleado, error) {
	query := `
		SELECT ` + empleadoColumns + `
		FROM empleados e
		LEFT JOIN usuarios u ON u.id = e.id_usuario
		WHERE e.id_usuario = $1 AND e.` + notDeleted
	return r.scanOne(r.q.QueryRow(context.Background(), query, usuarioID), "get empleado por usuario")
}

// List lista los empleados no eliminados con su cuenta.
func (r *EmpleadoRepo) List() ([]*entity.Empleado, error) {
	query := `
		SELECT ` + empleadoColumns + `
		FROM empleados e
		LEFT JOIN usuarios u ON u.id = e.id_usuario
		WHERE e.` + notDeleted + ` ORDER BY e.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza el empleado; revincular id_usuario puede chocar con el
// índice único parcial y devuelve ErrConflicto.
func (r *EmpleadoRepo) Update(empleado *entity.Empleado) error {
	query := `
		UPDATE empleados
		SET nombres = $2, apellidos = $3, cargo = $4, fecha_contratacion = $5,
		    id_usuario = $6, fecha_modificacion = $7
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query,
		empleado.ID, empleado.Nombres, empleado.Apellidos, empleado.Cargo,
		empleado.FechaContratacion, empleado.IDUsuario, empleado.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflicto("el usuario con id %d ya está asignado a otro empleado", empleado.IDUsuario)
		}
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// SoftDelete marca el empleado como eliminado; su cuenta no se toca.
func (r *EmpleadoRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	query := `
		UPDATE empleados SET fecha_eliminacion = $2, fecha_modificacion = $2
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query, id, eliminadoEn)
	if err != nil {
		return fmt.Errorf("soft delete empleado: %w", err)
	}
	return nil
}

func (r *EmpleadoRepo) scanOne(row pgx.Row, op string) (*entity.Empleado, error) {
	e, err := scanEmpleado(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

// scanEmpleado lee una fila del join empleados+usuarios. La cuenta puede venir
// nula si fue eliminada físicamente por fuera; se tolera.
func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	var uID *int64
	var uNombre, uClave *string
	var uCreated, uUpdated, uDeleted *time.Time
	err := row.Scan(
		&e.ID, &e.Nombres, &e.Apellidos, &e.Cargo, &e.FechaContratacion, &e.IDUsuario,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&uID, &uNombre, &uClave, &uCreated, &uUpdated, &uDeleted,
	)
	if err != nil {
		return nil, err
	}
	if uID != nil {
		e.Usuario = &entity.Usuario{
			ID:            *uID,
			NombreUsuario: *uNombre,
			Clave:         *uClave,
			CreatedAt:     *uCreated,
			UpdatedAt:     *uUpdated,
			DeletedAt:     uDeleted,
		}
	}
	return &e, nil
}
