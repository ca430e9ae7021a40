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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste la cuenta. El índice único parcial de nombre_usuario entre
// cuentas no eliminadas es la autoridad de unicidad.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre_usuario, clave, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		usuario.NombreUsuario, usuario.Clave, usuario.CreatedAt, usuario.UpdatedAt,
	).Scan(&usuario.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el login %s ya existe", domain.ErrDuplicado, usuario.NombreUsuario)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta no eliminada por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre_usuario, clave, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM usuarios WHERE id = $1 AND ` + notDeleted
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// GetByNombreUsuario obtiene una cuenta no eliminada por login.
func (r *UsuarioRepo) GetByNombreUsuario(nombreUsuario string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre_usuario, clave, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM usuarios WHERE nombre_usuario = $1 AND ` + notDeleted
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombreUsuario), "get usuario por login")
}

// List lista las cuentas no eliminadas.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT id, nombre_usuario, clave, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM usuarios WHERE ` + notDeleted + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.NombreUsuario, &u.Clave, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListLogins devuelve los logins para el asignador. Con incluirEliminados los
// tombstones cuentan y sus números no se reciclan.
func (r *UsuarioRepo) ListLogins(incluirEliminados bool) ([]string, error) {
	query := `SELECT nombre_usuario FROM usuarios`
	if !incluirEliminados {
		query += ` WHERE ` + notDeleted
	}
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list logins: %w", err)
	}
	defer rows.Close()
	var logins []string
	for rows.Next() {
		var login string
		if err := rows.Scan(&login); err != nil {
			return nil, fmt.Errorf("scan login: %w", err)
		}
		logins = append(logins, login)
	}
	return logins, rows.Err()
}

// Update actualiza login y clave.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre_usuario = $2, clave = $3, fecha_modificacion = $4
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.NombreUsuario, usuario.Clave, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el login %s ya existe", domain.ErrDuplicado, usuario.NombreUsuario)
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// SoftDelete marca la cuenta como eliminada.
func (r *UsuarioRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	query := `
		UPDATE usuarios SET fecha_eliminacion = $2, fecha_modificacion = $2
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query, id, eliminadoEn)
	if err != nil {
		return fmt.Errorf("soft delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.NombreUsuario, &u.Clave, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
