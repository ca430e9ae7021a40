package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombres, apellidos, direccion, telefono, email, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		cliente.Nombres, cliente.Apellidos, cliente.Direccion, cliente.Telefono, cliente.Email,
		cliente.CreatedAt, cliente.UpdatedAt,
	).Scan(&cliente.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente no eliminado por ID.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `
		SELECT id, nombres, apellidos, direccion, telefono, email, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM clientes WHERE id = $1 AND ` + notDeleted
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombres, &c.Apellidos, &c.Direccion, &c.Telefono, &c.Email,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista los clientes no eliminados.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombres, apellidos, direccion, telefono, email, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM clientes WHERE ` + notDeleted + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombres, &c.Apellidos, &c.Direccion, &c.Telefono, &c.Email,
			&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombres = $2, apellidos = $3, direccion = $4, telefono = $5, email = $6, fecha_modificacion = $7
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombres, cliente.Apellidos, cliente.Direccion, cliente.Telefono, cliente.Email,
		cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// SoftDelete marca el cliente como eliminado; sus ventas lo siguen
// referenciando para historial.
func (r *ClienteRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	query := `
		UPDATE clientes SET fecha_eliminacion = $2, fecha_modificacion = $2
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query, id, eliminadoEn)
	if err != nil {
		return fmt.Errorf("soft delete cliente: %w", err)
	}
	return nil
}
