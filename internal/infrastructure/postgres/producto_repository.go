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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, precio_unitario, stock, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		producto.Nombre, producto.Descripcion, producto.PrecioUnitario, producto.Stock,
		producto.CreatedAt, producto.UpdatedAt,
	).Scan(&producto.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto no eliminado por ID.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, descripcion, precio_unitario, stock, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM productos WHERE id = $1 AND ` + notDeleted
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.PrecioUnitario, &p.Stock,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista los productos no eliminados.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `
		SELECT id, nombre, descripcion, precio_unitario, stock, fecha_creacion, fecha_modificacion, fecha_eliminacion
		FROM productos WHERE ` + notDeleted + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.PrecioUnitario, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto. Los precios copiados en detalles de venta no
// cambian con esta operación.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio_unitario = $4, stock = $5, fecha_modificacion = $6
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.PrecioUnitario, producto.Stock,
		producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como eliminado.
func (r *ProductoRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	query := `
		UPDATE productos SET fecha_eliminacion = $2, fecha_modificacion = $2
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query, id, eliminadoEn)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}
