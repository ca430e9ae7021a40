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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaColumns = `
	id, id_cliente, id_empleado, metodo_pago, tipo_documento,
	subtotal, descuento, total, estado,
	fecha_creacion, fecha_modificacion, fecha_eliminacion`

// Create persiste la cabecera y sus detalles. Se asume ejecución dentro de una
// transacción (RunVenta): la cabecera sin detalles nunca queda visible.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	cabecera := `
		INSERT INTO ventas (id_cliente, id_empleado, metodo_pago, tipo_documento,
			subtotal, descuento, total, estado, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), cabecera,
		venta.IDCliente, venta.IDEmpleado, venta.MetodoPago, venta.TipoDocumento,
		venta.Subtotal, venta.Descuento, venta.Total, venta.Estado,
		venta.CreatedAt, venta.UpdatedAt,
	).Scan(&venta.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}

	detalle := `
		INSERT INTO detalles_venta (id_venta, id_producto, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range venta.Detalles {
		d := &venta.Detalles[i]
		d.IDVenta = venta.ID
		err := r.q.QueryRow(context.Background(), detalle,
			d.IDVenta, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.Subtotal,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("insert detalle venta: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta no eliminada con sus detalles.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1 AND ` + notDeleted
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.IDCliente, &v.IDEmpleado, &v.MetodoPago, &v.TipoDocumento,
		&v.Subtotal, &v.Descuento, &v.Total, &v.Estado,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	detalles, err := r.loadDetalles(v.ID)
	if err != nil {
		return nil, err
	}
	v.Detalles = detalles
	return &v, nil
}

// List lista cabeceras no eliminadas, sin detalles.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE ` + notDeleted + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.IDCliente, &v.IDEmpleado, &v.MetodoPago, &v.TipoDocumento,
			&v.Subtotal, &v.Descuento, &v.Total, &v.Estado,
			&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// SoftDelete marca la venta como eliminada; los detalles quedan intactos para
// historial.
func (r *VentaRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	query := `
		UPDATE ventas SET fecha_eliminacion = $2, fecha_modificacion = $2
		WHERE id = $1 AND ` + notDeleted
	_, err := r.q.Exec(context.Background(), query, id, eliminadoEn)
	if err != nil {
		return fmt.Errorf("soft delete venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) loadDetalles(ventaID int64) ([]entity.DetalleVenta, error) {
	query := `
		SELECT id, id_venta, id_producto, cantidad, precio_unitario, subtotal
		FROM detalles_venta WHERE id_venta = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list detalles venta: %w", err)
	}
	defer rows.Close()
	var detalles []entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.IDVenta, &d.IDProducto, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}
