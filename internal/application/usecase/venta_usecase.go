package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// VentaTxRunner ejecuta el registro de una venta dentro de una transacción,
// con repos atados a la tx.
type VentaTxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventas repository.VentaRepository,
		productos repository.ProductoRepository,
		clientes repository.ClienteRepository,
		empleados repository.EmpleadoRepository,
	) error) error
}

// ReciboGenerator genera el comprobante PDF de una venta.
type ReciboGenerator interface {
	GenerarRecibo(venta *entity.Venta, cliente *entity.Cliente, empleado *entity.Empleado, productos map[int64]*entity.Producto) ([]byte, error)
}

// VentaUseCase registro y consulta de ventas con sus detalles.
type VentaUseCase struct {
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	clientes  repository.ClienteRepository
	empleados repository.EmpleadoRepository
	tx        VentaTxRunner
	recibos   ReciboGenerator
}

// NewVentaUseCase construye el caso de uso. recibos puede ser nil si el
// endpoint de comprobantes no está habilitado.
func NewVentaUseCase(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	empleados repository.EmpleadoRepository,
	tx VentaTxRunner,
	recibos ReciboGenerator,
) *VentaUseCase {
	return &VentaUseCase{
		ventas: ventas, productos: productos, clientes: clientes,
		empleados: empleados, tx: tx, recibos: recibos,
	}
}

func metodoPagoValido(m string) bool {
	switch m {
	case entity.MetodoEfectivo, entity.MetodoTarjeta, entity.MetodoTransferencia:
		return true
	}
	return false
}

// Create registra una venta: valida cliente, empleado y productos, copia el
// precio vigente de cada producto a la línea y calcula los totales. Todo ocurre
// en una transacción para que una línea inválida no deje una cabecera huérfana.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if !metodoPagoValido(in.MetodoPago) {
		return nil, domain.EntradaInvalida("metodoPago debe ser %s, %s o %s",
			entity.MetodoEfectivo, entity.MetodoTarjeta, entity.MetodoTransferencia)
	}
	if len(in.Detalles) == 0 {
		return nil, domain.EntradaInvalida("la venta debe tener al menos un detalle")
	}
	for _, d := range in.Detalles {
		if d.Cantidad <= 0 {
			return nil, domain.EntradaInvalida("la cantidad del producto %d debe ser mayor a cero", d.IDProducto)
		}
	}
	if in.Descuento.IsNegative() {
		return nil, domain.EntradaInvalida("descuento no puede ser negativo")
	}

	var creada *entity.Venta
	err := uc.tx.RunVenta(ctx, func(
		ventas repository.VentaRepository,
		productos repository.ProductoRepository,
		clientes repository.ClienteRepository,
		empleados repository.EmpleadoRepository,
	) error {
		cliente, err := clientes.GetByID(in.IDCliente)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.NoEncontrado("cliente", in.IDCliente)
		}
		empleado, err := empleados.GetByID(in.IDEmpleado)
		if err != nil {
			return err
		}
		if empleado == nil {
			return domain.NoEncontrado("empleado", in.IDEmpleado)
		}

		now := time.Now()
		venta := &entity.Venta{
			IDCliente:     in.IDCliente,
			IDEmpleado:    in.IDEmpleado,
			MetodoPago:    in.MetodoPago,
			TipoDocumento: dto.NormalizarTexto(in.TipoDocumento),
			Descuento:     in.Descuento,
			Estado:        entity.VentaCompletada,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		subtotal := decimal.Zero
		for _, d := range in.Detalles {
			producto, err := productos.GetByID(d.IDProducto)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.NoEncontrado("producto", d.IDProducto)
			}
			// Precio copiado al momento de la venta: cambios posteriores del
			// catálogo no alteran ventas registradas.
			linea := entity.DetalleVenta{
				IDProducto:     d.IDProducto,
				Cantidad:       d.Cantidad,
				PrecioUnitario: producto.PrecioUnitario,
				Subtotal:       producto.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))),
			}
			subtotal = subtotal.Add(linea.Subtotal)
			venta.Detalles = append(venta.Detalles, linea)
		}
		venta.Subtotal = subtotal
		venta.Total = subtotal.Sub(in.Descuento)
		if venta.Total.IsNegative() {
			return domain.EntradaInvalida("el descuento no puede superar el subtotal")
		}
		if err := ventas.Create(venta); err != nil {
			return err
		}
		creada = venta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(creada), nil
}

// GetByID obtiene una venta con sus detalles; punto único del NotFound con id.
func (uc *VentaUseCase) GetByID(id int64) (*dto.VentaResponse, error) {
	venta, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// List lista cabeceras de ventas no eliminadas.
func (uc *VentaUseCase) List() ([]*dto.VentaResponse, error) {
	list, err := uc.ventas.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVentaResponse(v))
	}
	return out, nil
}

// Delete marca la venta como eliminada y devuelve el snapshot.
func (uc *VentaUseCase) Delete(id int64) (*dto.VentaDeleteResponse, error) {
	venta, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.ventas.SoftDelete(id, now); err != nil {
		return nil, err
	}
	venta.DeletedAt = &now
	return &dto.VentaDeleteResponse{
		Message: "Venta eliminada exitosamente",
		Venta:   *toVentaResponse(venta),
	}, nil
}

// Recibo genera el comprobante PDF de la venta.
func (uc *VentaUseCase) Recibo(id int64) ([]byte, error) {
	venta, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	cliente, err := uc.clientes.GetByID(venta.IDCliente)
	if err != nil {
		return nil, err
	}
	empleado, err := uc.empleados.GetByID(venta.IDEmpleado)
	if err != nil {
		return nil, err
	}
	productos := make(map[int64]*entity.Producto, len(venta.Detalles))
	for _, d := range venta.Detalles {
		if _, ok := productos[d.IDProducto]; ok {
			continue
		}
		p, err := uc.productos.GetByID(d.IDProducto)
		if err != nil {
			return nil, err
		}
		productos[d.IDProducto] = p
	}
	return uc.recibos.GenerarRecibo(venta, cliente, empleado, productos)
}

func (uc *VentaUseCase) findOne(id int64) (*entity.Venta, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.NoEncontrado("venta", id)
	}
	return venta, nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		detalles = append(detalles, dto.DetalleVentaResponse{
			ID:             d.ID,
			IDProducto:     d.IDProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return &dto.VentaResponse{
		ID:                v.ID,
		IDCliente:         v.IDCliente,
		IDEmpleado:        v.IDEmpleado,
		MetodoPago:        v.MetodoPago,
		TipoDocumento:     v.TipoDocumento,
		Subtotal:          v.Subtotal,
		Descuento:         v.Descuento,
		Total:             v.Total,
		Estado:            v.Estado,
		Detalles:          detalles,
		FechaCreacion:     v.CreatedAt,
		FechaModificacion: v.UpdatedAt,
		FechaEliminacion:  v.DeletedAt,
	}
}
