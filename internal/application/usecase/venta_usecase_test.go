package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

type ventaFixture struct {
	uc         *usecase.VentaUseCase
	productos  *fakeProductoRepo
	clienteID  int64
	empleadoID int64
	cafeID     int64
	panID      int64
}

func nuevaVentaFixture(t *testing.T) *ventaFixture {
	t.Helper()
	clientes := newFakeClienteRepo()
	empleados := newFakeEmpleadoRepo()
	productos := newFakeProductoRepo()
	usuarios := newFakeUsuarioRepo()
	ventas := newFakeVentaRepo()

	now := time.Now()
	cliente := &entity.Cliente{Nombres: "María", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, clientes.Create(cliente))

	usuario := &entity.Usuario{NombreUsuario: "empleado1", Clave: "x", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, usuarios.Create(usuario))
	empleado := &entity.Empleado{
		Nombres: "Ana", Apellidos: "Pérez", Cargo: "Cajera",
		FechaContratacion: now, IDUsuario: usuario.ID, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, empleados.Create(empleado))

	cafe := &entity.Producto{Nombre: "Café", PrecioUnitario: decimal.RequireFromString("25.50"), Stock: 100, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, productos.Create(cafe))
	pan := &entity.Producto{Nombre: "Pan", PrecioUnitario: decimal.RequireFromString("4.00"), Stock: 100, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, productos.Create(pan))

	tx := &fakeTxRunner{
		usuarios: usuarios, empleados: empleados,
		ventas: ventas, productos: productos, clientes: clientes,
	}
	uc := usecase.NewVentaUseCase(ventas, productos, clientes, empleados, tx, nil)
	return &ventaFixture{
		uc: uc, productos: productos,
		clienteID: cliente.ID, empleadoID: empleado.ID,
		cafeID: cafe.ID, panID: pan.ID,
	}
}

func TestVentaCreate_CopiaPreciosYCalculaTotales(t *testing.T) {
	f := nuevaVentaFixture(t)

	venta, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{
		IDCliente:  f.clienteID,
		IDEmpleado: f.empleadoID,
		MetodoPago: entity.MetodoEfectivo,
		Descuento:  decimal.RequireFromString("5.00"),
		Detalles: []dto.CreateDetalleVentaRequest{
			{IDProducto: f.cafeID, Cantidad: 2},
			{IDProducto: f.panID, Cantidad: 3},
		},
	})
	require.NoError(t, err)

	// 2*25.50 + 3*4.00 = 63.00; total = 63.00 - 5.00
	assert.True(t, venta.Subtotal.Equal(decimal.RequireFromString("63.00")), "subtotal %s", venta.Subtotal)
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("58.00")), "total %s", venta.Total)
	assert.Equal(t, entity.VentaCompletada, venta.Estado)
	require.Len(t, venta.Detalles, 2)
	assert.True(t, venta.Detalles[0].PrecioUnitario.Equal(decimal.RequireFromString("25.50")))
}

func TestVentaCreate_PrecioHistoricoNoCambia(t *testing.T) {
	f := nuevaVentaFixture(t)

	venta, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{
		IDCliente:  f.clienteID,
		IDEmpleado: f.empleadoID,
		MetodoPago: entity.MetodoTarjeta,
		Detalles:   []dto.CreateDetalleVentaRequest{{IDProducto: f.cafeID, Cantidad: 1}},
	})
	require.NoError(t, err)

	// Subir el precio del catálogo después de la venta.
	cafe, err := f.productos.GetByID(f.cafeID)
	require.NoError(t, err)
	cafe.PrecioUnitario = decimal.RequireFromString("99.99")
	require.NoError(t, f.productos.Update(cafe))

	releida, err := f.uc.GetByID(venta.ID)
	require.NoError(t, err)
	assert.True(t, releida.Detalles[0].PrecioUnitario.Equal(decimal.RequireFromString("25.50")),
		"la venta registrada conserva el precio al momento de la venta")
}

func TestVentaCreate_Validaciones(t *testing.T) {
	f := nuevaVentaFixture(t)
	base := dto.CreateVentaRequest{
		IDCliente:  f.clienteID,
		IDEmpleado: f.empleadoID,
		MetodoPago: entity.MetodoEfectivo,
		Detalles:   []dto.CreateDetalleVentaRequest{{IDProducto: f.cafeID, Cantidad: 1}},
	}

	in := base
	in.MetodoPago = "cheque"
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "método de pago fuera del catálogo")

	in = base
	in.Detalles = nil
	_, err = f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "venta sin detalles")

	in = base
	in.Detalles = []dto.CreateDetalleVentaRequest{{IDProducto: f.cafeID, Cantidad: 0}}
	_, err = f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "cantidad cero")

	in = base
	in.Descuento = decimal.RequireFromString("1000.00")
	_, err = f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "descuento mayor al subtotal")

	in = base
	in.IDCliente = 9999
	_, err = f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado, "cliente inexistente")

	in = base
	in.Detalles = []dto.CreateDetalleVentaRequest{{IDProducto: 9999, Cantidad: 1}}
	_, err = f.uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNoEncontrado, "producto inexistente")
	assert.Contains(t, err.Error(), "el producto con el id 9999 no existe")
}

func TestVentaList_SoloCabeceras(t *testing.T) {
	f := nuevaVentaFixture(t)
	_, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{
		IDCliente:  f.clienteID,
		IDEmpleado: f.empleadoID,
		MetodoPago: entity.MetodoTransferencia,
		Detalles:   []dto.CreateDetalleVentaRequest{{IDProducto: f.cafeID, Cantidad: 1}},
	})
	require.NoError(t, err)

	list, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Detalles, "el listado no carga los detalles")
}

func TestVentaDelete(t *testing.T) {
	f := nuevaVentaFixture(t)
	venta, err := f.uc.Create(context.Background(), dto.CreateVentaRequest{
		IDCliente:  f.clienteID,
		IDEmpleado: f.empleadoID,
		MetodoPago: entity.MetodoEfectivo,
		Detalles:   []dto.CreateDetalleVentaRequest{{IDProducto: f.cafeID, Cantidad: 1}},
	})
	require.NoError(t, err)

	out, err := f.uc.Delete(venta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Venta eliminada exitosamente", out.Message)
	assert.NotNil(t, out.Venta.FechaEliminacion)

	_, err = f.uc.GetByID(venta.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
