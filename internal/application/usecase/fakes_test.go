package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// Fakes en memoria con la misma semántica que los adaptadores de PostgreSQL:
// lecturas excluyen tombstones y devuelven (nil, nil) sin fila, los Create
// asignan ID, y los índices únicos parciales se simulan sobre registros vivos.
// Guardan copias, no punteros, para que mutar una entidad leída no toque el
// "almacén" hasta el Update correspondiente.

// ── usuarios ──────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	seq   int64
	items map[int64]entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{items: map[int64]entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(usuario *entity.Usuario) error {
	for _, u := range r.items {
		if u.DeletedAt == nil && u.NombreUsuario == usuario.NombreUsuario {
			return domain.ErrDuplicado
		}
	}
	r.seq++
	usuario.ID = r.seq
	r.items[usuario.ID] = *usuario
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := r.items[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	copia := u
	return &copia, nil
}

func (r *fakeUsuarioRepo) GetByNombreUsuario(nombreUsuario string) (*entity.Usuario, error) {
	for _, u := range r.items {
		if u.DeletedAt == nil && u.NombreUsuario == nombreUsuario {
			copia := u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for id := int64(1); id <= r.seq; id++ {
		if u, ok := r.items[id]; ok && u.DeletedAt == nil {
			copia := u
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) ListLogins(incluirEliminados bool) ([]string, error) {
	var out []string
	for id := int64(1); id <= r.seq; id++ {
		u, ok := r.items[id]
		if !ok {
			continue
		}
		if !incluirEliminados && u.DeletedAt != nil {
			continue
		}
		out = append(out, u.NombreUsuario)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(usuario *entity.Usuario) error {
	if u, ok := r.items[usuario.ID]; ok && u.DeletedAt == nil {
		r.items[usuario.ID] = *usuario
	}
	return nil
}

func (r *fakeUsuarioRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	if u, ok := r.items[id]; ok && u.DeletedAt == nil {
		u.DeletedAt = &eliminadoEn
		u.UpdatedAt = eliminadoEn
		r.items[id] = u
	}
	return nil
}

// ── empleados ─────────────────────────────────────────────────────────────────

type fakeEmpleadoRepo struct {
	seq   int64
	items map[int64]entity.Empleado
}

func newFakeEmpleadoRepo() *fakeEmpleadoRepo {
	return &fakeEmpleadoRepo{items: map[int64]entity.Empleado{}}
}

func (r *fakeEmpleadoRepo) Create(empleado *entity.Empleado) error {
	for _, e := range r.items {
		if e.DeletedAt == nil && e.IDUsuario == empleado.IDUsuario {
			return domain.Conflicto("el usuario con id %d ya está asignado a otro empleado", empleado.IDUsuario)
		}
	}
	r.seq++
	empleado.ID = r.seq
	r.items[empleado.ID] = *empleado
	return nil
}

func (r *fakeEmpleadoRepo) GetByID(id int64) (*entity.Empleado, error) {
	e, ok := r.items[id]
	if !ok || e.DeletedAt != nil {
		return nil, nil
	}
	copia := e
	return &copia, nil
}

func (r *fakeEmpleadoRepo) GetByUsuarioID(usuarioID int64) (*entity.Empleado, error) {
	for _, e := range r.items {
		if e.DeletedAt == nil && e.IDUsuario == usuarioID {
			copia := e
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeEmpleadoRepo) List() ([]*entity.Empleado, error) {
	var out []*entity.Empleado
	for id := int64(1); id <= r.seq; id++ {
		if e, ok := r.items[id]; ok && e.DeletedAt == nil {
			copia := e
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeEmpleadoRepo) Update(empleado *entity.Empleado) error {
	for _, e := range r.items {
		if e.DeletedAt == nil && e.ID != empleado.ID && e.IDUsuario == empleado.IDUsuario {
			return domain.Conflicto("el usuario con id %d ya está asignado a otro empleado", empleado.IDUsuario)
		}
	}
	if e, ok := r.items[empleado.ID]; ok && e.DeletedAt == nil {
		r.items[empleado.ID] = *empleado
	}
	return nil
}

func (r *fakeEmpleadoRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	if e, ok := r.items[id]; ok && e.DeletedAt == nil {
		e.DeletedAt = &eliminadoEn
		e.UpdatedAt = eliminadoEn
		r.items[id] = e
	}
	return nil
}

// ── clientes ──────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	seq   int64
	items map[int64]entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{items: map[int64]entity.Cliente{}}
}

func (r *fakeClienteRepo) Create(cliente *entity.Cliente) error {
	r.seq++
	cliente.ID = r.seq
	r.items[cliente.ID] = *cliente
	return nil
}

func (r *fakeClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	c, ok := r.items[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	copia := c
	return &copia, nil
}

func (r *fakeClienteRepo) List() ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for id := int64(1); id <= r.seq; id++ {
		if c, ok := r.items[id]; ok && c.DeletedAt == nil {
			copia := c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(cliente *entity.Cliente) error {
	if c, ok := r.items[cliente.ID]; ok && c.DeletedAt == nil {
		r.items[cliente.ID] = *cliente
	}
	return nil
}

func (r *fakeClienteRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	if c, ok := r.items[id]; ok && c.DeletedAt == nil {
		c.DeletedAt = &eliminadoEn
		c.UpdatedAt = eliminadoEn
		r.items[id] = c
	}
	return nil
}

// ── productos ─────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	seq   int64
	items map[int64]entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{items: map[int64]entity.Producto{}}
}

func (r *fakeProductoRepo) Create(producto *entity.Producto) error {
	r.seq++
	producto.ID = r.seq
	r.items[producto.ID] = *producto
	return nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.items[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	copia := p
	return &copia, nil
}

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for id := int64(1); id <= r.seq; id++ {
		if p, ok := r.items[id]; ok && p.DeletedAt == nil {
			copia := p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(producto *entity.Producto) error {
	if p, ok := r.items[producto.ID]; ok && p.DeletedAt == nil {
		r.items[producto.ID] = *producto
	}
	return nil
}

func (r *fakeProductoRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	if p, ok := r.items[id]; ok && p.DeletedAt == nil {
		p.DeletedAt = &eliminadoEn
		p.UpdatedAt = eliminadoEn
		r.items[id] = p
	}
	return nil
}

// ── ventas ────────────────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	seq        int64
	detalleSeq int64
	items      map[int64]entity.Venta
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{items: map[int64]entity.Venta{}}
}

func (r *fakeVentaRepo) Create(venta *entity.Venta) error {
	r.seq++
	venta.ID = r.seq
	for i := range venta.Detalles {
		r.detalleSeq++
		venta.Detalles[i].ID = r.detalleSeq
		venta.Detalles[i].IDVenta = venta.ID
	}
	copia := *venta
	copia.Detalles = append([]entity.DetalleVenta(nil), venta.Detalles...)
	r.items[venta.ID] = copia
	return nil
}

func (r *fakeVentaRepo) GetByID(id int64) (*entity.Venta, error) {
	v, ok := r.items[id]
	if !ok || v.DeletedAt != nil {
		return nil, nil
	}
	copia := v
	copia.Detalles = append([]entity.DetalleVenta(nil), v.Detalles...)
	return &copia, nil
}

func (r *fakeVentaRepo) List() ([]*entity.Venta, error) {
	var out []*entity.Venta
	for id := int64(1); id <= r.seq; id++ {
		if v, ok := r.items[id]; ok && v.DeletedAt == nil {
			copia := v
			copia.Detalles = nil
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) SoftDelete(id int64, eliminadoEn time.Time) error {
	if v, ok := r.items[id]; ok && v.DeletedAt == nil {
		v.DeletedAt = &eliminadoEn
		v.UpdatedAt = eliminadoEn
		r.items[id] = v
	}
	return nil
}

// ── tx runners ────────────────────────────────────────────────────────────────

// fakeTxRunner pasa los repos tal cual: en los tests no hay rollback, cada caso
// parte de repos limpios.
type fakeTxRunner struct {
	usuarios  repository.UsuarioRepository
	empleados repository.EmpleadoRepository
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	clientes  repository.ClienteRepository
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
	empleados repository.EmpleadoRepository,
) error) error {
	return fn(t.usuarios, t.empleados)
}

func (t *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	empleados repository.EmpleadoRepository,
) error) error {
	return fn(t.ventas, t.productos, t.clientes, t.empleados)
}

// usuarioRepoConColisiones fuerza ErrDuplicado en los primeros fallos de Create
// para simular la carrera del asignador.
type usuarioRepoConColisiones struct {
	*fakeUsuarioRepo
	fallosRestantes int
	intentos        int
}

func (r *usuarioRepoConColisiones) Create(usuario *entity.Usuario) error {
	r.intentos++
	if r.fallosRestantes > 0 {
		r.fallosRestantes--
		return domain.ErrDuplicado
	}
	return r.fakeUsuarioRepo.Create(usuario)
}

var (
	_ repository.UsuarioRepository  = (*fakeUsuarioRepo)(nil)
	_ repository.EmpleadoRepository = (*fakeEmpleadoRepo)(nil)
	_ repository.ClienteRepository  = (*fakeClienteRepo)(nil)
	_ repository.ProductoRepository = (*fakeProductoRepo)(nil)
	_ repository.VentaRepository    = (*fakeVentaRepo)(nil)
	_ usecase.ProvisionTxRunner     = (*fakeTxRunner)(nil)
	_ usecase.VentaTxRunner         = (*fakeTxRunner)(nil)
)
