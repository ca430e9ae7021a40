package usecase

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del catálogo.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto. El precio vigente aquí no afecta ventas pasadas.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	nombre := dto.NormalizarTexto(in.Nombre)
	if nombre == "" {
		return nil, domain.EntradaInvalida("el campo nombre es requerido")
	}
	if in.PrecioUnitario.IsNegative() {
		return nil, domain.EntradaInvalida("precioUnitario no puede ser negativo")
	}
	if in.Stock < 0 {
		return nil, domain.EntradaInvalida("stock no puede ser negativo")
	}
	now := time.Now()
	producto := &entity.Producto{
		Nombre:         nombre,
		Descripcion:    dto.NormalizarOpcional(in.Descripcion),
		PrecioUnitario: in.PrecioUnitario,
		Stock:          in.Stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto; punto único del NotFound con id.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos no eliminados.
func (uc *ProductoUseCase) List() ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Update aplica solo los campos presentes.
func (uc *ProductoUseCase) Update(id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		nombre := dto.NormalizarTexto(*in.Nombre)
		if nombre == "" {
			return nil, domain.EntradaInvalida("el campo nombre no debe ser vacío")
		}
		producto.Nombre = nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = dto.NormalizarOpcional(in.Descripcion)
	}
	if in.PrecioUnitario != nil {
		if in.PrecioUnitario.IsNegative() {
			return nil, domain.EntradaInvalida("precioUnitario no puede ser negativo")
		}
		producto.PrecioUnitario = *in.PrecioUnitario
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.EntradaInvalida("stock no puede ser negativo")
		}
		producto.Stock = *in.Stock
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete marca el producto como eliminado y devuelve el snapshot.
func (uc *ProductoUseCase) Delete(id int64) (*dto.ProductoDeleteResponse, error) {
	producto, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.repo.SoftDelete(id, now); err != nil {
		return nil, err
	}
	producto.DeletedAt = &now
	return &dto.ProductoDeleteResponse{
		Message:  "Producto eliminado exitosamente",
		Producto: *toProductoResponse(producto),
	}, nil
}

func (uc *ProductoUseCase) findOne(id int64) (*entity.Producto, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.NoEncontrado("producto", id)
	}
	return producto, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		PrecioUnitario:    p.PrecioUnitario,
		Stock:             p.Stock,
		FechaCreacion:     p.CreatedAt,
		FechaModificacion: p.UpdatedAt,
		FechaEliminacion:  p.DeletedAt,
	}
}
