package usecase

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente normalizando los campos de texto: recorte de espacios
// y opcionales vacíos guardados como nil.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nombres := dto.NormalizarTexto(in.Nombres)
	if nombres == "" {
		return nil, domain.EntradaInvalida("el campo nombres es requerido")
	}
	now := time.Now()
	cliente := &entity.Cliente{
		Nombres:   nombres,
		Apellidos: dto.NormalizarOpcional(in.Apellidos),
		Direccion: dto.NormalizarOpcional(in.Direccion),
		Telefono:  dto.NormalizarOpcional(in.Telefono),
		Email:     dto.NormalizarOpcional(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente; es el punto único que emite el NotFound con id.
func (uc *ClienteUseCase) GetByID(id int64) (*dto.ClienteResponse, error) {
	cliente, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista los clientes no eliminados.
func (uc *ClienteUseCase) List() ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos presentes; los omitidos conservan su valor.
func (uc *ClienteUseCase) Update(id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	if in.Nombres != nil {
		nombres := dto.NormalizarTexto(*in.Nombres)
		if nombres == "" {
			return nil, domain.EntradaInvalida("el campo nombres no debe ser vacío")
		}
		cliente.Nombres = nombres
	}
	if in.Apellidos != nil {
		cliente.Apellidos = dto.NormalizarOpcional(in.Apellidos)
	}
	if in.Direccion != nil {
		cliente.Direccion = dto.NormalizarOpcional(in.Direccion)
	}
	if in.Telefono != nil {
		cliente.Telefono = dto.NormalizarOpcional(in.Telefono)
	}
	if in.Email != nil {
		cliente.Email = dto.NormalizarOpcional(in.Email)
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete marca el cliente como eliminado y devuelve el snapshot al momento del
// borrado. La fila persiste para auditoría; no hay purga.
func (uc *ClienteUseCase) Delete(id int64) (*dto.ClienteDeleteResponse, error) {
	cliente, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.repo.SoftDelete(id, now); err != nil {
		return nil, err
	}
	cliente.DeletedAt = &now
	return &dto.ClienteDeleteResponse{
		Message: "Cliente eliminado exitosamente",
		Cliente: *toClienteResponse(cliente),
	}, nil
}

func (uc *ClienteUseCase) findOne(id int64) (*entity.Cliente, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.NoEncontrado("cliente", id)
	}
	return cliente, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                c.ID,
		Nombres:           c.Nombres,
		Apellidos:         c.Apellidos,
		Direccion:         c.Direccion,
		Telefono:          c.Telefono,
		Email:             c.Email,
		FechaCreacion:     c.CreatedAt,
		FechaModificacion: c.UpdatedAt,
		FechaEliminacion:  c.DeletedAt,
	}
}
