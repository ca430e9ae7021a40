package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/cuenta"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD para cuentas de sistema creadas manualmente.
// Las cuentas empleadoN se provisionan desde EmpleadoUseCase.
type UsuarioUseCase struct {
	repo         repository.UsuarioRepository
	defaultClave string
}

// NewUsuarioUseCase construye el caso de uso. defaultClave es la credencial
// por defecto del entorno para cuentas sin clave explícita.
func NewUsuarioUseCase(repo repository.UsuarioRepository, defaultClave string) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, defaultClave: defaultClave}
}

// Create crea una cuenta manual. El pre-chequeo de login produce un mensaje
// amable; el índice único de la base es la autoridad ante concurrencia.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	nombre := dto.NormalizarTexto(in.NombreUsuario)
	if nombre == "" {
		return nil, domain.EntradaInvalida("el campo nombreUsuario no debe ser vacío")
	}
	existente, err := uc.repo.GetByNombreUsuario(nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	clave := uc.defaultClave
	if in.Clave != nil && *in.Clave != "" {
		clave = *in.Clave
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		NombreUsuario: nombre,
		Clave:         string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene una cuenta; punto único del NotFound con id.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	usuario, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// List lista las cuentas no eliminadas.
func (uc *UsuarioUseCase) List() ([]*dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// Update cambia la clave o renombra la cuenta. Los logins asignados por el
// asignador (empleadoN) son inmutables.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	if in.NombreUsuario != nil {
		nuevo := dto.NormalizarTexto(*in.NombreUsuario)
		if nuevo == "" {
			return nil, domain.EntradaInvalida("el campo nombreUsuario no debe ser vacío")
		}
		if nuevo != usuario.NombreUsuario {
			if cuenta.EsGenerado(usuario.NombreUsuario) {
				return nil, domain.EntradaInvalida("el login %s fue asignado por el sistema y no puede renombrarse", usuario.NombreUsuario)
			}
			existente, err := uc.repo.GetByNombreUsuario(nuevo)
			if err != nil {
				return nil, err
			}
			if existente != nil && existente.ID != id {
				return nil, domain.ErrDuplicado
			}
			usuario.NombreUsuario = nuevo
		}
	}
	if in.Clave != nil && *in.Clave != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Clave), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.Clave = string(hash)
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Delete marca la cuenta como eliminada. El login queda ocupado para el
// asignador según la política de reciclaje configurada.
func (uc *UsuarioUseCase) Delete(id int64) (*dto.UsuarioDeleteResponse, error) {
	usuario, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.repo.SoftDelete(id, now); err != nil {
		return nil, err
	}
	usuario.DeletedAt = &now
	return &dto.UsuarioDeleteResponse{
		Message: "Usuario eliminado exitosamente",
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

func (uc *UsuarioUseCase) findOne(id int64) (*entity.Usuario, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.NoEncontrado("usuario", id)
	}
	return usuario, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:                u.ID,
		NombreUsuario:     u.NombreUsuario,
		FechaCreacion:     u.CreatedAt,
		FechaModificacion: u.UpdatedAt,
		FechaEliminacion:  u.DeletedAt,
	}
}
