package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/cuenta"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// FormatoFecha formato de fechaContratacion en la API.
const FormatoFecha = "2006-01-02"

// ProvisionTxRunner ejecuta el aprovisionamiento usuario+empleado dentro de
// una transacción, con repos atados a la tx.
type ProvisionTxRunner interface {
	Run(ctx context.Context, fn func(
		usuarios repository.UsuarioRepository,
		empleados repository.EmpleadoRepository,
	) error) error
}

// ProvisionConfig política de aprovisionamiento de cuentas.
type ProvisionConfig struct {
	// DefaultClave credencial inicial de las cuentas generadas (del entorno).
	DefaultClave string
	// IncluirEliminados decide si los logins de cuentas con tombstone cuentan
	// para calcular el siguiente N (true = los números no se reciclan).
	IncluirEliminados bool
	// MaxReintentos tope de reintentos ante colisión de login concurrente.
	MaxReintentos int
}

// EmpleadoUseCase aprovisionamiento de empleados con su cuenta de sistema y
// verificación del vínculo 1:1 empleado-usuario.
type EmpleadoUseCase struct {
	empleados repository.EmpleadoRepository
	usuarios  repository.UsuarioRepository
	tx        ProvisionTxRunner
	cfg       ProvisionConfig
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(
	empleados repository.EmpleadoRepository,
	usuarios repository.UsuarioRepository,
	tx ProvisionTxRunner,
	cfg ProvisionConfig,
) *EmpleadoUseCase {
	if cfg.MaxReintentos <= 0 {
		cfg.MaxReintentos = 3
	}
	return &EmpleadoUseCase{empleados: empleados, usuarios: usuarios, tx: tx, cfg: cfg}
}

// Create registra un empleado provisionando primero su cuenta: calcula el
// siguiente login empleadoN, persiste el usuario con la credencial por defecto
// y crea el empleado vinculado, todo en una transacción.
//
// Dos creaciones concurrentes pueden calcular el mismo N; el índice único de
// logins hace fallar a la perdedora con ErrDuplicado y la transacción completa
// se reintenta hasta MaxReintentos veces.
func (uc *EmpleadoUseCase) Create(ctx context.Context, in dto.CreateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	nombres := dto.NormalizarTexto(in.Nombres)
	apellidos := dto.NormalizarTexto(in.Apellidos)
	cargo := dto.NormalizarTexto(in.Cargo)
	if nombres == "" || apellidos == "" || cargo == "" {
		return nil, domain.EntradaInvalida("nombres, apellidos y cargo son requeridos")
	}
	fechaContratacion, err := time.Parse(FormatoFecha, in.FechaContratacion)
	if err != nil {
		return nil, domain.EntradaInvalida("fechaContratacion debe tener formato %s", FormatoFecha)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uc.cfg.DefaultClave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var creado *entity.Empleado
	backoff := retry.WithMaxRetries(uint64(uc.cfg.MaxReintentos), retry.NewConstant(10*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(usuarios repository.UsuarioRepository, empleados repository.EmpleadoRepository) error {
			logins, err := usuarios.ListLogins(uc.cfg.IncluirEliminados)
			if err != nil {
				return err
			}
			now := time.Now()
			usuario := &entity.Usuario{
				NombreUsuario: cuenta.Siguiente(logins),
				Clave:         string(hash),
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := usuarios.Create(usuario); err != nil {
				if errors.Is(err, domain.ErrDuplicado) {
					// Otro aprovisionamiento ganó el mismo N: recalcular.
					return retry.RetryableError(err)
				}
				return err
			}

			// Chequeo defensivo del vínculo 1:1; con una cuenta recién creada
			// siempre debe pasar. El índice único parcial es la autoridad.
			otro, err := empleados.GetByUsuarioID(usuario.ID)
			if err != nil {
				return err
			}
			if otro != nil {
				return domain.Conflicto("el usuario con id %d ya está asignado a otro empleado", usuario.ID)
			}

			empleado := &entity.Empleado{
				Nombres:           nombres,
				Apellidos:         apellidos,
				Cargo:             cargo,
				FechaContratacion: fechaContratacion,
				IDUsuario:         usuario.ID,
				Usuario:           usuario,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := empleados.Create(empleado); err != nil {
				return err
			}
			creado = empleado
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return toEmpleadoResponse(creado), nil
}

// GetByID obtiene un empleado con su cuenta; punto único del NotFound con id.
func (uc *EmpleadoUseCase) GetByID(id int64) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	return toEmpleadoResponse(empleado), nil
}

// GetByUsuarioID busca el empleado no eliminado vinculado a la cuenta.
func (uc *EmpleadoUseCase) GetByUsuarioID(usuarioID int64) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.empleados.GetByUsuarioID(usuarioID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, fmt.Errorf("%w: no se encontró empleado para el usuario con id %d", domain.ErrNoEncontrado, usuarioID)
	}
	return toEmpleadoResponse(empleado), nil
}

// List lista los empleados no eliminados con su cuenta.
func (uc *EmpleadoUseCase) List() ([]*dto.EmpleadoResponse, error) {
	list, err := uc.empleados.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmpleadoResponse(e))
	}
	return out, nil
}

// Update aplica solo los campos presentes. Si llega idUsuario, la revinculación
// pasa por la verificación 1:1: falla con Conflicto cuando otro empleado no
// eliminado ya posee esa cuenta, y con NotFound cuando la cuenta no existe.
func (uc *EmpleadoUseCase) Update(id int64, in dto.UpdateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	if in.Nombres != nil {
		nombres := dto.NormalizarTexto(*in.Nombres)
		if nombres == "" {
			return nil, domain.EntradaInvalida("el campo nombres no debe ser vacío")
		}
		empleado.Nombres = nombres
	}
	if in.Apellidos != nil {
		apellidos := dto.NormalizarTexto(*in.Apellidos)
		if apellidos == "" {
			return nil, domain.EntradaInvalida("el campo apellidos no debe ser vacío")
		}
		empleado.Apellidos = apellidos
	}
	if in.Cargo != nil {
		cargo := dto.NormalizarTexto(*in.Cargo)
		if cargo == "" {
			return nil, domain.EntradaInvalida("el campo cargo no debe ser vacío")
		}
		empleado.Cargo = cargo
	}
	if in.FechaContratacion != nil {
		fecha, err := time.Parse(FormatoFecha, *in.FechaContratacion)
		if err != nil {
			return nil, domain.EntradaInvalida("fechaContratacion debe tener formato %s", FormatoFecha)
		}
		empleado.FechaContratacion = fecha
	}
	if in.IDUsuario != nil && *in.IDUsuario != empleado.IDUsuario {
		usuario, err := uc.usuarios.GetByID(*in.IDUsuario)
		if err != nil {
			return nil, err
		}
		if usuario == nil {
			return nil, domain.NoEncontrado("usuario", *in.IDUsuario)
		}
		otro, err := uc.empleados.GetByUsuarioID(*in.IDUsuario)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != id {
			return nil, domain.Conflicto("el usuario con id %d ya está asignado a otro empleado", *in.IDUsuario)
		}
		empleado.IDUsuario = *in.IDUsuario
		empleado.Usuario = usuario
	}
	empleado.UpdatedAt = time.Now()
	// El índice único parcial sigue vigilando la revinculación concurrente:
	// Update devuelve ErrConflicto si otra petición ganó la cuenta.
	if err := uc.empleados.Update(empleado); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(empleado), nil
}

// Delete marca el empleado como eliminado y devuelve el snapshot. Su cuenta no
// se elimina: el login queda ocupado y la cuenta puede revincularse.
func (uc *EmpleadoUseCase) Delete(id int64) (*dto.EmpleadoDeleteResponse, error) {
	empleado, err := uc.findOne(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.empleados.SoftDelete(id, now); err != nil {
		return nil, err
	}
	empleado.DeletedAt = &now
	return &dto.EmpleadoDeleteResponse{
		Message:  "Empleado eliminado exitosamente",
		Empleado: *toEmpleadoResponse(empleado),
	}, nil
}

func (uc *EmpleadoUseCase) findOne(id int64) (*entity.Empleado, error) {
	empleado, err := uc.empleados.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.NoEncontrado("empleado", id)
	}
	return empleado, nil
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpleadoResponse{
		ID:                e.ID,
		Nombres:           e.Nombres,
		Apellidos:         e.Apellidos,
		Cargo:             e.Cargo,
		FechaContratacion: e.FechaContratacion.Format(FormatoFecha),
		IDUsuario:         e.IDUsuario,
		Usuario:           toUsuarioResponse(e.Usuario),
		FechaCreacion:     e.CreatedAt,
		FechaModificacion: e.UpdatedAt,
		FechaEliminacion:  e.DeletedAt,
	}
}
