package dto

import "time"

// CreateUsuarioRequest entrada para crear una cuenta manual. Si Clave está
// ausente se usa la credencial por defecto del entorno.
type CreateUsuarioRequest struct {
	NombreUsuario string  `json:"nombreUsuario" validate:"required,min=2,max=50"`
	Clave         *string `json:"clave" validate:"omitempty,min=4,max=72"`
}

// UpdateUsuarioRequest entrada parcial. NombreUsuario solo puede cambiarse en
// cuentas manuales; los logins empleadoN son inmutables.
type UpdateUsuarioRequest struct {
	NombreUsuario *string `json:"nombreUsuario" validate:"omitempty,min=2,max=50"`
	Clave         *string `json:"clave" validate:"omitempty,min=4,max=72"`
}

// UsuarioResponse salida de una cuenta. Nunca incluye la clave ni su hash.
type UsuarioResponse struct {
	ID                int64      `json:"id"`
	NombreUsuario     string     `json:"nombreUsuario"`
	FechaCreacion     time.Time  `json:"fechaCreacion"`
	FechaModificacion time.Time  `json:"fechaModificacion"`
	FechaEliminacion  *time.Time `json:"fechaEliminacion,omitempty"`
}

// UsuarioDeleteResponse confirmación de borrado lógico con el snapshot.
type UsuarioDeleteResponse struct {
	Message string          `json:"message"`
	Usuario UsuarioResponse `json:"usuario"`
}
