package dto

import "time"

// CreateEmpleadoRequest entrada para crear un empleado. La cuenta de usuario se
// provisiona automáticamente con el siguiente login empleadoN.
type CreateEmpleadoRequest struct {
	Nombres           string `json:"nombres" validate:"required,min=1,max=50"`
	Apellidos         string `json:"apellidos" validate:"required,min=1,max=50"`
	Cargo             string `json:"cargo" validate:"required,min=1,max=50"`
	FechaContratacion string `json:"fechaContratacion" validate:"required"` // YYYY-MM-DD
}

// UpdateEmpleadoRequest entrada parcial. IdUsuario revincula la cuenta y pasa
// por la verificación de vínculo 1:1.
type UpdateEmpleadoRequest struct {
	Nombres           *string `json:"nombres" validate:"omitempty,min=1,max=50"`
	Apellidos         *string `json:"apellidos" validate:"omitempty,min=1,max=50"`
	Cargo             *string `json:"cargo" validate:"omitempty,min=1,max=50"`
	FechaContratacion *string `json:"fechaContratacion"`
	IDUsuario         *int64  `json:"idUsuario"`
}

// EmpleadoResponse salida de un empleado con su cuenta vinculada.
type EmpleadoResponse struct {
	ID                int64            `json:"id"`
	Nombres           string           `json:"nombres"`
	Apellidos         string           `json:"apellidos"`
	Cargo             string           `json:"cargo"`
	FechaContratacion string           `json:"fechaContratacion"`
	IDUsuario         int64            `json:"idUsuario"`
	Usuario           *UsuarioResponse `json:"usuario,omitempty"`
	FechaCreacion     time.Time        `json:"fechaCreacion"`
	FechaModificacion time.Time        `json:"fechaModificacion"`
	FechaEliminacion  *time.Time       `json:"fechaEliminacion,omitempty"`
}

// EmpleadoDeleteResponse confirmación de borrado lógico con el snapshot.
type EmpleadoDeleteResponse struct {
	Message  string           `json:"message"`
	Empleado EmpleadoResponse `json:"empleado"`
}
