package dto

import "time"

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	Nombres   string  `json:"nombres" validate:"required,min=1,max=50"`
	Apellidos *string `json:"apellidos" validate:"omitempty,max=50"`
	Direccion *string `json:"direccion" validate:"omitempty,max=50"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email,max=50"`
}

// UpdateClienteRequest entrada parcial: solo los campos presentes se aplican.
type UpdateClienteRequest struct {
	Nombres   *string `json:"nombres" validate:"omitempty,min=1,max=50"`
	Apellidos *string `json:"apellidos"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID                int64      `json:"id"`
	Nombres           string     `json:"nombres"`
	Apellidos         *string    `json:"apellidos"`
	Direccion         *string    `json:"direccion"`
	Telefono          *string    `json:"telefono"`
	Email             *string    `json:"email"`
	FechaCreacion     time.Time  `json:"fechaCreacion"`
	FechaModificacion time.Time  `json:"fechaModificacion"`
	FechaEliminacion  *time.Time `json:"fechaEliminacion,omitempty"`
}

// ClienteDeleteResponse confirmación de borrado lógico con el snapshot.
type ClienteDeleteResponse struct {
	Message string          `json:"message"`
	Cliente ClienteResponse `json:"cliente"`
}
