package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	NombreUsuario string `json:"nombreUsuario" validate:"required"`
	Clave         string `json:"clave" validate:"required"`
}

// LoginResponse token emitido y la cuenta autenticada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
