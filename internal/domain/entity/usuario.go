package entity

import "time"

// Usuario representa una cuenta de acceso al sistema.
// Clave guarda el hash bcrypt, nunca la contraseña en claro.
// NombreUsuario es único entre cuentas no eliminadas e inmutable cuando fue
// asignado por el asignador (esquema empleadoN); las cuentas manuales pueden
// renombrarse.
type Usuario struct {
	ID            int64
	NombreUsuario string
	Clave         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
