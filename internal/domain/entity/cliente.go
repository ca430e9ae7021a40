package entity

import "time"

// Cliente representa un comprador registrado. Los campos opcionales de texto se
// guardan como nil cuando están ausentes, nunca como cadena vacía.
type Cliente struct {
	ID        int64
	Nombres   string
	Apellidos *string
	Direccion *string
	Telefono  *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
