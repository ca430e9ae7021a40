package entity

import "time"

// Empleado representa a un trabajador de la empresa con su cuenta de sistema.
// Invariante: en todo momento, a lo más un Empleado no eliminado referencia un
// mismo Usuario (1:1). El índice único parcial sobre id_usuario es la autoridad;
// la verificación en los casos de uso solo produce un mensaje amable.
type Empleado struct {
	ID                int64
	Nombres           string
	Apellidos         string
	Cargo             string
	FechaContratacion time.Time
	IDUsuario         int64
	Usuario           *Usuario // relación cargada en lecturas
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}
