package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Las lecturas excluyen registros eliminados y devuelven (nil, nil) si no hay
// fila visible; los casos de uso traducen ese nil al error NotFound canónico.
type UsuarioRepository interface {
	// Create persiste la cuenta. Devuelve domain.ErrDuplicado si el login ya
	// existe entre cuentas no eliminadas (índice único parcial).
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByNombreUsuario(nombreUsuario string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	// ListLogins devuelve todos los logins para el asignador. Con
	// incluirEliminados=true cuentan también las cuentas con tombstone
	// (sus números no se reciclan).
	ListLogins(incluirEliminados bool) ([]string, error)
	Update(usuario *entity.Usuario) error
	SoftDelete(id int64, eliminadoEn time.Time) error
}
