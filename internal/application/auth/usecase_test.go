package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/ventas-api/pkg/jwt"
)

// cuentaFija devuelve siempre la misma cuenta para un login dado.
type cuentaFija struct {
	usuario *entity.Usuario
}

func (r *cuentaFija) Create(*entity.Usuario) error           { return nil }
func (r *cuentaFija) GetByID(int64) (*entity.Usuario, error) { return nil, nil }
func (r *cuentaFija) List() ([]*entity.Usuario, error)       { return nil, nil }
func (r *cuentaFija) ListLogins(bool) ([]string, error)      { return nil, nil }
func (r *cuentaFija) Update(*entity.Usuario) error           { return nil }
func (r *cuentaFija) SoftDelete(int64, time.Time) error      { return nil }

func (r *cuentaFija) GetByNombreUsuario(login string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.NombreUsuario == login {
		return r.usuario, nil
	}
	return nil, nil
}

func nuevaCuenta(t *testing.T, login, clave string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return &entity.Usuario{ID: 7, NombreUsuario: login, Clave: string(hash), CreatedAt: now, UpdatedAt: now}
}

func TestLogin_EmiteTokenValido(t *testing.T) {
	repo := &cuentaFija{usuario: nuevaCuenta(t, "empleado1", "cambiar123")}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "ventas-api-test"})

	out, err := uc.Login(dto.LoginRequest{NombreUsuario: " empleado1 ", Clave: "cambiar123"})
	require.NoError(t, err, "el login se normaliza antes de buscar")
	assert.Equal(t, "empleado1", out.Usuario.NombreUsuario)

	usuarioID, nombreUsuario, err := pkgjwt.Parse("secreto-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), usuarioID)
	assert.Equal(t, "empleado1", nombreUsuario)
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	repo := &cuentaFija{usuario: nuevaCuenta(t, "empleado1", "cambiar123")}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60})

	_, err := uc.Login(dto.LoginRequest{NombreUsuario: "empleado1", Clave: "otra"})
	assert.ErrorIs(t, err, auth.ErrCredenciales)
}

func TestLogin_CuentaInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&cuentaFija{}, auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60})

	_, err := uc.Login(dto.LoginRequest{NombreUsuario: "nadie", Clave: "cambiar123"})
	assert.ErrorIs(t, err, auth.ErrCredenciales,
		"no se distingue cuenta inexistente de clave incorrecta")
}
